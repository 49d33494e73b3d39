// Package repl implements an interactive, line-oriented front end to the
// elaborator (spec.md's "thin collaborator" surface: a REPL is not part
// of the specified type system itself, only a way to drive it
// one-expression-at-a-time). Each entered form is parsed and elaborated
// exactly as a whole file would be; the REPL reports the inferred type
// of a bare expression, or renders the elaborator's diagnostics, but
// never evaluates anything — vaisto's elaborator has no evaluator stage.
//
// Grounded on the teacher's internal/repl (REPL, Start, getPrompt, the
// liner/color wiring): the teacher's REPL is a full evaluating REPL
// backed by its effects/eval/planning packages, none of which survive
// in vaisto (see DESIGN.md's "Dropped teacher modules" entry); this
// rewrite keeps the teacher's interaction loop (liner for history and
// multi-line editing, fatih/color for prompt and error coloring) and
// replaces the evaluation path with a call into internal/elaborate.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/elaborate"
	"github.com/vaisto-lang/vaisto/internal/parser"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// REPL holds the state of one interactive session: the accumulated
// history of entered lines, shown back via :history, and the version
// string printed in the welcome banner.
type REPL struct {
	history []string
	version string
}

// New returns a REPL ready to Start. version is reported in the welcome
// banner; an empty string prints as "dev".
func New(version string) *REPL {
	return &REPL{version: version}
}

func (r *REPL) prompt() string {
	return "vaisto> "
}

// Start runs the read-eval-print loop against in/out until the user
// quits or in reaches EOF. Only out is used for output; in is accepted
// for interface symmetry with the teacher's Start but liner reads the
// controlling terminal directly.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := filepath.Join(os.TempDir(), ".vaisto_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	line.SetMultiLineMode(true)
	line.SetCompleter(func(input string) (c []string) {
		if strings.HasPrefix(input, ":") {
			for _, cmd := range []string{":help", ":quit", ":history", ":clear"} {
				if strings.HasPrefix(cmd, input) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	versionStr := r.version
	if versionStr == "" {
		versionStr = "dev"
	}
	fmt.Fprintf(out, "%s %s\n", bold("vaisto"), bold(versionStr))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))
	fmt.Fprintln(out)

	for {
		input, err := line.Prompt(r.prompt())
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if r.handleCommand(input, out) {
				break
			}
			continue
		}

		r.evalLine(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// handleCommand runs a leading-colon REPL command, reporting whether
// the session should end.
func (r *REPL) handleCommand(input string, out io.Writer) (quit bool) {
	switch {
	case input == ":quit" || input == ":q":
		fmt.Fprintln(out, green("Goodbye!"))
		return true
	case input == ":help":
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  :help     show this message")
		fmt.Fprintln(out, "  :history  show entered lines")
		fmt.Fprintln(out, "  :clear    clear entered-line history")
		fmt.Fprintln(out, "  :quit     exit")
		fmt.Fprintln(out, dim("Anything else is parsed and elaborated; its inferred type is printed."))
	case input == ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%3d  %s\n", i+1, h)
		}
	case input == ":clear":
		r.history = nil
		fmt.Fprintln(out, dim("history cleared"))
	default:
		fmt.Fprintf(out, "%s: unknown command %q\n", red("error"), input)
	}
	return false
}

// evalLine parses input as a standalone source unit and elaborates it,
// printing the inferred type of a bare expression or the diagnostics of
// anything that failed to parse or elaborate.
func (r *REPL) evalLine(input string, out io.Writer) {
	p := parser.NewFromSource("<repl>", []byte(input))
	file := p.Parse()

	for _, err := range p.Errors() {
		if d, ok := err.(*diagnostic.Diagnostic); ok {
			fmt.Fprintln(out, red(diagnostic.Render(d, input)))
		} else {
			fmt.Fprintf(out, "%s: %v\n", red("parse error"), err)
		}
	}
	if len(p.Errors()) > 0 {
		return
	}

	module := elaborate.Elaborate(file)
	if !module.Ok() {
		for _, err := range module.Errors {
			if d, ok := err.(*diagnostic.Diagnostic); ok {
				fmt.Fprintln(out, red(diagnostic.Render(d, input)))
			} else {
				fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			}
		}
		return
	}

	if file.Eval != nil {
		t := module.TypeOf(file.Eval)
		fmt.Fprintf(out, "%s %s\n", dim("::"), green(t.String()))
		return
	}

	for name := range module.Exports {
		fmt.Fprintf(out, "%s %s :: %s\n", dim("defined"), bold(name), module.Exports[name].String())
	}
}
