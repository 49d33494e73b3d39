// Command vaisto is the elaborator-facing CLI (spec.md §6): compile and
// build drive one or many modules through parsing, elaboration, and
// interface emission; --eval elaborates a single expression; lsp serves
// the language server; repl and init are the thin collaborators spec.md
// §1 calls out of scope for the core but still names as surfaces.
//
// Grounded on the teacher's cmd/ailang/main.go: global flags parsed
// before a subcommand, fatih/color for status and error coloring,
// os.Exit(1) on a user-visible compilation error — renamed throughout
// from ailang/AILANG to vaisto, and wired against internal/elaborate,
// internal/iface, internal/repl and internal/lsp instead of the
// teacher's eval-harness subcommands.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/elaborate"
	"github.com/vaisto-lang/vaisto/internal/iface"
	"github.com/vaisto-lang/vaisto/internal/lsp"
	"github.com/vaisto-lang/vaisto/internal/parser"
	"github.com/vaisto-lang/vaisto/internal/repl"
	"github.com/vaisto-lang/vaisto/internal/typedast"
)

var (
	// Version is set by ldflags during a release build.
	Version = "dev"

	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "print version information")
		helpFlag    = flag.Bool("help", false, "show help")
		evalFlag    = flag.String("eval", "", "elaborate a single expression and print its type")
		outFlag     = flag.String("o", "", "output path (interface file, or directory for build)")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s %s\n", bold("vaisto"), Version)
		return
	}
	if *evalFlag != "" {
		evalExpr(*evalFlag)
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		if flag.NArg() == 0 && !*helpFlag {
			os.Exit(1)
		}
		return
	}

	// flag.Parse stops at the first non-flag argument, so an -o written
	// after the subcommand's operand is parsed here.
	if rest := flag.Args(); len(rest) > 2 {
		sub := flag.NewFlagSet(rest[0], flag.ExitOnError)
		sub.StringVar(outFlag, "o", *outFlag, "output path (interface file, or directory for build)")
		_ = sub.Parse(rest[2:])
	}

	switch flag.Arg(0) {
	case "compile":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("error"))
			fmt.Println("usage: vaisto compile <file> [-o <out>]")
			os.Exit(1)
		}
		compileFile(flag.Arg(1), *outFlag)
	case "build":
		dir := "."
		if flag.NArg() >= 2 {
			dir = flag.Arg(1)
		}
		buildDir(dir, *outFlag)
	case "init":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing project name\n", red("error"))
			fmt.Println("usage: vaisto init <name>")
			os.Exit(1)
		}
		initProject(flag.Arg(1))
	case "lsp":
		runLSP()
	case "repl":
		repl.New(Version).Start(os.Stdin, os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(bold("vaisto - the vaisto compiler front-end"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  vaisto <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <file> [-o out]   elaborate one file and write its interface\n", cyan("compile"))
	fmt.Printf("  %s <dir>  [-o out]   elaborate every module in a directory\n", cyan("build"))
	fmt.Printf("  %s <name>            scaffold a new project\n", cyan("init"))
	fmt.Printf("  %s                   start the interactive REPL\n", cyan("repl"))
	fmt.Printf("  %s                   run the language server on stdio\n", cyan("lsp"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --eval <expr>   elaborate a single expression and print its type")
	fmt.Println("  --version       print version information")
	fmt.Println("  --help          show this help message")
}

// readAndElaborate parses and elaborates path, printing rendered
// diagnostics and returning ok=false on any parse or elaboration error
// (spec.md §6: "exit 0 on success, nonzero on any error").
func readAndElaborate(path string) (module *typedast.Module, ok bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", red("error"), path, err)
		return nil, false
	}

	p := parser.NewFromSource(path, content)
	file := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		renderErrors(errs, string(content))
		return nil, false
	}

	m := elaborate.Elaborate(file)
	if !m.Ok() {
		renderErrors(m.Errors, string(content))
		return nil, false
	}
	return m, true
}

func renderErrors(errs []error, source string) {
	for _, err := range errs {
		if d, ok := err.(*diagnostic.Diagnostic); ok {
			fmt.Fprintln(os.Stderr, red(diagnostic.Render(d, source)))
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		}
	}
}

func compileFile(path, out string) {
	module, ok := readAndElaborate(path)
	if !ok {
		os.Exit(1)
	}

	ifacePath := out
	if ifacePath == "" {
		ifacePath = strings.TrimSuffix(path, filepath.Ext(path)) + ".iface.yaml"
	}
	built := iface.Build(module)
	if err := iface.Save(built, ifacePath); err != nil {
		fmt.Fprintf(os.Stderr, "%s: writing interface: %v\n", red("error"), err)
		os.Exit(1)
	}
	fmt.Printf("%s elaborated %s -> %s\n", green("ok"), path, ifacePath)
}

func buildDir(dir, outDir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.va"))
	if err != nil || len(matches) == 0 {
		fmt.Fprintf(os.Stderr, "%s: no .va sources found in %s\n", red("error"), dir)
		os.Exit(1)
	}
	if outDir == "" {
		outDir = dir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}

	failed := false
	for _, path := range matches {
		module, ok := readAndElaborate(path)
		if !ok {
			failed = true
			continue
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		ifacePath := filepath.Join(outDir, name+".iface.yaml")
		built := iface.Build(module)
		if err := iface.Save(built, ifacePath); err != nil {
			fmt.Fprintf(os.Stderr, "%s: writing %s: %v\n", red("error"), ifacePath, err)
			failed = true
			continue
		}
		fmt.Printf("%s %s -> %s\n", green("ok"), path, ifacePath)
	}
	if failed {
		os.Exit(1)
	}
}

// evalExpr elaborates a bare expression as a synthesized one-off module
// (spec.md §6: "elaborate as a module with synthesized main"), printing
// its inferred type.
func evalExpr(expr string) {
	if strings.TrimSpace(expr) == "" {
		fmt.Fprintf(os.Stderr, "%s: --eval expression is empty\n", red("error"))
		os.Exit(1)
	}

	p := parser.NewFromSource("<eval>", []byte(expr))
	file := p.Parse()
	file.Name = "main"
	if errs := p.Errors(); len(errs) > 0 {
		renderErrors(errs, expr)
		os.Exit(1)
	}

	module := elaborate.Elaborate(file)
	if !module.Ok() {
		renderErrors(module.Errors, expr)
		os.Exit(1)
	}
	if file.Eval == nil {
		fmt.Fprintf(os.Stderr, "%s: --eval expects a single expression, not a declaration\n", red("error"))
		os.Exit(1)
	}
	fmt.Printf("%s :: %s\n", bold(expr), green(module.TypeOf(file.Eval).String()))
}

func initProject(name string) {
	if err := os.MkdirAll(name, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
	main := fmt.Sprintf("(ns %s)\n\n(defn main [] \"hello, vaisto\")\n", name)
	mainPath := filepath.Join(name, "main.va")
	if err := os.WriteFile(mainPath, []byte(main), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
	fmt.Printf("%s scaffolded %s/\n", green("ok"), name)
}

// runLSP serves the language server over stdio. Diagnostics and logs go
// to stderr; the Content-Length-framed JSON-RPC stream itself owns
// stdin/stdout (spec.md §6).
func runLSP() {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: logger setup: %v\n", red("error"), err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := lsp.Run(context.Background(), stdioRWC{}, logger); err != nil {
		logger.Error("lsp server exited", zap.Error(err))
		os.Exit(1)
	}
}

// stdioRWC adapts stdin/stdout to the io.ReadWriteCloser the jsonrpc2
// stream transport expects.
type stdioRWC struct{}

func (stdioRWC) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioRWC) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdioRWC) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
