package diagnostic

import (
	"fmt"
	"strings"
)

// Render produces the compact source-excerpt form spec.md §4.7
// describes: a header line (`error[<code>]: <msg>`), a location line
// (`--> file:line:col`), the offending source line with a gutter, and a
// caret underline of length `span_length`. source is the full text of
// the file named in d.Primary.File.
func Render(d *Diagnostic, source string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "error[%s]: %s\n", d.Code, d.Message)
	fmt.Fprintf(&b, "  --> %s\n", d.Primary.String())

	if line, ok := sourceLine(source, d.Primary.Line); ok {
		gutter := fmt.Sprintf("%d", d.Primary.Line)
		pad := strings.Repeat(" ", len(gutter))
		fmt.Fprintf(&b, "%s |\n", pad)
		fmt.Fprintf(&b, "%s | %s\n", gutter, line)
		fmt.Fprintf(&b, "%s | %s%s\n", pad, strings.Repeat(" ", caretOffset(d.Primary.Col)), caret(d.Primary.Length))
	}

	if d.Expected != "" || d.Actual != "" {
		fmt.Fprintf(&b, "  expected %s, got %s\n", d.Expected, d.Actual)
	}
	if d.Hint != "" {
		fmt.Fprintf(&b, "  hint: %s\n", d.Hint)
	}
	for _, rel := range d.Related {
		fmt.Fprintf(&b, "  --> %s\n", rel.String())
	}

	return b.String()
}

// sourceLine returns line (1-indexed) from source, or false if out of
// range — elaboration can run without source text in hand (e.g. an LSP
// incremental request), so a caller missing it just gets the header and
// location lines.
func sourceLine(source string, line int) (string, bool) {
	if source == "" || line < 1 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}

// caretOffset converts a 1-indexed column to the number of leading
// spaces before the caret underline.
func caretOffset(col int) int {
	if col < 1 {
		return 0
	}
	return col - 1
}

func caret(length int) string {
	if length < 1 {
		length = 1
	}
	return strings.Repeat("^", length)
}
