package lsp

import (
	"strings"
	"unicode/utf16"

	"go.lsp.dev/protocol"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/elaborate"
	"github.com/vaisto-lang/vaisto/internal/parser"
)

// diagnosticsFor re-parses and re-elaborates text in isolation,
// translating every accumulated diagnostic (spec.md §4.7) into an LSP
// protocol.Diagnostic with source "vaisto" and a UTF-16 range.
func diagnosticsFor(text string) []protocol.Diagnostic {
	lines := strings.Split(text, "\n")
	var out []protocol.Diagnostic

	p := parser.NewFromSource("<lsp>", []byte(text))
	file := p.Parse()
	for _, err := range p.Errors() {
		if d, ok := err.(*diagnostic.Diagnostic); ok {
			out = append(out, toProtocolDiagnostic(d, lines))
		}
	}
	if len(p.Errors()) > 0 {
		return out
	}

	module := elaborate.Elaborate(file)
	for _, err := range module.Errors {
		if d, ok := err.(*diagnostic.Diagnostic); ok {
			out = append(out, toProtocolDiagnostic(d, lines))
		}
	}
	return out
}

func toProtocolDiagnostic(d *diagnostic.Diagnostic, lines []string) protocol.Diagnostic {
	start := utf16Position(lines, d.Primary.Line, d.Primary.Col)
	end := start
	end.Character += uint32(d.Primary.Length)

	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "vaisto",
		Message:  d.Message,
	}
}

// utf16Position converts a 1-based (line, col) source position into an
// LSP 0-based line / UTF-16-code-unit character position, per spec.md
// §6's "range in UTF-16 code units" requirement.
func utf16Position(lines []string, line, col int) protocol.Position {
	lineIdx := line - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	if lineIdx >= len(lines) {
		return protocol.Position{Line: uint32(lineIdx)}
	}

	runes := []rune(lines[lineIdx])
	colIdx := col - 1
	if colIdx < 0 {
		colIdx = 0
	}
	if colIdx > len(runes) {
		colIdx = len(runes)
	}
	units := utf16.Encode(runes[:colIdx])
	return protocol.Position{Line: uint32(lineIdx), Character: uint32(len(units))}
}

// hoverAt re-elaborates text and returns the inferred type of the
// smallest typed expression spanning pos, or "" if none covers it.
func hoverAt(text string, pos protocol.Position) string {
	file := parser.NewFromSource("<lsp>", []byte(text)).Parse()
	module := elaborate.Elaborate(file)
	lines := strings.Split(text, "\n")

	var best ast.Expr
	bestLen := -1
	for expr := range module.Types {
		loc := expr.Pos()
		if !locContains(lines, loc, pos) {
			continue
		}
		if bestLen == -1 || loc.Length < bestLen {
			best, bestLen = expr, loc.Length
		}
	}
	if best == nil {
		return ""
	}
	return module.TypeOf(best).String()
}

func locContains(lines []string, loc ast.Loc, pos protocol.Position) bool {
	if loc.Line-1 != int(pos.Line) {
		return false
	}
	start := utf16Position(lines, loc.Line, loc.Col)
	return pos.Character >= start.Character && pos.Character <= start.Character+uint32(loc.Length)
}
