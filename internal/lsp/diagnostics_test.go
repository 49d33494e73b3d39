package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

func TestDiagnosticsForReportsTypeMismatch(t *testing.T) {
	diags := diagnosticsFor(`(+ 1 "a")`)

	require.Len(t, diags, 1)
	assert.Equal(t, "vaisto", diags[0].Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, diags[0].Severity)
}

func TestDiagnosticsForCleanSourceIsEmpty(t *testing.T) {
	diags := diagnosticsFor(`(+ 1 2)`)
	assert.Empty(t, diags)
}

func TestUTF16PositionAscii(t *testing.T) {
	lines := []string{"(+ 1 2)"}
	pos := utf16Position(lines, 1, 4)
	assert.Equal(t, uint32(0), pos.Line)
	assert.Equal(t, uint32(3), pos.Character)
}

func TestHoverAtReportsInferredType(t *testing.T) {
	hint := hoverAt(`(+ 1 2)`, protocol.Position{Line: 0, Character: 1})
	assert.NotEmpty(t, hint)
}
