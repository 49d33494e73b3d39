package diagnostic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
)

func TestRenderIncludesHeaderLocationAndCaret(t *testing.T) {
	source := "(defn f [x]\n  (+ x true))\n"
	d := New(ETypeMismatch, ast.Loc{File: "f.va", Line: 2, Col: 6, Length: 4}, "cannot unify Int with Bool").
		WithTypes("Int", "Bool")

	out := Render(d, source)

	require.Contains(t, out, "error[E001]: cannot unify Int with Bool")
	assert.Contains(t, out, "--> f.va:2:6")
	assert.Contains(t, out, "(+ x true))")
	assert.Contains(t, out, "expected Int, got Bool")

	lines := strings.Split(out, "\n")
	var caretLine string
	for _, l := range lines {
		if strings.Contains(l, "^^^^") {
			caretLine = l
		}
	}
	require.NotEmpty(t, caretLine, "expected a 4-character caret underline for Length: 4")
}

func TestRenderOmitsExcerptWhenSourceMissing(t *testing.T) {
	d := New(EUndefinedVariable, ast.Loc{File: "f.va", Line: 10, Col: 1, Length: 1}, "unbound variable: z")
	out := Render(d, "")

	assert.Contains(t, out, "error[E100]: unbound variable: z")
	assert.Contains(t, out, "--> f.va:10:1")
	assert.NotContains(t, out, "^")
}

func TestRenderIncludesHintAndRelated(t *testing.T) {
	d := New(EUnknownFunction, ast.Loc{File: "f.va", Line: 1, Col: 1}, "unknown function: prnt").
		WithHint("did you mean %q?", "print").
		WithRelated(ast.Loc{File: "f.va", Line: 5, Col: 1})

	out := Render(d, "")
	assert.Contains(t, out, `hint: did you mean "print"?`)
	assert.Contains(t, out, "--> f.va:5:1")
}
