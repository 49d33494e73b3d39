package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/types"
)

func sym(name string) *ast.Sym { return &ast.Sym{Name: name} }

func lit(n int64) *ast.Literal { return &ast.Literal{Kind: ast.LitInt, Int: n} }

func litf(f float64) *ast.Literal { return &ast.Literal{Kind: ast.LitFloat, Float: f} }

func TestElaborateSimpleDefn(t *testing.T) {
	file := &ast.File{
		Name: "identity",
		Decls: []ast.Decl{
			&ast.DefnDecl{Name: "identity", Params: []string{"x"}, Body: sym("x")},
		},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)

	scheme, ok := module.Exports["identity"]
	require.True(t, ok)
	assert.NotEmpty(t, scheme.TVars, "identity should generalize to a polymorphic a -> a")
}

func TestElaborateArithmeticWidensIntToFloat(t *testing.T) {
	file := &ast.File{
		Name: "widen",
		Decls: []ast.Decl{
			&ast.DefnDecl{
				Name: "total",
				Body: &ast.BinOp{Op: "+", Left: lit(1), Right: litf(2.5)},
			},
		},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)

	scheme := module.Exports["total"]
	fn, ok := scheme.Type.(*types.TFun)
	require.True(t, ok)
	assert.True(t, fn.Return.Equals(types.TFloat))
}

func TestElaborateUnknownFunctionSuggestsTypo(t *testing.T) {
	file := &ast.File{
		Name: "typo",
		Decls: []ast.Decl{
			&ast.DefnDecl{Name: "run", Params: []string{"x"}, Body: &ast.Call{Fn: sym("lenght"), Args: []ast.Expr{sym("x")}}},
			&ast.DefnDecl{Name: "length", Params: []string{"x"}, Body: lit(0)},
		},
	}

	module := Elaborate(file)
	require.False(t, module.Ok())

	var hints []string
	for _, err := range module.Errors {
		if d, ok := err.(*diagnostic.Diagnostic); ok {
			hints = append(hints, d.Hint)
		}
	}
	assert.Contains(t, hints, `did you mean "length"?`)
}

func TestElaborateIfWidensDivergentAtoms(t *testing.T) {
	file := &ast.File{
		Name: "status",
		Decls: []ast.Decl{
			&ast.DefnDecl{
				Name: "status",
				Body: &ast.If{
					Cond: &ast.Literal{Kind: ast.LitBool, Bool: true},
					Then: &ast.Atom{Tag: "ok"},
					Else: &ast.Atom{Tag: "error"},
				},
			},
		},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)

	scheme := module.Exports["status"]
	fn := scheme.Type.(*types.TFun)
	assert.True(t, fn.Return.Equals(types.TAtom))
}

func TestElaborateEvalExpression(t *testing.T) {
	file := &ast.File{
		Name: "eval",
		Eval: &ast.BinOp{Op: "*", Left: lit(2), Right: lit(21)},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)
	assert.True(t, module.TypeOf(file.Eval).Equals(types.TInt))
}
