package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

func TestBuiltinNumMethodCallResolvesDictionary(t *testing.T) {
	file := &ast.File{
		Name: "sum3",
		Decls: []ast.Decl{
			&ast.DefnDecl{
				Name: "sum3",
				Body: &ast.Call{Fn: sym("add"), Args: []ast.Expr{lit(1), lit(2)}},
			},
		},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)

	callExpr := file.Decls[0].(*ast.DefnDecl).Body
	info, ok := module.ClassCall[callExpr]
	require.True(t, ok)
	assert.Equal(t, "Num", info.Class)
	assert.Equal(t, "Int", info.Dict.Head)
}

func TestComparisonOperatorAliasDispatchesEqClass(t *testing.T) {
	file := &ast.File{
		Name: "same",
		Decls: []ast.Decl{
			&ast.DefnDecl{
				Name: "same",
				Body: &ast.Call{Fn: sym("=="), Args: []ast.Expr{lit(3), lit(3)}},
			},
		},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)

	scheme := module.Exports["same"]
	fn := scheme.Type.(*types.TFun)
	assert.True(t, fn.Return.Equals(types.TBool))
}

func TestUserClassMethodElaboratesInstanceBody(t *testing.T) {
	file := &ast.File{
		Name: "greeting",
		Decls: []ast.Decl{
			&ast.DefclassDecl{
				Name:  "Greet",
				TyVar: "a",
				Methods: []*ast.MethodSig{
					{Name: "greet", Arity: 1},
				},
			},
			&ast.InstanceDecl{
				Class: "Greet",
				Head:  "Int",
				Methods: []*ast.MethodImpl{
					{Name: "greet", Params: []string{"x"}, Body: &ast.Atom{Tag: "hello"}},
				},
			},
			&ast.DefnDecl{
				Name: "greeting",
				Body: &ast.Call{Fn: sym("greet"), Args: []ast.Expr{lit(1)}},
			},
		},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)

	callExpr := file.Decls[2].(*ast.DefnDecl).Body
	info, ok := module.ClassCall[callExpr]
	require.True(t, ok)
	assert.Equal(t, "Greet", info.Class)
}

func TestClassCallMissingInstanceReportsError(t *testing.T) {
	file := &ast.File{
		Name: "greeting",
		Decls: []ast.Decl{
			&ast.DefclassDecl{
				Name:  "Greet",
				TyVar: "a",
				Methods: []*ast.MethodSig{
					{Name: "greet", Arity: 1},
				},
			},
			&ast.DefnDecl{
				Name: "greeting",
				Body: &ast.Call{Fn: sym("greet"), Args: []ast.Expr{lit(1)}},
			},
		},
	}

	module := Elaborate(file)
	require.False(t, module.Ok())
}
