package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
)

func optionDeftype() *ast.DeftypeDecl {
	return &ast.DeftypeDecl{
		Name: "Option",
		Ctors: []*ast.CtorDecl{
			{Name: "Some", Fields: []*ast.FieldDecl{{Type: &ast.TypeRef{Name: "a"}}}},
			{Name: "None"},
		},
		Deriving: []string{"Eq"},
	}
}

func TestAdmitDeftypeRegistersConstructorsAsFunctions(t *testing.T) {
	file := &ast.File{
		Name:  "option",
		Decls: []ast.Decl{optionDeftype()},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)

	info, ok := module.Deftypes["Option"]
	require.True(t, ok)
	assert.False(t, info.IsRecord)
	assert.Len(t, info.Ctors, 2)
}

func TestMatchOnUnresolvedScrutineePinsNominalType(t *testing.T) {
	// `withDefault` matches its first parameter before any other use
	// pins its type, exercising the TVar-scrutinee pre-unification
	// workaround in inferMatch.
	file := &ast.File{
		Name: "withDefault",
		Decls: []ast.Decl{
			optionDeftype(),
			&ast.DefnDecl{
				Name:   "withDefault",
				Params: []string{"opt", "fallback"},
				Body: &ast.Match{
					Scrutinee: sym("opt"),
					Clauses: []ast.MatchClause{
						{Pattern: &ast.PCtor{Ctor: "Some", Args: []ast.Pattern{&ast.PVar{Name: "x"}}}, Body: sym("x")},
						{Pattern: &ast.PCtor{Ctor: "None"}, Body: sym("fallback")},
					},
				},
			},
		},
	}

	module := Elaborate(file)
	require.True(t, module.Ok(), "unexpected errors: %v", module.Errors)
	_, ok := module.Exports["withDefault"]
	assert.True(t, ok)
}

func TestMatchReportsNonExhaustive(t *testing.T) {
	file := &ast.File{
		Name: "unwrapOnly",
		Decls: []ast.Decl{
			optionDeftype(),
			&ast.DefnDecl{
				Name:   "unwrapOnly",
				Params: []string{"opt"},
				Body: &ast.Match{
					Scrutinee: sym("opt"),
					Clauses: []ast.MatchClause{
						{Pattern: &ast.PCtor{Ctor: "Some", Args: []ast.Pattern{&ast.PVar{Name: "x"}}}, Body: sym("x")},
					},
				},
			},
		},
	}

	module := Elaborate(file)
	require.False(t, module.Ok())
}
