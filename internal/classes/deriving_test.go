package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
)

func TestDeriveEqOnRecordSucceeds(t *testing.T) {
	decl := &ast.DeftypeDecl{
		Name: "Point",
		Ctors: []*ast.CtorDecl{
			{Name: "Point", Fields: []*ast.FieldDecl{
				{Label: "x", Type: &ast.TypeRef{Name: "Int"}},
				{Label: "y", Type: &ast.TypeRef{Name: "Int"}},
			}},
		},
		Deriving: []string{"Eq"},
	}
	instances := NewInstanceTable()
	require.NoError(t, ApplyDeriving(instances, decl))

	inst, ok := instances.LookupHead("Eq", "Point")
	require.True(t, ok)
	assert.True(t, inst.Derived)
}

func TestDeriveShowOnNullarySumSucceeds(t *testing.T) {
	decl := &ast.DeftypeDecl{
		Name: "Color",
		Ctors: []*ast.CtorDecl{
			{Name: "Red"}, {Name: "Green"}, {Name: "Blue"},
		},
		Deriving: []string{"Show"},
	}
	instances := NewInstanceTable()
	require.NoError(t, ApplyDeriving(instances, decl))

	_, ok := instances.LookupHead("Show", "Color")
	assert.True(t, ok)
}

func TestDeriveShowOnFieldedVariantIsError(t *testing.T) {
	decl := &ast.DeftypeDecl{
		Name: "Shape",
		Ctors: []*ast.CtorDecl{
			{Name: "Circle", Fields: []*ast.FieldDecl{{Type: &ast.TypeRef{Name: "Int"}}}},
		},
		Deriving: []string{"Show"},
	}
	instances := NewInstanceTable()
	err := ApplyDeriving(instances, decl)
	assert.Error(t, err)
}

func TestDeriveUnknownClassIsError(t *testing.T) {
	decl := &ast.DeftypeDecl{
		Name:     "Color",
		Ctors:    []*ast.CtorDecl{{Name: "Red"}},
		Deriving: []string{"Ord"},
	}
	instances := NewInstanceTable()
	err := ApplyDeriving(instances, decl)
	assert.Error(t, err)
}
