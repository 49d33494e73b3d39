package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/ctx"
	"github.com/vaisto-lang/vaisto/internal/types"
)

type fakeTable map[string][]CtorSig

func (f fakeTable) Constructors(name string) ([]CtorSig, bool) {
	ctors, ok := f[name]
	return ctors, ok
}

func TestBindVarBindsWholeScrutinee(t *testing.T) {
	c := ctx.New()
	bindings, _, err := Bind(&ast.PVar{Name: "x"}, types.TInt, c, types.NewSubst(), nil)
	require.NoError(t, err)
	assert.Equal(t, types.TInt, bindings["x"])
}

func TestBindWildcardIntroducesNoBindings(t *testing.T) {
	c := ctx.New()
	bindings, _, err := Bind(&ast.PWildcard{}, types.TInt, c, types.NewSubst(), nil)
	require.NoError(t, err)
	assert.Empty(t, bindings)
}

func TestBindLiteralUnifiesWithScrutinee(t *testing.T) {
	c := ctx.New()
	tv := c.FreshTVar()
	_, sub, err := Bind(&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitInt, Int: 1}}, tv, c, types.NewSubst(), nil)
	require.NoError(t, err)
	assert.Equal(t, types.TInt, sub.Apply(tv))
}

func TestBindLiteralMismatchIsError(t *testing.T) {
	c := ctx.New()
	_, _, err := Bind(&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitInt, Int: 1}}, types.TBool, c, types.NewSubst(), nil)
	assert.Error(t, err)
}

func TestBindTupleDestructures(t *testing.T) {
	c := ctx.New()
	scrutinee := &types.TTuple{Elems: []types.Type{types.TInt, types.TString}}
	bindings, _, err := Bind(&ast.PTuple{Elems: []ast.Pattern{
		&ast.PVar{Name: "a"}, &ast.PVar{Name: "b"},
	}}, scrutinee, c, types.NewSubst(), nil)
	require.NoError(t, err)
	assert.Equal(t, types.TInt, bindings["a"])
	assert.Equal(t, types.TString, bindings["b"])
}

func TestBindConsDestructuresListHeadAndTail(t *testing.T) {
	c := ctx.New()
	scrutinee := &types.TList{Elem: types.TInt}
	bindings, _, err := Bind(&ast.PCons{
		Head: &ast.PVar{Name: "h"},
		Tail: &ast.PVar{Name: "t"},
	}, scrutinee, c, types.NewSubst(), nil)
	require.NoError(t, err)
	assert.Equal(t, types.TInt, bindings["h"])
	assert.Equal(t, &types.TList{Elem: types.TInt}, bindings["t"])
}

func TestBindCtorDestructuresSumVariant(t *testing.T) {
	table := fakeTable{
		"Option": {
			{Name: "Some", Fields: []types.Type{types.TInt}},
			{Name: "None"},
		},
	}
	c := ctx.New()
	scrutinee := &types.Sum{Name: "Option"}
	bindings, _, err := Bind(&ast.PCtor{Ctor: "Some", Args: []ast.Pattern{&ast.PVar{Name: "v"}}}, scrutinee, c, types.NewSubst(), table)
	require.NoError(t, err)
	assert.Equal(t, types.TInt, bindings["v"])
}

func TestBindCtorArityMismatchIsError(t *testing.T) {
	table := fakeTable{"Option": {{Name: "Some", Fields: []types.Type{types.TInt}}}}
	c := ctx.New()
	_, _, err := Bind(&ast.PCtor{Ctor: "Some", Args: []ast.Pattern{}}, &types.Sum{Name: "Option"}, c, types.NewSubst(), table)
	assert.Error(t, err)
}

func TestBindCtorOnRecordDestructuresFields(t *testing.T) {
	table := fakeTable{
		"Point": {{Name: "Point", Fields: []types.Type{types.TInt, types.TInt}}},
	}
	c := ctx.New()
	scrutinee := &types.Record{Name: "Point", Row: &types.Row{Labels: map[string]types.Type{"x": types.TInt, "y": types.TInt}}}
	bindings, _, err := Bind(&ast.PCtor{Ctor: "Point", Args: []ast.Pattern{
		&ast.PVar{Name: "x"}, &ast.PVar{Name: "y"},
	}}, scrutinee, c, types.NewSubst(), table)
	require.NoError(t, err)
	assert.Equal(t, types.TInt, bindings["x"])
	assert.Equal(t, types.TInt, bindings["y"])
}
