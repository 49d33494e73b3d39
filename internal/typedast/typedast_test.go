package typedast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/classes"
	"github.com/vaisto-lang/vaisto/internal/pattern"
	"github.com/vaisto-lang/vaisto/internal/types"
)

func TestNewModuleStartsEmptyAndOk(t *testing.T) {
	m := NewModule("demo")
	assert.Equal(t, "demo", m.Name)
	assert.True(t, m.Ok())
	assert.Empty(t, m.Exports)
	assert.Empty(t, m.Deftypes)
}

func TestTypeOfReturnsAnnotatedType(t *testing.T) {
	m := NewModule("demo")
	lit := &ast.Literal{Kind: ast.LitInt}

	assert.Nil(t, m.TypeOf(lit), "unannotated node has no recorded type")

	m.Types[lit] = types.TInt
	assert.Equal(t, types.TInt, m.TypeOf(lit))
}

func TestOkReflectsAccumulatedErrors(t *testing.T) {
	m := NewModule("demo")
	require.True(t, m.Ok())

	m.Errors = append(m.Errors, assert.AnError)
	assert.False(t, m.Ok())
}

func TestConstructorsViewsAdmittedDeftype(t *testing.T) {
	m := NewModule("demo")
	m.Deftypes["Option"] = &DeftypeInfo{
		Name: "Option",
		Ctors: []CtorInfo{
			{Name: "Some", Fields: []types.Type{types.TInt}},
			{Name: "None"},
		},
	}

	ctors, ok := m.Constructors("Option")
	require.True(t, ok)
	require.Len(t, ctors, 2)
	assert.Equal(t, "Some", ctors[0].Name)
	assert.Equal(t, []types.Type{types.TInt}, ctors[0].Fields)
	assert.Equal(t, "None", ctors[1].Name)

	_, ok = m.Constructors("NoSuchType")
	assert.False(t, ok)
}

func TestModuleImplementsPatternTypeTable(t *testing.T) {
	var _ pattern.TypeTable = NewModule("demo")
}

func TestClassCallRecordsDictionary(t *testing.T) {
	m := NewModule("demo")
	call := &ast.Call{Fn: &ast.Sym{Name: "show"}, Args: []ast.Expr{&ast.Literal{Kind: ast.LitInt}}}

	m.ClassCall[call] = &ClassCallInfo{
		Class:  "Show",
		Method: "show",
		Dict:   &classes.Dictionary{Class: "Show", Head: "Int"},
	}

	info, ok := m.ClassCall[call]
	require.True(t, ok)
	assert.Equal(t, "Show", info.Class)
	assert.Equal(t, "Int", info.Dict.Head)
}
