package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

func TestResolveBuiltinInstance(t *testing.T) {
	instances := LoadBuiltinInstances()
	dict, err := ResolveConstraint(instances, "Num", types.TInt)
	require.NoError(t, err)
	assert.Equal(t, "Num", dict.Class)
	assert.Equal(t, "Int", dict.Head)
	assert.Empty(t, dict.Params)
}

func TestResolveMissingInstanceError(t *testing.T) {
	instances := LoadBuiltinInstances()
	_, err := ResolveConstraint(instances, "Show", &types.Sum{Name: "Maybe"})
	require.Error(t, err)
	var missing *MissingInstanceError
	assert.ErrorAs(t, err, &missing)
}

func TestResolveEqDerivesFromOrd(t *testing.T) {
	instances := NewInstanceTable()
	require.NoError(t, instances.Add(&Instance{Class: "Ord", Head: "Widget"}))

	dict, err := ResolveConstraint(instances, "Eq", &types.Sum{Name: "Widget"})
	require.NoError(t, err)
	assert.Equal(t, "Eq", dict.Class)
	assert.Equal(t, "Widget", dict.Head)
}

func TestResolveConstrainedInstanceNestsDictionary(t *testing.T) {
	instances := LoadBuiltinInstances()
	require.NoError(t, instances.Add(&Instance{
		Class:       "Eq",
		Head:        "List",
		HeadArgs:    []string{"a"},
		Constraints: []ast.ClassConstraintRef{{Class: "Eq", Param: "a"}},
	}))

	dict, err := ResolveConstraint(instances, "Eq", &types.TList{Elem: types.TInt})
	require.NoError(t, err)
	assert.Equal(t, "List", dict.Head)
	require.Len(t, dict.Params, 1)
	assert.Equal(t, "Int", dict.Params[0].Head)
}

func TestResolveDepthBudgetExceeded(t *testing.T) {
	instances := LoadBuiltinInstances()
	require.NoError(t, instances.Add(&Instance{
		Class:       "Eq",
		Head:        "List",
		HeadArgs:    []string{"a"},
		Constraints: []ast.ClassConstraintRef{{Class: "Eq", Param: "a"}},
	}))

	// Build List<List<...<Int>...>> nested deeper than the resolution
	// budget; each layer needs the inner layer's Eq dictionary, so the
	// chain must be cut off rather than recursing forever.
	var deep types.Type = types.TInt
	for i := 0; i < maxResolutionDepth+10; i++ {
		deep = &types.TList{Elem: deep}
	}

	_, err := ResolveConstraint(instances, "Eq", deep)
	assert.Error(t, err)
}
