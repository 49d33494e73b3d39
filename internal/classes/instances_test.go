package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/types"
)

func TestBuiltinInstancesResolve(t *testing.T) {
	instances := LoadBuiltinInstances()

	inst, ok := instances.Lookup("Num", types.TInt)
	require.True(t, ok)
	assert.Equal(t, "Int", inst.Head)

	_, ok = instances.Lookup("Num", types.TString)
	assert.False(t, ok, "String has no Num instance")
}

func TestAddOverlappingInstanceIsError(t *testing.T) {
	instances := NewInstanceTable()
	inst := &Instance{Class: "Eq", Head: "Int"}
	require.NoError(t, instances.Add(inst))
	assert.Error(t, instances.Add(inst))
}

func TestLookupMissingInstance(t *testing.T) {
	instances := NewInstanceTable()
	_, ok := instances.Lookup("Show", types.TBool)
	assert.False(t, ok)
}
