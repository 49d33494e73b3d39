package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/types"
)

func TestApplyDefaultingBindsNumToInt(t *testing.T) {
	tv := &types.TVar{ID: 1}
	sub := types.NewSubst()
	sub, remaining, traces := ApplyDefaulting(sub, []types.Constraint{{Class: "Num", Type: tv}})

	require.Empty(t, remaining)
	require.Len(t, traces, 1)
	assert.Equal(t, types.TInt, sub.Apply(tv))
}

func TestApplyDefaultingLeavesNonDefaultableClassPending(t *testing.T) {
	tv := &types.TVar{ID: 1}
	sub := types.NewSubst()
	_, remaining, traces := ApplyDefaulting(sub, []types.Constraint{{Class: "Show", Type: tv}})

	assert.Empty(t, traces)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Show", remaining[0].Class)
}

func TestApplyDefaultingSkipsAlreadyResolvedVar(t *testing.T) {
	tv := &types.TVar{ID: 1}
	sub := types.NewSubst().Bind(1, types.TFloat)
	sub, remaining, traces := ApplyDefaulting(sub, []types.Constraint{{Class: "Num", Type: tv}})

	assert.Empty(t, traces, "already resolved to Float, nothing to default")
	assert.Empty(t, remaining, "resolved constraints are dropped, not left pending")
	assert.Equal(t, types.TFloat, sub.Apply(tv))
}
