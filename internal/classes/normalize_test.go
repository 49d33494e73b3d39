package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaisto-lang/vaisto/internal/types"
)

func TestNormalizeTypeNameScalars(t *testing.T) {
	assert.Equal(t, "Int", NormalizeTypeName(types.TInt))
	assert.Equal(t, "List<Int>", NormalizeTypeName(&types.TList{Elem: types.TInt}))
	assert.Equal(t, "Tuple<Int,Bool>", NormalizeTypeName(&types.TTuple{Elems: []types.Type{types.TInt, types.TBool}}))
}

func TestNormalizeTypeNameRecordSortsFields(t *testing.T) {
	r := &types.Record{Row: &types.Row{Labels: map[string]types.Type{
		"y": types.TInt,
		"x": types.TString,
	}}}
	assert.Equal(t, "Record<x:String,y:Int>", NormalizeTypeName(r))
}

func TestNormalizeTypeNameOpenRecordIncludesTail(t *testing.T) {
	r := &types.Record{Row: &types.Row{
		Labels: map[string]types.Type{"x": types.TInt},
		Tail:   &types.RVar{ID: 9},
	}}
	assert.Equal(t, "Record<x:Int|_r9>", NormalizeTypeName(r))
}

func TestNormalizeTypeNamePid(t *testing.T) {
	assert.Equal(t, "Pid<Counter>", NormalizeTypeName(&types.PidOf{Process: "Counter"}))
}
