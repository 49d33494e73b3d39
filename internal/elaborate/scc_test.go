package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
)

func TestSccGroupsMutualRecursionTogether(t *testing.T) {
	defns := []*ast.DefnDecl{
		{Name: "isEven", Params: []string{"n"}, Body: &ast.Call{Fn: sym("isOdd"), Args: []ast.Expr{sym("n")}}},
		{Name: "isOdd", Params: []string{"n"}, Body: &ast.Call{Fn: sym("isEven"), Args: []ast.Expr{sym("n")}}},
		{Name: "triple", Params: []string{"n"}, Body: &ast.BinOp{Op: "*", Left: sym("n"), Right: lit(3)}},
	}

	groups := sccGroups(defns)

	var mutualGroup []string
	for _, g := range groups {
		if len(g) == 2 {
			mutualGroup = g
		}
	}
	require.NotNil(t, mutualGroup, "expected isEven/isOdd grouped together, got %v", groups)
	assert.ElementsMatch(t, []string{"isEven", "isOdd"}, mutualGroup)
}

func TestSccGroupsSeparatesIndependentDefns(t *testing.T) {
	defns := []*ast.DefnDecl{
		{Name: "a", Body: lit(1)},
		{Name: "b", Body: &ast.Call{Fn: sym("a"), Args: nil}},
	}

	groups := sccGroups(defns)
	assert.Len(t, groups, 2)
}
