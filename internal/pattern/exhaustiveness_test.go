package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

func clause(pat ast.Pattern) ast.MatchClause {
	return ast.MatchClause{Pattern: pat, Body: &ast.Literal{Kind: ast.LitInt}}
}

func TestCheckExhaustiveBoolMatch(t *testing.T) {
	clauses := []ast.MatchClause{
		clause(&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitBool, Bool: true}}),
		clause(&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitBool, Bool: false}}),
	}
	res := Check(clauses, types.TBool, nil)
	assert.True(t, res.Exhaustive)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.Redundant)
}

func TestCheckNonExhaustiveBoolMatchNamesMissingCase(t *testing.T) {
	clauses := []ast.MatchClause{
		clause(&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitBool, Bool: true}}),
	}
	res := Check(clauses, types.TBool, nil)
	require.False(t, res.Exhaustive)
	require.Len(t, res.Missing, 1)
	assert.Equal(t, "false", res.Missing[0])
}

func TestCheckWildcardMakesBoolMatchExhaustive(t *testing.T) {
	clauses := []ast.MatchClause{
		clause(&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitBool, Bool: true}}),
		clause(&ast.PWildcard{}),
	}
	res := Check(clauses, types.TBool, nil)
	assert.True(t, res.Exhaustive)
}

func TestCheckSumTypeRequiresEveryConstructor(t *testing.T) {
	table := fakeTable{"Option": {
		{Name: "Some", Fields: []types.Type{types.TInt}},
		{Name: "None"},
	}}
	clauses := []ast.MatchClause{
		clause(&ast.PCtor{Ctor: "Some", Args: []ast.Pattern{&ast.PVar{Name: "v"}}}),
	}
	res := Check(clauses, &types.Sum{Name: "Option"}, table)
	require.False(t, res.Exhaustive)
	require.Len(t, res.Missing, 1)
	assert.Equal(t, "None", res.Missing[0])
}

func TestCheckSumTypeExhaustiveWithAllConstructors(t *testing.T) {
	table := fakeTable{"Option": {
		{Name: "Some", Fields: []types.Type{types.TInt}},
		{Name: "None"},
	}}
	clauses := []ast.MatchClause{
		clause(&ast.PCtor{Ctor: "Some", Args: []ast.Pattern{&ast.PVar{Name: "v"}}}),
		clause(&ast.PCtor{Ctor: "None"}),
	}
	res := Check(clauses, &types.Sum{Name: "Option"}, table)
	assert.True(t, res.Exhaustive)
}

func TestCheckNestedConstructorExhaustiveness(t *testing.T) {
	table := fakeTable{
		"Option": {
			{Name: "Some", Fields: []types.Type{types.TBool}},
			{Name: "None"},
		},
	}
	// Some(true), Some(false), None — exhaustive only once both nested
	// bool cases inside Some are covered, per spec.md's "all sub-patterns
	// are themselves exhaustive" rule.
	clauses := []ast.MatchClause{
		clause(&ast.PCtor{Ctor: "Some", Args: []ast.Pattern{&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitBool, Bool: true}}}}),
		clause(&ast.PCtor{Ctor: "None"}),
	}
	res := Check(clauses, &types.Sum{Name: "Option"}, table)
	require.False(t, res.Exhaustive)
	assert.Contains(t, res.Missing, "Some(false)")

	clauses = append(clauses[:1],
		clause(&ast.PCtor{Ctor: "Some", Args: []ast.Pattern{&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitBool, Bool: false}}}}),
		clause(&ast.PCtor{Ctor: "None"}),
	)
	res = Check(clauses, &types.Sum{Name: "Option"}, table)
	assert.True(t, res.Exhaustive)
}

func TestCheckFlagsRedundantClauseAfterWildcard(t *testing.T) {
	clauses := []ast.MatchClause{
		clause(&ast.PWildcard{}),
		clause(&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitBool, Bool: true}}),
	}
	res := Check(clauses, types.TBool, nil)
	assert.True(t, res.Exhaustive)
	assert.Equal(t, []int{1}, res.Redundant)
}

func TestCheckOpenTypeRequiresWildcard(t *testing.T) {
	clauses := []ast.MatchClause{
		clause(&ast.PLiteral{Lit: &ast.Literal{Kind: ast.LitInt, Int: 1}}),
	}
	res := Check(clauses, types.TInt, nil)
	assert.False(t, res.Exhaustive, "Int is infinite; only a wildcard/var pattern closes it")
}
