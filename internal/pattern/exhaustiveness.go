package pattern

import (
	"fmt"
	"strings"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

// Result is the outcome of checking a match's clause set: whether it is
// exhaustive, a witness per uncovered case if not, and the indices of
// clauses that are unreachable (covered entirely by an earlier clause) —
// non-fatal per spec.md: "overlapping/redundant clauses are warnings
// (not fatal)".
type Result struct {
	Exhaustive bool
	Missing    []string
	Redundant  []int
}

// row is one clause reduced to a vector of patterns: initially a single
// column (the top-level pattern against the scrutinee), expanded to more
// columns as constructor specialization recurses into sub-patterns.
type row struct {
	clauseIndex int
	patterns    []ast.Pattern
}

// Check decides whether clauses is exhaustive against scrutineeType,
// naming a missing-constructor witness per gap, and flags any clause
// that can never be reached. Grounded on the teacher's
// ExhaustivenessChecker (internal/elaborate/exhaustiveness.go) and
// internal/dtree's matrix-specialization technique, generalized from the
// teacher's flat Bool-or-wildcard universe to a full usefulness
// algorithm that enumerates a sum type's constructors and recurses into
// each one's fields — needed for spec.md's "every constructor is covered
// by at least one clause where all sub-patterns are themselves
// exhaustive".
func Check(clauses []ast.MatchClause, scrutineeType types.Type, table TypeTable) Result {
	rows := make([]row, len(clauses))
	for i, cl := range clauses {
		rows[i] = row{clauseIndex: i, patterns: []ast.Pattern{cl.Pattern}}
	}

	reached := make(map[int]bool)
	missing := usefulness(rows, []types.Type{scrutineeType}, table, reached, nil)

	var redundant []int
	for i := range clauses {
		if !reached[i] {
			redundant = append(redundant, i)
		}
	}

	return Result{Exhaustive: len(missing) == 0, Missing: missing, Redundant: redundant}
}

// usefulness finds every way the given column types can be inhabited
// without matching any row, recording a witness string per gap and
// marking which rows were actually consulted (for redundancy warnings).
func usefulness(rows []row, colTypes []types.Type, table TypeTable, reached map[int]bool, prefix []string) []string {
	if len(colTypes) == 0 {
		if len(rows) == 0 {
			return []string{strings.Join(prefix, " ")}
		}
		reached[rows[0].clauseIndex] = true
		return nil
	}

	shape, complete := classify(colTypes[0], table)

	if !complete {
		// Infinite or opaque head (Int/Float/String/TVar/unresolved) —
		// only a wildcard/var row can cover the rest of the universe.
		var defaults []row
		for _, r := range rows {
			if isCatchAll(r.patterns[0]) {
				defaults = append(defaults, row{clauseIndex: r.clauseIndex, patterns: r.patterns[1:]})
				reached[r.clauseIndex] = true
			} else if len(defaults) == 0 {
				// a literal ahead of every catch-all matches some value
				reached[r.clauseIndex] = true
			}
		}
		if len(defaults) == 0 {
			return []string{strings.Join(append(append([]string{}, prefix...), "_"), " ")}
		}
		return usefulness(defaults, colTypes[1:], table, reached, append(prefix, "_"))
	}

	var missing []string
	for _, c := range shape {
		specialized := specialize(rows, c)
		nextTypes := append(append([]types.Type{}, c.Fields...), colTypes[1:]...)
		witness := c.Name
		if len(c.Fields) > 0 {
			witness = fmt.Sprintf("%s(%s)", c.Name, strings.Repeat("_,", len(c.Fields)-1)+"_")
		}
		sub := usefulness(specialized, nextTypes, table, reached, append(prefix, witness))
		missing = append(missing, sub...)
	}
	return missing
}

// classify returns the finite constructor set for t (true if the set is
// actually exhaustive/finite) or (nil, false) for an infinite/opaque type
// that only a wildcard can cover.
func classify(t types.Type, table TypeTable) ([]CtorSig, bool) {
	switch v := t.(type) {
	case *types.TCon:
		if v.Name == "Bool" {
			return []CtorSig{{Name: "true"}, {Name: "false"}}, true
		}
		return nil, false
	case *types.Sum:
		ctors, ok := table.Constructors(v.Name)
		if !ok {
			return nil, false
		}
		return ctors, true
	case *types.TTuple:
		return []CtorSig{{Name: "", Fields: v.Elems}}, true
	default:
		return nil, false
	}
}

// specialize keeps the rows whose first pattern either matches
// constructor c or is a catch-all, expanding a matching constructor
// pattern's sub-patterns into new columns (a catch-all expands to one
// wildcard per field) and dropping the matched column.
func specialize(rows []row, c CtorSig) []row {
	var out []row
	for _, r := range rows {
		head := r.patterns[0]
		rest := r.patterns[1:]
		switch p := head.(type) {
		case *ast.PWildcard, *ast.PVar:
			expanded := make([]ast.Pattern, len(c.Fields))
			for i := range expanded {
				expanded[i] = &ast.PWildcard{}
			}
			out = append(out, row{clauseIndex: r.clauseIndex, patterns: append(expanded, rest...)})
		case *ast.PCtor:
			if c.Name != "" && p.Ctor == c.Name {
				out = append(out, row{clauseIndex: r.clauseIndex, patterns: append(append([]ast.Pattern{}, p.Args...), rest...)})
			}
		case *ast.PLiteral:
			if matchesLiteralCtor(p, c.Name) {
				out = append(out, row{clauseIndex: r.clauseIndex, patterns: rest})
			}
		case *ast.PTuple:
			if c.Name == "" {
				out = append(out, row{clauseIndex: r.clauseIndex, patterns: append(append([]ast.Pattern{}, p.Elems...), rest...)})
			}
		}
	}
	return out
}

func matchesLiteralCtor(p *ast.PLiteral, ctorName string) bool {
	if p.Lit.Kind != ast.LitBool {
		return false
	}
	if p.Lit.Bool {
		return ctorName == "true"
	}
	return ctorName == "false"
}

func isCatchAll(p ast.Pattern) bool {
	switch p.(type) {
	case *ast.PWildcard, *ast.PVar:
		return true
	default:
		return false
	}
}
