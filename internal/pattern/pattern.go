// Package pattern elaborates match patterns against a scrutinee type —
// producing the bindings and refined sub-types each pattern introduces —
// and checks a clause set for exhaustiveness, naming a missing
// constructor witness when it isn't (spec.md §4.6).
//
// Dependency-wise this package sits beside internal/classes: both depend
// only on internal/types and internal/ctx, not on the expression
// elaborator, matching the teacher's decision-tree compiler
// (internal/dtree) which likewise only needs core.CorePattern and
// types.Type, not the rest of the evaluator.
package pattern

import "github.com/vaisto-lang/vaisto/internal/types"

// CtorSig is one constructor's name and field types, as admitted by a
// deftype declaration — a sum variant's payload types, or a record's
// field types in declaration order.
type CtorSig struct {
	Name   string
	Fields []types.Type
}

// TypeTable is the minimal view the pattern matcher needs into admitted
// nominal type declarations: given a sum or record type's name, its
// full constructor set, so exhaustiveness can enumerate every case and
// sub-patterns can be checked against each constructor's field types.
// Populated by the elaborator's type-admission pass; this package only
// consumes it, so it has no dependency on internal/elaborate.
type TypeTable interface {
	Constructors(name string) ([]CtorSig, bool)
}
