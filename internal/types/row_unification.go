package types

// Row unification lives in unification.go (UnifyRows) alongside scalar
// Unify: vaisto has a single row kind (record fields), so splitting row
// unification into its own unifier type the way the teacher's effect-row
// system did bought nothing here.
