package types

// The kinded type representation formerly split across types.go and
// types_v2.go (TVar2, RowVar, TFunc2, TRecord2, QualifiedScheme, ...) has
// been consolidated into the single representation in types.go: vaisto
// has no effect system, so there was never a need for two parallel type
// families distinguished only by whether they carried a Kind.
