package types

// The fluent type-construction API formerly here is rebuilt against the
// consolidated representation in types.go as part of internal/elaborate,
// which is where vaisto's inference rules actually construct types.
