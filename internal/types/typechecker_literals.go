package types

// Literal elaboration lives in internal/elaborate.
