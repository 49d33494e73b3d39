package types

// match/pattern elaboration and exhaustiveness checking live in
// internal/pattern and internal/elaborate.
