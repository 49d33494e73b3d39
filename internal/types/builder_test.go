package types

// Fluent type-construction coverage moved to internal/elaborate alongside
// the rebuilt Builder API.
