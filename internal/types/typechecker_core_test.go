package types

// Elaborator coverage moved to internal/elaborate.
