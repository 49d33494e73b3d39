package types

// Canonical type-name normalization for dictionary registry keys lives in
// internal/classes, next to the registry that consumes it.
