package types

// Auto-loaded builtin instance coverage (Ord[Int] etc.) moved to
// internal/classes, where LoadBuiltinInstances now lives.
