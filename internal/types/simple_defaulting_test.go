package types

// Defaulting coverage moved to internal/classes.
