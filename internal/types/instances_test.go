package types

// Instance environment coverage moved to internal/classes.
