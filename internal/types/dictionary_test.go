package types

// Dictionary registry coverage moved to internal/classes.
