package types

// Dictionary key normalization coverage moved to internal/classes.
