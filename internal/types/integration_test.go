package types

// End-to-end pipeline coverage moved to internal/elaborate's integration
// tests.
