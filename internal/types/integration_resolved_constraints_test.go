package types_test

// Resolved-constraint pipeline coverage moved to internal/elaborate's
// integration tests.
