package types_test

// End-to-end defaulting pipeline coverage moved to internal/elaborate's
// integration tests, which exercise lexer -> parser -> elaborator end to
// end the same way this file did against the old Core AST.
