package types

// AST-shaped inference helpers live in internal/elaborate next to the
// rules that use them.
