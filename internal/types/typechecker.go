package types

// The top-level type-checking entry point lives in internal/elaborate,
// where it has access to the parser's AST (vaisto has no separate Core
// IR) and the typed AST it produces.
