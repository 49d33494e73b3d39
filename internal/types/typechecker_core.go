package types

// The expression elaborator (the bulk of what was CoreTypeChecker) lives
// in internal/elaborate, rewritten against vaisto's surface AST (ast.Expr)
// instead of a separate Core IR: vaisto elaborates directly from the
// parsed S-expression tree, so there is no Core-lowering pass to mirror
// here.
