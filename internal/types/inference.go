package types

// The inference context (environment stack, unifier, fresh-variable
// counter, deferred qualified constraints, error path tracking) lives in
// internal/ctx; the expression-shaped inference rules themselves live in
// internal/elaborate.
