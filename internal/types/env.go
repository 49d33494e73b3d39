package types

// The name-to-scheme type environment lives in internal/ctx, next to the
// rest of the inference context (fresh-variable counter, scope stack,
// deferred constraints) it's part of.
