package parser

// vaisto has no effect-row annotations in source (no Non-goals-scoped
// effect system); capability typing for process sends is checked by the
// elaborator against process declarations, not parsed as a type-level
// effect set.
