package parser

// vaisto has no infix operator precedence to test: every application,
// including arithmetic, is an explicitly parenthesized prefix form, so
// there is no ambiguity for a Pratt-style precedence table to resolve.
