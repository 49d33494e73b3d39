package parser

// Literal parsing (int/float/string/bool) lives in parser_expr.go; vaisto
// has no char literal, so there's no separate lexer/parser path for one.
