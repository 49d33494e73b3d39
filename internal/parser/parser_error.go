package parser

// ParserError and its constructor live in parser.go. This file is kept as
// a placeholder for error-recovery helpers that may grow alongside the
// diagnostic package's E2xx range.
