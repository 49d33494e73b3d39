package parser

// Expression-form parsing (if/let/fn/do/match/field access/spawn/send) is
// covered in parser_test.go.
