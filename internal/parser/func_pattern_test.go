package parser

// Pattern parsing (wildcard, literal, constructor, list/cons, tuple) is
// covered in parser_test.go; vaisto binds function parameters as plain
// symbols, not patterns, so there is no separate func-pattern grammar.
