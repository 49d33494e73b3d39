package parser

// Declaration- and expression-form coverage lives in parser_test.go,
// one test per production in the S-expression grammar.
