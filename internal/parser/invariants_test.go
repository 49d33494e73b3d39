package parser

// TestPrintDefnIsStable in parser_test.go covers the determinism invariant
// (printing the same parsed AST twice yields identical output).
