package parser

// (ns ...) and (import ...) parsing is covered by TestParseNSAndImport in
// parser_test.go.
