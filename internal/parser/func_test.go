package parser

// defn/fn parsing is covered by TestParseDefn and TestParseIfLetFn in
// parser_test.go.
