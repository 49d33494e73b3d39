package parser

// Recovery from malformed input (unmatched parens, missing bindings) is
// covered by TestParseErrorUnmatchedParen and TestParseErrorMissingBindingInit
// in parser_test.go, and by FuzzParse's malformed seeds.
