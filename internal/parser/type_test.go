package parser

// vaisto has no surface type-annotation grammar (see parser_type.go);
// constructor field type references are covered by
// TestParseDeftypeWithPositionalFields and TestParseDeftypeWithLabeledFields
// in parser_test.go.
