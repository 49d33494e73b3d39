package parser

// vaisto has no surface effect-row syntax to parse (see parser_effect.go);
// process capability checking is an elaborator concern, covered in
// internal/elaborate.
