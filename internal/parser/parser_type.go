package parser

// vaisto has no surface type-annotation syntax; types are always inferred.
// The one place a type name appears in source is a constructor field in
// `deftype`, parsed directly into an ast.TypeRef in parseDeftypeDecl.
