package types

// Numeric defaulting at generalization boundaries is part of constraint
// resolution and lives in internal/classes alongside instance lookup,
// where it has access to the class/instance tables it defaults against.
