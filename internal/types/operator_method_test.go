package types

// Operator-to-class-method mapping coverage moved to internal/classes,
// where OperatorMethod now lives next to the class tables it looks
// methods up in.
