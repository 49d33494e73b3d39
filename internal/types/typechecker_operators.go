package types

// OperatorMethod and binary/unary operator elaboration live in
// internal/classes and internal/elaborate respectively.
