package types

// The dictionary-passing registry (class/instance method tables keyed by
// namespace::Class::Type::method) lives in internal/classes, next to the
// instance environment it resolves against.
