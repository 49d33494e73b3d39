package types

// Expression inference coverage moved to internal/elaborate, where the
// rules that parse and infer vaisto's actual grammar live.
