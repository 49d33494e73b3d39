package types

// Coherent substitution application across a typed node and its pending
// constraints is handled inline by internal/elaborate using Subst.Apply
// and Subst.ApplyScheme from substitution.go.
