package types

// Defaulting-at-generalization-boundaries logic lives in internal/classes;
// the elaborator in internal/elaborate calls it when it generalizes a
// let/defn binding.
