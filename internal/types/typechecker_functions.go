package types

// fn/defn elaboration lives in internal/elaborate.
