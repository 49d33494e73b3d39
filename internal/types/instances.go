package types

// The class/instance tables (ClassInstance, InstanceEnv, coherence
// checking) live in internal/classes alongside the dictionary registry
// they resolve into.
