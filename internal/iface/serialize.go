package iface

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InterfaceVersion is bumped whenever Interface's shape changes in a way
// that would make an older serialized file unsafe to trust without
// re-elaborating (spec.md §4.8: "incompatible versions force
// re-elaboration"). Grounded on the pack's yaml.v3 usage for versioned
// config/fixture files.
const InterfaceVersion = 1

// ErrStaleInterface is returned by Load when a file's Version doesn't
// match InterfaceVersion — the caller's only correct response is to
// re-elaborate the module rather than trust the stale shape.
var ErrStaleInterface = errors.New("iface: stale interface version, re-elaboration required")

// Save writes iface to path as YAML, deterministic for identical input
// (spec.md §4.8: "regenerating from identical source yields byte-identical
// output") since every field Build populates is already sorted.
func Save(iface *Interface, path string) error {
	data, err := yaml.Marshal(iface)
	if err != nil {
		return fmt.Errorf("iface: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads and parses a module interface file, rejecting one whose
// Version does not match InterfaceVersion.
func Load(path string) (*Interface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("iface: read %s: %w", path, err)
	}
	var iface Interface
	if err := yaml.Unmarshal(data, &iface); err != nil {
		return nil, fmt.Errorf("iface: parse %s: %w", path, err)
	}
	if iface.Version != InterfaceVersion {
		return nil, ErrStaleInterface
	}
	return &iface, nil
}
