package classes

import (
	"fmt"
	"sort"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

// Instance is an admitted `instance` declaration (including a
// deriving-synthesized one): which class, which type-head constructor,
// any constraints a constrained instance carries on its head's own type
// parameters (e.g. `instance Eq (List a) where [(Eq a)]`), and the
// method bodies.
type Instance struct {
	Class       string
	Head        string
	HeadArgs    []string
	Constraints []ast.ClassConstraintRef
	Methods     map[string]*ast.MethodImpl
	Derived     bool // synthesized by `deriving`, not written by hand
}

// InstanceTable is an instance environment keyed by (class, head),
// grounded on the teacher's InstanceEnv coherence-checked instance map.
type InstanceTable struct {
	byKey map[string]*Instance
}

// NewInstanceTable returns an empty instance table.
func NewInstanceTable() *InstanceTable {
	return &InstanceTable{byKey: make(map[string]*Instance)}
}

func instanceKey(class, head string) string {
	return class + "::" + head
}

// Add admits an instance, rejecting an overlapping one for the same
// (class, head) pair — instance coherence requires at most one instance
// per class/type-head combination in scope.
func (t *InstanceTable) Add(inst *Instance) error {
	key := instanceKey(inst.Class, inst.Head)
	if existing, exists := t.byKey[key]; exists {
		if existing.Derived && !inst.Derived {
			// A hand-written instance may supersede one the `deriving`
			// clause would otherwise have synthesized implicitly, but
			// here both are explicit declarations, so still overlap.
			return fmt.Errorf("overlapping instance: %s[%s]", inst.Class, inst.Head)
		}
		return fmt.Errorf("overlapping instance: %s[%s]", inst.Class, inst.Head)
	}
	t.byKey[key] = inst
	return nil
}

// Lookup finds the instance for class at the given type's head
// constructor. Head is derived from the concrete type, not looked up by
// string, so callers pass a types.Type rather than a bare name.
func (t *InstanceTable) Lookup(class string, head types.Type) (*Instance, bool) {
	inst, ok := t.byKey[instanceKey(class, typeHeadName(head))]
	return inst, ok
}

// LookupHead is Lookup by an already-normalized head-constructor name,
// for deriving and superclass-provision lookups that don't have a
// concrete types.Type in hand.
func (t *InstanceTable) LookupHead(class, head string) (*Instance, bool) {
	inst, ok := t.byKey[instanceKey(class, head)]
	return inst, ok
}

// All returns every admitted instance, sorted by class then head for
// deterministic output — internal/iface needs the full table when
// serializing a module interface's instance heads.
func (t *InstanceTable) All() []*Instance {
	keys := make([]string, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Instance, len(keys))
	for i, k := range keys {
		out[i] = t.byKey[k]
	}
	return out
}

// MissingInstanceError reports a class constraint nothing in scope
// satisfies.
type MissingInstanceError struct {
	Class string
	Type  types.Type
}

func (e *MissingInstanceError) Error() string {
	return fmt.Sprintf("no instance for %s[%s] in scope", e.Class, NormalizeTypeName(e.Type))
}

// LoadBuiltinInstances seeds an instance table with the primitive
// instances every module gets for free without an explicit `import
// std/prelude` — Num/Eq/Ord/Show/Fractional over Int/Float/String/Bool —
// grounded on the teacher's LoadBuiltinInstances/builtinInstances.
func LoadBuiltinInstances() *InstanceTable {
	t := NewInstanceTable()
	for _, inst := range builtinInstances() {
		if err := t.Add(inst); err != nil {
			panic(fmt.Sprintf("classes: failed to register builtin instance: %v", err))
		}
	}
	return t
}

func builtinInstances() []*Instance {
	methods := func(names ...string) map[string]*ast.MethodImpl {
		m := make(map[string]*ast.MethodImpl, len(names))
		for _, n := range names {
			m[n] = &ast.MethodImpl{Name: n}
		}
		return m
	}
	return []*Instance{
		{Class: "Num", Head: "Int", Methods: methods("add", "sub", "mul", "div", "neg")},
		{Class: "Num", Head: "Float", Methods: methods("add", "sub", "mul", "div", "neg")},
		{Class: "Eq", Head: "Int", Methods: methods("eq", "neq")},
		{Class: "Eq", Head: "Float", Methods: methods("eq", "neq")},
		{Class: "Eq", Head: "String", Methods: methods("eq", "neq")},
		{Class: "Eq", Head: "Bool", Methods: methods("eq", "neq")},
		{Class: "Ord", Head: "Int", Methods: methods("lt", "lte", "gt", "gte")},
		{Class: "Ord", Head: "Float", Methods: methods("lt", "lte", "gt", "gte")},
		{Class: "Ord", Head: "String", Methods: methods("lt", "lte", "gt", "gte")},
		{Class: "Show", Head: "Int", Methods: methods("show")},
		{Class: "Show", Head: "Float", Methods: methods("show")},
		{Class: "Show", Head: "String", Methods: methods("show")},
		{Class: "Show", Head: "Bool", Methods: methods("show")},
		{Class: "Fractional", Head: "Float", Methods: methods("divide", "recip")},
	}
}

// DefaultTypeFor returns the defaulting target for a numeric class, used
// when an ambiguous literal's type variable reaches a generalization
// boundary still only constrained by Num/Fractional. Only these two
// classes have defaults; any other unsolved constraint is an error.
func DefaultTypeFor(class string) types.Type {
	switch class {
	case "Num":
		return types.TInt
	case "Fractional":
		return types.TFloat
	default:
		return nil
	}
}
