// Package classes resolves type classes: class and instance tables,
// dictionary-passing constraint resolution, automatic deriving of Eq and
// Show, numeric defaulting at generalization boundaries, and the
// operator-to-class-method mapping the elaborator uses to desugar `+`,
// `==`, and friends into method calls.
//
// Grounded on the teacher's internal/types instances.go, dictionaries.go,
// defaulting.go, typechecker_defaulting.go, typechecker_operators.go and
// normalize.go, adapted from the teacher's string-keyed, evaluator-backed
// dictionaries to vaisto's type representation, which has no evaluator
// stage — a resolved constraint is recorded as a Dictionary tree the
// typed AST carries for the emitter to consume, not a closure.
package classes

import (
	"fmt"
	"sort"

	"github.com/vaisto-lang/vaisto/internal/ast"
)

// MethodInfo describes one class method signature: its arity (parameter
// count, not counting the class's own type variable) and whether the
// class declaration supplied a default implementation.
type MethodInfo struct {
	Arity      int
	HasDefault bool
	Default    *ast.Fn
}

// Class is an admitted `defclass` declaration.
type Class struct {
	Name    string
	TyVar   string
	Methods map[string]*MethodInfo
}

// Table holds every class admitted in a module (plus, transitively, its
// imports — population is the elaborator's job).
type Table struct {
	classes map[string]*Class
}

// NewTable returns an empty class table.
func NewTable() *Table {
	return &Table{classes: make(map[string]*Class)}
}

// Admit registers a `defclass` declaration. Redeclaring a class name is
// an error — classes, like instances, must be coherent within a module.
func (t *Table) Admit(decl *ast.DefclassDecl) error {
	if _, exists := t.classes[decl.Name]; exists {
		return fmt.Errorf("class %s already declared", decl.Name)
	}
	methods := make(map[string]*MethodInfo, len(decl.Methods))
	for _, m := range decl.Methods {
		methods[m.Name] = &MethodInfo{Arity: m.Arity, HasDefault: m.Default != nil, Default: m.Default}
	}
	t.classes[decl.Name] = &Class{Name: decl.Name, TyVar: decl.TyVar, Methods: methods}
	return nil
}

// Lookup finds an admitted class by name.
func (t *Table) Lookup(name string) (*Class, bool) {
	c, ok := t.classes[name]
	return c, ok
}

// All returns every admitted class, sorted by name for deterministic
// output — internal/iface needs to enumerate the whole table when
// serializing a module interface, unlike resolution, which only ever
// looks a single class up by name.
func (t *Table) All() []*Class {
	names := make([]string, 0, len(t.classes))
	for name := range t.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Class, len(names))
	for i, name := range names {
		out[i] = t.classes[name]
	}
	return out
}

// Method returns a class's method signature by name, searching the named
// class only (no superclass search — dictionary resolution does that in
// resolve.go's superclassProvision).
func (c *Class) Method(name string) (*MethodInfo, bool) {
	m, ok := c.Methods[name]
	return m, ok
}
