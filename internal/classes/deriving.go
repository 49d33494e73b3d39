package classes

import (
	"fmt"

	"github.com/vaisto-lang/vaisto/internal/ast"
)

// DeriveEq synthesizes a structural Eq instance for any deftype — sum or
// record — per spec.md's deriving rule: "Eq derives structural equality
// for sums and records (allowed on any ADT)". The instance carries only
// the method names, no bodies: the elaborator types an eq/neq call on the
// deftype as Bool through intrinsicResult and does not walk the type's
// constructors or fields.
func DeriveEq(decl *ast.DeftypeDecl) *Instance {
	return &Instance{Class: "Eq", Head: decl.Name, Derived: true, Methods: map[string]*ast.MethodImpl{
		"eq":  {Name: "eq"},
		"neq": {Name: "neq"},
	}}
}

// DeriveShow synthesizes a Show instance for a nullary sum type — every
// constructor takes zero fields — and is an error for anything else:
// records, and sums with any constructor that carries fields, must get a
// manual Show instance. Grounded directly on spec.md's deriving rule
// text; the teacher has no analogous restriction since it derives Show
// generically.
func DeriveShow(decl *ast.DeftypeDecl) (*Instance, error) {
	for _, ctor := range decl.Ctors {
		if len(ctor.Fields) > 0 {
			return nil, fmt.Errorf(
				"cannot derive Show for %s: constructor %s has fields; write a manual instance",
				decl.Name, ctor.Name,
			)
		}
	}
	return &Instance{Class: "Show", Head: decl.Name, Derived: true, Methods: map[string]*ast.MethodImpl{
		"show": {Name: "show"},
	}}, nil
}

// ApplyDeriving admits every instance named in a deftype's `deriving`
// clause into the instance table, synthesizing each with DeriveEq or
// DeriveShow. Called immediately after the type is admitted, per
// spec.md: "Deriving happens immediately after the type declaration is
// admitted." An unknown class named in `deriving` is an error.
func ApplyDeriving(instances *InstanceTable, decl *ast.DeftypeDecl) error {
	for _, class := range decl.Deriving {
		var inst *Instance
		switch class {
		case "Eq":
			inst = DeriveEq(decl)
		case "Show":
			sh, err := DeriveShow(decl)
			if err != nil {
				return err
			}
			inst = sh
		default:
			return fmt.Errorf("deftype %s: unknown deriving class %q", decl.Name, class)
		}
		if err := instances.Add(inst); err != nil {
			return err
		}
	}
	return nil
}
