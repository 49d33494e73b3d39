package classes

import (
	"fmt"

	"github.com/vaisto-lang/vaisto/internal/types"
)

// maxResolutionDepth bounds constrained-instance chaining — resolving
// `Eq (List (List a))` needs `Eq (List a)` needs `Eq a`, and a cyclic or
// absurdly deep set of instances must fail rather than loop forever.
const maxResolutionDepth = 32

// Dictionary is a resolved class-constraint witness: which instance
// satisfies the constraint, plus one nested Dictionary per constraint
// the instance itself carries on its head's type parameters (so `Eq
// (List a)`'s dictionary nests the `Eq a` dictionary its `eq` method
// needs to compare elements). Recorded on the typed AST node per
// spec.md's "constrained-instance dictionaries" decision, so the emitter
// can dispatch without re-running the resolver.
type Dictionary struct {
	Class  string
	Head   string
	Params []*Dictionary
}

// ResolveConstraint finds (or builds, for a constrained instance) the
// dictionary that satisfies a class constraint against a concrete type.
// Grounded on the teacher's InstanceEnv.Lookup plus deriveEqFromOrd
// superclass provision, generalized to recurse through constrained
// instances' own `where` clauses instead of the teacher's flat (v1)
// instance-only lookup.
func ResolveConstraint(instances *InstanceTable, class string, t types.Type) (*Dictionary, error) {
	return resolveDepth(instances, class, t, 0)
}

func resolveDepth(instances *InstanceTable, class string, t types.Type, depth int) (*Dictionary, error) {
	if depth > maxResolutionDepth {
		return nil, fmt.Errorf("instance resolution exceeded depth %d for %s[%s]", maxResolutionDepth, class, NormalizeTypeName(t))
	}

	head := typeHeadName(t)
	inst, ok := instances.LookupHead(class, head)
	if !ok {
		if derived, derr := superclassProvision(instances, class, t, depth); derr == nil {
			return derived, nil
		}
		return nil, &MissingInstanceError{Class: class, Type: t}
	}

	if len(inst.Constraints) == 0 {
		return &Dictionary{Class: class, Head: head}, nil
	}

	// A constrained instance like `instance Eq (List a) where [(Eq a)]`
	// needs a nested dictionary per constraint, resolved against the
	// head's own type argument — List's element type, Maybe's payload
	// type, and so on.
	args := typeArgs(t)
	params := make([]*Dictionary, 0, len(inst.Constraints))
	for _, con := range inst.Constraints {
		argType, ok := headArgType(inst.HeadArgs, args, con.Param)
		if !ok {
			return nil, fmt.Errorf("instance %s[%s]: constraint on unknown type parameter %q", class, head, con.Param)
		}
		nested, err := resolveDepth(instances, con.Class, argType, depth+1)
		if err != nil {
			return nil, err
		}
		params = append(params, nested)
	}
	return &Dictionary{Class: class, Head: head, Params: params}, nil
}

// superclassProvision derives Eq from an Ord instance in scope — Ord's
// lawful definition makes eq(x,y) = ¬lt(x,y) ∧ ¬lt(y,x) always available
// wherever Ord is, grounded on the teacher's deriveEqFromOrd.
func superclassProvision(instances *InstanceTable, class string, t types.Type, depth int) (*Dictionary, error) {
	if class != "Eq" {
		return nil, fmt.Errorf("no superclass provides %s", class)
	}
	ordDict, err := resolveDepth(instances, "Ord", t, depth+1)
	if err != nil {
		return nil, err
	}
	return &Dictionary{Class: "Eq", Head: ordDict.Head, Params: ordDict.Params}, nil
}

// typeArgs returns a compound type's immediate type arguments, in the
// order a constrained instance's HeadArgs would bind them.
func typeArgs(t types.Type) []types.Type {
	switch typ := t.(type) {
	case *types.TList:
		return []types.Type{typ.Elem}
	case *types.TTuple:
		return typ.Elems
	case *types.Sum:
		return typ.Args
	default:
		return nil
	}
}

func headArgType(headArgs []string, args []types.Type, param string) (types.Type, bool) {
	for i, name := range headArgs {
		if name == param && i < len(args) {
			return args[i], true
		}
	}
	return nil, false
}
