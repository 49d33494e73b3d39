package pattern

import (
	"fmt"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/ctx"
	"github.com/vaisto-lang/vaisto/internal/types"
)

// Bind elaborates pat against scrutinee, returning the variable bindings
// it introduces and the substitution refined by unifying the pattern's
// shape with the scrutinee type. Grounded on the general shape of the
// teacher's inferPattern machinery (typechecker_patterns.go), rebuilt
// against vaisto's AST pattern nodes and its row/sum type representation
// instead of the teacher's Core patterns.
func Bind(pat ast.Pattern, scrutinee types.Type, c *ctx.Context, sub types.Subst, table TypeTable) (map[string]types.Type, types.Subst, error) {
	switch p := pat.(type) {
	case *ast.PWildcard:
		return map[string]types.Type{}, sub, nil

	case *ast.PVar:
		return map[string]types.Type{p.Name: sub.Apply(scrutinee)}, sub, nil

	case *ast.PLiteral:
		lt := literalType(p.Lit)
		sub2, err := types.Unify(scrutinee, lt, sub)
		if err != nil {
			return nil, sub, err
		}
		return map[string]types.Type{}, sub2, nil

	case *ast.PCtor:
		return bindCtor(p, scrutinee, c, sub, table)

	case *ast.PList:
		elem := c.FreshTVar()
		sub2, err := types.Unify(scrutinee, &types.TList{Elem: elem}, sub)
		if err != nil {
			return nil, sub, err
		}
		bindings := map[string]types.Type{}
		for _, sp := range p.Elems {
			b, s3, err := Bind(sp, sub2.Apply(elem), c, sub2, table)
			if err != nil {
				return nil, sub, err
			}
			mergeBindings(bindings, b)
			sub2 = s3
		}
		return bindings, sub2, nil

	case *ast.PCons:
		elem := c.FreshTVar()
		sub2, err := types.Unify(scrutinee, &types.TList{Elem: elem}, sub)
		if err != nil {
			return nil, sub, err
		}
		headB, sub3, err := Bind(p.Head, sub2.Apply(elem), c, sub2, table)
		if err != nil {
			return nil, sub, err
		}
		tailB, sub4, err := Bind(p.Tail, &types.TList{Elem: sub3.Apply(elem)}, c, sub3, table)
		if err != nil {
			return nil, sub, err
		}
		mergeBindings(headB, tailB)
		return headB, sub4, nil

	case *ast.PTuple:
		elems := make([]types.Type, len(p.Elems))
		for i := range p.Elems {
			elems[i] = c.FreshTVar()
		}
		sub2, err := types.Unify(scrutinee, &types.TTuple{Elems: elems}, sub)
		if err != nil {
			return nil, sub, err
		}
		bindings := map[string]types.Type{}
		for i, sp := range p.Elems {
			b, s3, err := Bind(sp, sub2.Apply(elems[i]), c, sub2, table)
			if err != nil {
				return nil, sub, err
			}
			mergeBindings(bindings, b)
			sub2 = s3
		}
		return bindings, sub2, nil

	default:
		return nil, sub, fmt.Errorf("pattern: unhandled pattern node %T", pat)
	}
}

func literalType(lit *ast.Literal) types.Type {
	switch lit.Kind {
	case ast.LitInt:
		return types.TInt
	case ast.LitFloat:
		return types.TFloat
	case ast.LitBool:
		return types.TBool
	case ast.LitString:
		return types.TString
	default:
		return types.TAny
	}
}

// bindCtor elaborates a constructor pattern, which matches either a sum
// variant or a record's (sole) constructor — ast.PCtor's comment notes
// it covers both. The constructor's arity and field types come from
// table, keyed by the type name the scrutinee resolves to.
func bindCtor(p *ast.PCtor, scrutinee types.Type, c *ctx.Context, sub types.Subst, table TypeTable) (map[string]types.Type, types.Subst, error) {
	name, args, ok := headName(sub.Apply(scrutinee))
	if !ok {
		return nil, sub, fmt.Errorf("pattern %s: scrutinee type %s has no constructors", p.Ctor, scrutinee.String())
	}

	ctors, ok := table.Constructors(name)
	if !ok {
		return nil, sub, fmt.Errorf("pattern %s: unknown nominal type %q", p.Ctor, name)
	}

	var ctor *CtorSig
	for i := range ctors {
		if ctors[i].Name == p.Ctor {
			ctor = &ctors[i]
			break
		}
	}
	if ctor == nil {
		return nil, sub, fmt.Errorf("pattern: %s is not a constructor of %s", p.Ctor, name)
	}
	if len(ctor.Fields) != len(p.Args) {
		return nil, sub, fmt.Errorf("pattern %s: expects %d argument(s), got %d", p.Ctor, len(ctor.Fields), len(p.Args))
	}

	_ = args // monomorphic deftypes only for now; see DESIGN.md

	bindings := map[string]types.Type{}
	for i, sp := range p.Args {
		b, s2, err := Bind(sp, ctor.Fields[i], c, sub, table)
		if err != nil {
			return nil, sub, err
		}
		mergeBindings(bindings, b)
		sub = s2
	}
	return bindings, sub, nil
}

// headName returns the nominal type name a scrutinee resolves to (a sum
// or a named record) along with its current type arguments, so a
// constructor's field types — declared in terms of the deftype's own
// type parameters — can be instantiated against them.
func headName(t types.Type) (name string, args []types.Type, ok bool) {
	switch v := t.(type) {
	case *types.Sum:
		return v.Name, v.Args, true
	case *types.Record:
		if v.Name == "" {
			return "", nil, false
		}
		return v.Name, nil, true
	default:
		return "", nil, false
	}
}

func mergeBindings(into, from map[string]types.Type) {
	for k, v := range from {
		into[k] = v
	}
}
