package elaborate

import (
	"fmt"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/classes"
	"github.com/vaisto-lang/vaisto/internal/ctx"
	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/typedast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

// builtinTypeRef resolves a TypeRef naming one of the fixed primitive
// types, per spec.md §3's primitive list. Everything else is either a
// type parameter local to the deftype being admitted or a reference to
// another nominal type — both resolved against the file's forward table
// by admitDeftypes.
func builtinTypeRef(name string) (types.Type, bool) {
	switch name {
	case "Int":
		return types.TInt, true
	case "Float":
		return types.TFloat, true
	case "Bool":
		return types.TBool, true
	case "String":
		return types.TString, true
	case "Atom":
		return types.TAtom, true
	case "Unit":
		return types.TUnit, true
	case "Any":
		return types.TAny, true
	}
	return nil, false
}

// forward is the shape-only placeholder built for a deftype before its
// constructors' field types are resolved, so that another deftype's
// field (including the deftype's own, for a recursive/self-referential
// type per spec.md §9) can refer to it before or after its own turn.
// Grounded on the teacher's two-pass `file.go` admission ("collect all
// type names first, then elaborate bodies"), adapted to vaisto's
// simpler grammar: `ast.TypeRef` is a bare name with no compound-type
// syntax (`(List a)`/`(Maybe Int)` cannot be written in a field
// position at all), so a forward reference never carries explicit type
// arguments — a Sum-shaped forward reference always applies that type's
// own parameters fresh (or, for a true self-reference, the same
// parameter ids the surrounding declaration is already using).
type forward struct {
	isRecord bool
	sum      *types.Sum    // isRecord == false: shape with this type's own fresh param ids as Args
	params   []uint32      // isRecord == false: the param ids backing sum.Args, in declared order
	record   *types.Record // isRecord == true: final shape; field types are placeholder TVars until resolved
}

// admitDeftypes admits every `deftype` declaration in a file in two
// passes, per spec.md §9: "Admit all type names first, then check
// bodies; defer constructor field checking until all names are in
// scope." Pass one builds a shape-only forward table (record labels are
// known syntactically without resolving any field type; a sum's
// parameter count is the number of distinct non-builtin, non-deftype
// names its fields mention). Pass two resolves every field's real type,
// unifying a record's placeholder field variables with the resolved
// types so every embedding of that record — including ones admitted
// before it was fully resolved — sees the same, eventually-concrete
// shape.
func (e *Elaborator) admitDeftypes(c *ctx.Context, env *ctx.Env, decls []*ast.DeftypeDecl) (*ctx.Env, types.Subst) {
	sub := types.NewSubst()
	names := make(map[string]bool, len(decls))
	for _, d := range decls {
		if names[d.Name] {
			e.module.Errors = append(e.module.Errors, diagnostic.New(diagnostic.EUnknownType, d.Loc, "type %s declared more than once", d.Name))
			continue
		}
		names[d.Name] = true
	}

	forwards := make(map[string]*forward, len(decls))
	for _, d := range decls {
		forwards[d.Name] = e.buildForward(c, d, names)
	}

	for _, d := range decls {
		env, sub = e.resolveDeftype(c, env, sub, d, forwards, names)
	}
	return env, sub
}

// buildForward computes a deftype's shape without resolving any field
// type: whether it's a record (single, all-labeled constructor) and, if
// so, its field labels with fresh placeholder types; otherwise its
// parameter name set, collected in first-occurrence order across its
// constructors' fields (any field-type name that isn't a builtin and
// isn't another declared type name in this file is a local parameter).
func (e *Elaborator) buildForward(c *ctx.Context, d *ast.DeftypeDecl, declNames map[string]bool) *forward {
	isRecord := len(d.Ctors) == 1 && d.Ctors[0].Labeled()
	if isRecord {
		labels := make(map[string]types.Type, len(d.Ctors[0].Fields))
		for _, f := range d.Ctors[0].Fields {
			labels[f.Label] = c.FreshTVar()
		}
		return &forward{isRecord: true, record: &types.Record{Name: d.Name, Row: &types.Row{Labels: labels}}}
	}

	var order []string
	seen := map[string]bool{}
	for _, ctor := range d.Ctors {
		for _, f := range ctor.Fields {
			if _, builtin := builtinTypeRef(f.Type.Name); builtin {
				continue
			}
			if declNames[f.Type.Name] || seen[f.Type.Name] {
				continue
			}
			seen[f.Type.Name] = true
			order = append(order, f.Type.Name)
		}
	}
	params := make([]uint32, len(order))
	args := make([]types.Type, len(order))
	for i := range order {
		tv := c.FreshTVar()
		params[i] = tv.ID
		args[i] = tv
	}
	return &forward{isRecord: false, sum: &types.Sum{Name: d.Name, Args: args}, params: params}
}

// resolveDeftype resolves one deftype's real field types against the
// file's forward table, admits it into the module (constructor table,
// env bindings, deriving), and folds any record-placeholder unification
// into sub.
func (e *Elaborator) resolveDeftype(c *ctx.Context, env *ctx.Env, sub types.Subst, d *ast.DeftypeDecl, forwards map[string]*forward, declNames map[string]bool) (*ctx.Env, types.Subst) {
	fwd := forwards[d.Name]

	var localParamNames []string
	localParamIDs := map[string]uint32{}
	if !fwd.isRecord {
		// Recompute the same name -> id order buildForward derived, so
		// field resolution can look a parameter name up by name.
		var order []string
		seen := map[string]bool{}
		for _, ctor := range d.Ctors {
			for _, f := range ctor.Fields {
				if _, builtin := builtinTypeRef(f.Type.Name); builtin {
					continue
				}
				if declNames[f.Type.Name] || seen[f.Type.Name] {
					continue
				}
				seen[f.Type.Name] = true
				order = append(order, f.Type.Name)
			}
		}
		localParamNames = order
		for i, name := range order {
			localParamIDs[name] = fwd.params[i]
		}
	}

	ctors := make([]typedast.CtorInfo, len(d.Ctors))
	for i, cd := range d.Ctors {
		fields := make([]types.Type, len(cd.Fields))
		labels := make([]string, len(cd.Fields))
		for j, fd := range cd.Fields {
			labels[j] = fd.Label
			t, err := resolveFieldType(fd.Type, d.Name, localParamIDs, forwards)
			if err != nil {
				e.module.Errors = append(e.module.Errors, diagnostic.New(diagnostic.EUnknownType, fd.Loc, "%v", err))
				t = types.TAny
			}
			fields[j] = t
			if fwd.isRecord {
				placeholder := fwd.record.Row.Labels[fd.Label]
				if s2, uerr := types.Unify(placeholder, t, sub); uerr == nil {
					sub = s2
				}
			}
		}
		ctors[i] = typedast.CtorInfo{Name: cd.Name, Labels: labels, Fields: fields}
		e.ctorOwner[cd.Name] = d.Name
	}

	info := &typedast.DeftypeInfo{Name: d.Name, IsRecord: fwd.isRecord, Ctors: ctors, Deriving: d.Deriving}
	e.module.Deftypes[d.Name] = info
	e.deftypeParams[d.Name] = append([]uint32(nil), fwd.params...)

	if err := classes.ApplyDeriving(e.instances, d); err != nil {
		e.module.Errors = append(e.module.Errors, diagnostic.New(diagnostic.EBadDeriving, d.Loc, "%v", err))
	}

	env = e.registerConstructors(env, d.Name, info, fwd)
	return env, sub
}

// resolveFieldType resolves one field's bare TypeRef against the
// deftype currently being admitted (owner): a builtin, owner's own type
// parameter, or another (possibly not-yet-fully-resolved) deftype's
// forward shape — applied fresh, except a true self-reference, which
// reuses owner's own parameter ids so recursive occurrences stay
// consistent with each other.
func resolveFieldType(ref *ast.TypeRef, owner string, ownerParams map[string]uint32, forwards map[string]*forward) (types.Type, error) {
	if t, ok := builtinTypeRef(ref.Name); ok {
		return t, nil
	}
	if id, ok := ownerParams[ref.Name]; ok {
		return &types.TVar{ID: id}, nil
	}
	fwd, ok := forwards[ref.Name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", ref.Name)
	}
	if fwd.isRecord {
		return fwd.record, nil
	}
	if ref.Name == owner {
		return fwd.sum, nil
	}
	args := make([]types.Type, len(fwd.params))
	for i := range fwd.params {
		args[i] = &types.TVar{ID: fwd.params[i]}
	}
	return &types.Sum{Name: ref.Name, Args: args}, nil
}

// registerConstructors binds each constructor as an ordinary,
// polymorphic function scheme in the global environment — `(Some x)` is
// then just an application the way any other function call is, needing
// no special-casing in Call inference, the same way the teacher treats
// a data constructor as an ordinary curried function value.
func (e *Elaborator) registerConstructors(env *ctx.Env, typeName string, info *typedast.DeftypeInfo, fwd *forward) *ctx.Env {
	var resultType types.Type
	if fwd.isRecord {
		resultType = fwd.record
	} else {
		resultType = fwd.sum
	}
	for _, ctor := range info.Ctors {
		fnType := types.Type(resultType)
		if len(ctor.Fields) > 0 {
			fnType = &types.TFun{Params: ctor.Fields, Return: resultType}
		}
		tvars, rvars := types.FreeTVarsAndRVars(fnType)
		env = env.Extend(ctor.Name, &types.Scheme{TVars: idList(tvars), RVars: idList(rvars), Type: fnType})
	}
	return env
}

func idList(ids map[uint32]bool) []uint32 {
	out := make([]uint32, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	return out
}
