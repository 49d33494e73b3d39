package types

// Subst is a substitution: a finite mapping from type-variable and
// row-variable ids to the types/rows they've been bound to. TVar and RVar
// ids are minted from one shared counter in internal/ctx, so a single map
// keyed by id never confuses the two variable spaces.
type Subst map[uint32]Type

// NewSubst returns an empty substitution.
func NewSubst() Subst { return make(Subst) }

// Bind returns a new substitution extending s with id -> t. The receiver
// is left untouched.
func (s Subst) Bind(id uint32, t Type) Subst {
	out := make(Subst, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[id] = t
	return out
}

// Compose returns the substitution equivalent to applying s first, then
// other: for any type t, s.Compose(other).Apply(t) == other.Apply(s.Apply(t)).
func (s Subst) Compose(other Subst) Subst {
	out := make(Subst, len(s)+len(other))
	for k, v := range s {
		out[k] = other.Apply(v)
	}
	for k, v := range other {
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}

// Apply substitutes every bound variable in t with its mapped type,
// recursively, leaving unbound variables and non-variable types alone.
func (s Subst) Apply(t Type) Type {
	if len(s) == 0 {
		return t
	}
	switch v := t.(type) {
	case *TVar:
		if bound, ok := s[v.ID]; ok {
			if bound == Type(v) {
				return v
			}
			return s.Apply(bound)
		}
		return v
	case *RVar:
		if bound, ok := s[v.ID]; ok {
			if bound == Type(v) {
				return v
			}
			return s.Apply(bound)
		}
		return v
	case *TCon:
		return v
	case *TFun:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = s.Apply(p)
		}
		return &TFun{Params: params, Return: s.Apply(v.Return)}
	case *TList:
		return &TList{Elem: s.Apply(v.Elem)}
	case *TTuple:
		elems := make([]Type, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = s.Apply(e)
		}
		return &TTuple{Elems: elems}
	case *Row:
		return s.applyRow(v)
	case *Record:
		if v.Row == nil {
			return v
		}
		return &Record{Name: v.Name, Row: s.applyRow(v.Row)}
	case *Sum:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = s.Apply(a)
		}
		return &Sum{Name: v.Name, Args: args}
	case *PidOf:
		return v
	default:
		return t
	}
}

// applyRow substitutes a row's field types and, if its tail variable is
// itself bound, splices the bound row's labels in and adopts its tail.
func (s Subst) applyRow(r *Row) *Row {
	labels := make(map[string]Type, len(r.Labels))
	for k, v := range r.Labels {
		labels[k] = s.Apply(v)
	}
	tail := r.Tail
	if tail != nil {
		if bound, ok := s[tail.ID]; ok {
			switch b := s.Apply(bound).(type) {
			case *RVar:
				tail = b
			case *Row:
				for k, v := range b.Labels {
					labels[k] = v
				}
				tail = b.Tail
			}
		}
	}
	return &Row{Labels: labels, Tail: tail}
}

// ApplyScheme applies s to a scheme's body, skipping any variable the
// scheme itself quantifies over (it's bound locally, not by the outer
// substitution).
func (s Subst) ApplyScheme(sc *Scheme) *Scheme {
	if len(s) == 0 {
		return sc
	}
	bound := make(map[uint32]bool, len(sc.TVars)+len(sc.RVars))
	for _, v := range sc.TVars {
		bound[v] = true
	}
	for _, v := range sc.RVars {
		bound[v] = true
	}
	filtered := make(Subst, len(s))
	for k, v := range s {
		if !bound[k] {
			filtered[k] = v
		}
	}
	constraints := make([]Constraint, len(sc.Constraints))
	for i, c := range sc.Constraints {
		constraints[i] = Constraint{Class: c.Class, Type: filtered.Apply(c.Type)}
	}
	return &Scheme{
		TVars:       sc.TVars,
		RVars:       sc.RVars,
		Constraints: constraints,
		Type:        filtered.Apply(sc.Type),
	}
}

// FreeVars collects the ids of every free (unbound-by-a-scheme) type and
// row variable occurring in t.
func FreeVars(t Type) map[uint32]bool {
	out := make(map[uint32]bool)
	collectFreeVars(t, out)
	return out
}

func collectFreeVars(t Type, out map[uint32]bool) {
	switch v := t.(type) {
	case *TVar:
		out[v.ID] = true
	case *RVar:
		out[v.ID] = true
	case *TCon:
	case *TFun:
		for _, p := range v.Params {
			collectFreeVars(p, out)
		}
		collectFreeVars(v.Return, out)
	case *TList:
		collectFreeVars(v.Elem, out)
	case *TTuple:
		for _, e := range v.Elems {
			collectFreeVars(e, out)
		}
	case *Row:
		for _, f := range v.Labels {
			collectFreeVars(f, out)
		}
		if v.Tail != nil {
			out[v.Tail.ID] = true
		}
	case *Record:
		if v.Row != nil {
			collectFreeVars(v.Row, out)
		}
	case *Sum:
		for _, a := range v.Args {
			collectFreeVars(a, out)
		}
	case *PidOf:
	}
}

// FreeTVarsAndRVars splits FreeVars(t) into separate TVar-id and
// RVar-id sets. Generalize needs the two kept apart since a scheme
// quantifies them in separate lists.
func FreeTVarsAndRVars(t Type) (tvars, rvars map[uint32]bool) {
	tvars = make(map[uint32]bool)
	rvars = make(map[uint32]bool)
	collectSplitFreeVars(t, tvars, rvars)
	return tvars, rvars
}

func collectSplitFreeVars(t Type, tvars, rvars map[uint32]bool) {
	switch v := t.(type) {
	case *TVar:
		tvars[v.ID] = true
	case *RVar:
		rvars[v.ID] = true
	case *TCon:
	case *TFun:
		for _, p := range v.Params {
			collectSplitFreeVars(p, tvars, rvars)
		}
		collectSplitFreeVars(v.Return, tvars, rvars)
	case *TList:
		collectSplitFreeVars(v.Elem, tvars, rvars)
	case *TTuple:
		for _, e := range v.Elems {
			collectSplitFreeVars(e, tvars, rvars)
		}
	case *Row:
		for _, f := range v.Labels {
			collectSplitFreeVars(f, tvars, rvars)
		}
		if v.Tail != nil {
			rvars[v.Tail.ID] = true
		}
	case *Record:
		if v.Row != nil {
			collectSplitFreeVars(v.Row, tvars, rvars)
		}
	case *Sum:
		for _, a := range v.Args {
			collectSplitFreeVars(a, tvars, rvars)
		}
	case *PidOf:
	}
}

// FreeVarsScheme collects the free variables of a scheme: those occurring
// in its body or constraints that are NOT among the scheme's own
// quantified TVars/RVars.
func FreeVarsScheme(sc *Scheme) map[uint32]bool {
	out := FreeVars(sc.Type)
	for _, c := range sc.Constraints {
		for id := range FreeVars(c.Type) {
			out[id] = true
		}
	}
	for _, v := range sc.TVars {
		delete(out, v)
	}
	for _, v := range sc.RVars {
		delete(out, v)
	}
	return out
}
