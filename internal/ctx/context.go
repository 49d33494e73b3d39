package ctx

import (
	"github.com/vaisto-lang/vaisto/internal/types"
)

// Context carries the mutable state of one elaboration pass: the fresh
// id counter TVar/RVar/field-access ids are minted from, the deferred
// class constraints accumulated while inferring (resolved once
// generalization fixes which variables are actually quantified), and the
// non-fatal diagnostics collected so a single compile can report more
// than one error. Grounded on the teacher's InferenceContext, trimmed of
// effect-row and linear-capture bookkeeping vaisto has no use for.
type Context struct {
	nextID      uint32
	constraints []types.Constraint
	errors      []error
}

// New returns a fresh, empty inference context.
func New() *Context {
	return &Context{nextID: 1}
}

// FreshTVar mints a new, globally unique ordinary type variable.
func (c *Context) FreshTVar() *types.TVar {
	id := c.nextID
	c.nextID++
	return &types.TVar{ID: id}
}

// FreshRVar mints a new, globally unique row variable.
func (c *Context) FreshRVar() *types.RVar {
	id := c.nextID
	c.nextID++
	return &types.RVar{ID: id}
}

// AddConstraint records a type class constraint discovered during
// inference (e.g. from a `+` or `==` use) for later resolution.
func (c *Context) AddConstraint(con types.Constraint) {
	c.constraints = append(c.constraints, con)
}

// Constraints returns every constraint collected so far.
func (c *Context) Constraints() []types.Constraint {
	return c.constraints
}

// ResetConstraints replaces the pending constraint list, used after
// generalize has partitioned constraints into "attach to this scheme"
// and "still pending at an outer scope".
func (c *Context) ResetConstraints(remaining []types.Constraint) {
	c.constraints = remaining
}

// AddError accumulates a non-fatal diagnostic so elaboration can
// continue past it (substituting types.TAny / a fresh variable at the
// error site) and report every error found in one pass rather than
// stopping at the first.
func (c *Context) AddError(err error) {
	c.errors = append(c.errors, err)
}

// Errors returns every error accumulated so far.
func (c *Context) Errors() []error {
	return c.errors
}

// Instantiate replaces a scheme's quantified type and row variables with
// fresh ones, returning the instantiated type and the scheme's
// constraints with the same substitution applied (so `show : Show a =>
// a -> String` instantiated at a call site yields a constraint on the
// fresh variable, not the original bound one).
func (c *Context) Instantiate(sc *types.Scheme) (types.Type, []types.Constraint) {
	if len(sc.TVars) == 0 && len(sc.RVars) == 0 {
		return sc.Type, sc.Constraints
	}
	sub := types.NewSubst()
	for _, v := range sc.TVars {
		sub = sub.Bind(v, c.FreshTVar())
	}
	for _, v := range sc.RVars {
		sub = sub.Bind(v, c.FreshRVar())
	}
	constraints := make([]types.Constraint, len(sc.Constraints))
	for i, con := range sc.Constraints {
		constraints[i] = types.Constraint{Class: con.Class, Type: sub.Apply(con.Type)}
	}
	return sub.Apply(sc.Type), constraints
}

// Generalize closes a monotype, inferred under env, into a type scheme:
// every type/row variable free in t but not free in env is quantified
// over, and any pending constraint that mentions only quantified
// variables travels with the scheme rather than staying pending at the
// outer scope.
func (c *Context) Generalize(env *Env, t types.Type, sub types.Subst) *types.Scheme {
	t = sub.Apply(t)
	tFreeT, tFreeR := types.FreeTVarsAndRVars(t)
	envFreeT, envFreeR := env.FreeTVars()

	quantified := make(map[uint32]bool)
	var tvars, rvars []uint32
	for id := range tFreeT {
		if envFreeT[id] || types.IsFieldVar(id) {
			// field-access vars stay tied to their record, never generalized
			continue
		}
		quantified[id] = true
		tvars = append(tvars, id)
	}
	for id := range tFreeR {
		if envFreeR[id] {
			continue
		}
		quantified[id] = true
		rvars = append(rvars, id)
	}

	var attached, remaining []types.Constraint
	for _, con := range c.constraints {
		con.Type = sub.Apply(con.Type)
		free := types.FreeVars(con.Type)
		mentionsOnlyQuantified := len(free) > 0
		for id := range free {
			if !quantified[id] {
				mentionsOnlyQuantified = false
				break
			}
		}
		if mentionsOnlyQuantified {
			attached = append(attached, con)
		} else {
			remaining = append(remaining, con)
		}
	}
	c.constraints = remaining

	return &types.Scheme{TVars: tvars, RVars: rvars, Constraints: attached, Type: t}
}
