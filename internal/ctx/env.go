// Package ctx holds the inference context vaisto's elaborator threads
// through every expression: the lexical environment of name -> scheme
// bindings, the fresh-variable counter, and the deferred class
// constraints collected along the way for the class resolver to settle
// once generalization decides which variables are actually quantified.
//
// Grounded on the teacher's internal/types TypeEnv and InferenceContext,
// adapted from string-named type variables to vaisto's uint32 ids and
// with the effect-row bookkeeping dropped (vaisto has no effects).
package ctx

import (
	"fmt"

	"github.com/vaisto-lang/vaisto/internal/types"
)

// Env is a lexically scoped mapping from names to type schemes. Each
// nested scope (let, fn body, match clause) extends its parent rather
// than mutating it, so backtracking out of a scope is just dropping the
// reference.
type Env struct {
	bindings map[string]*types.Scheme
	parent   *Env
}

// NewEnv returns an empty top-level environment.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]*types.Scheme)}
}

// Extend returns a new child environment with name bound to scheme,
// leaving the receiver untouched.
func (e *Env) Extend(name string, scheme *types.Scheme) *Env {
	return &Env{bindings: map[string]*types.Scheme{name: scheme}, parent: e}
}

// ExtendMono is a convenience for binding a bare monotype (no
// quantified variables) — the common case for lambda and defn
// parameters, pattern bindings, and a defn group's placeholders.
func (e *Env) ExtendMono(name string, t types.Type) *Env {
	return e.Extend(name, &types.Scheme{Type: t})
}

// Lookup finds name's scheme, searching outward through parent scopes.
func (e *Env) Lookup(name string) (*types.Scheme, bool) {
	for env := e; env != nil; env = env.parent {
		if sc, ok := env.bindings[name]; ok {
			return sc, true
		}
	}
	return nil, false
}

// FreeVars collects the ids of every type and row variable free in the
// environment — i.e. not quantified away by some binding's own scheme.
// Generalize needs this to avoid generalizing a variable another binding
// in scope still depends on monomorphically.
func (e *Env) FreeVars() map[uint32]bool {
	out := make(map[uint32]bool)
	for env := e; env != nil; env = env.parent {
		for _, sc := range env.bindings {
			for id := range types.FreeVarsScheme(sc) {
				out[id] = true
			}
		}
	}
	return out
}

// FreeTVars is FreeVars filtered to this environment's schemes, but
// kept separate from row variables — Generalize quantifies the two in
// distinct lists.
func (e *Env) FreeTVars() (tvars, rvars map[uint32]bool) {
	tvars = make(map[uint32]bool)
	rvars = make(map[uint32]bool)
	for env := e; env != nil; env = env.parent {
		for _, sc := range env.bindings {
			t, r := types.FreeTVarsAndRVars(sc.Type)
			for id := range t {
				if !contains(sc.TVars, id) {
					tvars[id] = true
				}
			}
			for id := range r {
				if !contains(sc.RVars, id) {
					rvars[id] = true
				}
			}
			for _, con := range sc.Constraints {
				t, r := types.FreeTVarsAndRVars(con.Type)
				for id := range t {
					tvars[id] = true
				}
				for id := range r {
					rvars[id] = true
				}
			}
		}
	}
	return tvars, rvars
}

func contains(ids []uint32, id uint32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// UnboundError is the error Lookup's caller raises when a name resolves
// to nothing in any enclosing scope.
func UnboundError(name string) error {
	return fmt.Errorf("unbound variable: %s", name)
}
