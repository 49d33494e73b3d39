package elaborate

import (
	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/classes"
	"github.com/vaisto-lang/vaisto/internal/ctx"
	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/types"
)

// admitDefns elaborates every top-level `defn`, grouped by strongly
// connected component of the call graph (scc.go) so a self- or
// mutually-recursive cluster is inferred together under monomorphic
// placeholder bindings for its own members, then generalized as a
// group once the whole cluster's body types are settled — the way the
// teacher's SCC-driven top-level inference lets an ordinary
// (non-recursive) defn still enjoy full let-polymorphism.
func (e *Elaborator) admitDefns(c *ctx.Context, env *ctx.Env, sub types.Subst, defns []*ast.DefnDecl) (*ctx.Env, types.Subst) {
	byName := make(map[string]*ast.DefnDecl, len(defns))
	for _, d := range defns {
		byName[d.Name] = d
		e.lexicon = append(e.lexicon, d.Name)
	}

	for _, group := range sccGroups(defns) {
		env, sub = e.admitDefnGroup(c, env, sub, group, byName)
	}
	return env, sub
}

// admitDefnGroup infers one strongly-connected cluster of defns
// together: every member is first bound to a monomorphic placeholder
// function type (so a recursive or mutually-recursive call inside the
// group resolves against it), each body is then checked and unified
// against its own placeholder's declared arity and return slot, and
// finally each member is generalized using an environment that still
// includes every sibling's placeholder binding — so a type variable
// another member's inferred type still mentions is not generalized out
// from under it, the standard treatment of `let rec ... and ...`.
func (e *Elaborator) admitDefnGroup(c *ctx.Context, env *ctx.Env, sub types.Subst, names []string, byName map[string]*ast.DefnDecl) (*ctx.Env, types.Subst) {
	placeholders := make(map[string]*types.TFun, len(names))
	groupEnv := env
	for _, name := range names {
		d := byName[name]
		params := make([]types.Type, len(d.Params))
		for i := range params {
			params[i] = c.FreshTVar()
		}
		fn := &types.TFun{Params: params, Return: c.FreshTVar()}
		placeholders[name] = fn
		groupEnv = groupEnv.ExtendMono(name, fn)
	}

	for _, name := range names {
		d := byName[name]
		ph := placeholders[name]
		fnEnv := groupEnv
		for i, p := range d.Params {
			fnEnv = fnEnv.ExtendMono(p, ph.Params[i])
		}
		var bodyT types.Type
		bodyT, sub = e.infer(c, fnEnv, sub, d.Body)
		if s2, err := types.Unify(ph.Return, bodyT, sub); err == nil {
			sub = s2
		} else {
			e.recover(c, diagnostic.EReturnType, d.Body.Pos(), "defn %s: body has type %s, expected %s", name, classes.NormalizeTypeName(sub.Apply(bodyT)), classes.NormalizeTypeName(sub.Apply(ph.Return)))
		}
	}

	for _, name := range names {
		genEnv := env
		for _, other := range names {
			if other != name {
				genEnv = genEnv.ExtendMono(other, placeholders[other])
			}
		}
		scheme := c.Generalize(genEnv, sub.Apply(placeholders[name]), sub)
		env = env.Extend(name, scheme)
		e.module.Exports[name] = scheme
	}
	return env, sub
}
