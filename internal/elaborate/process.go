package elaborate

import (
	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/classes"
	"github.com/vaisto-lang/vaisto/internal/ctx"
	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/typedast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

// admitProcessShapes registers every `process` declaration's name and
// accepted-message-tag set before any defn or handler body is checked,
// the same forward-then-resolve split admitDeftypes uses for nominal
// types: a handler body elaborated later may spawn or message another
// process declared anywhere in the file, and a defn may do the same, so
// the full PID/tag surface needs to exist before either is checked. The
// state type starts as a fresh, unconstrained placeholder; Init and
// each handler body are checked against it afterward by
// elaborateProcessBodies, once every top-level defn is also in scope.
func (e *Elaborator) admitProcessShapes(c *ctx.Context, decls []*ast.ProcessDecl) {
	seen := map[string]bool{}
	for _, d := range decls {
		if seen[d.Name] {
			e.recover(c, diagnostic.EUnknownProcess, d.Loc, "process %s declared more than once", d.Name)
			continue
		}
		seen[d.Name] = true

		tags := make(map[string]bool, len(d.Handlers))
		for _, h := range d.Handlers {
			tags[h.Tag] = true
		}
		e.module.Processes[d.Name] = &typedast.ProcessInfo{
			Name:       d.Name,
			StateType:  c.FreshTVar(),
			MessageTag: tags,
		}
		e.lexicon = append(e.lexicon, d.Name)
	}
}

// elaborateProcessBodies type-checks each process's init expression and
// every handler body against the process's state type: a handler's
// `state` and payload parameter (bound from ProcessHandler.Param, the
// empty string when the tag carries no payload) are in scope, and the
// body's result must unify with the same state type every handler and
// the init expression share, since the state threaded through a
// process's receive loop never changes shape between messages.
func (e *Elaborator) elaborateProcessBodies(c *ctx.Context, env *ctx.Env, sub types.Subst, decls []*ast.ProcessDecl) types.Subst {
	for _, d := range decls {
		info, ok := e.module.Processes[d.Name]
		if !ok {
			continue
		}

		var initT types.Type
		initT, sub = e.infer(c, env, sub, d.Init)
		if s2, err := types.Unify(initT, info.StateType, sub); err == nil {
			sub = s2
		} else {
			e.recover(c, diagnostic.ETypeMismatch, d.Init.Pos(), "process %s: init has type %s, state is %s", d.Name, classes.NormalizeTypeName(sub.Apply(initT)), classes.NormalizeTypeName(sub.Apply(info.StateType)))
		}

		for _, h := range d.Handlers {
			handlerEnv := env.ExtendMono("state", info.StateType)
			if h.Param != "" {
				handlerEnv = handlerEnv.ExtendMono(h.Param, c.FreshTVar())
			}
			var bodyT types.Type
			bodyT, sub = e.infer(c, handlerEnv, sub, h.Body)
			if s2, err := types.Unify(sub.Apply(bodyT), sub.Apply(info.StateType), sub); err == nil {
				sub = s2
			} else {
				e.recover(c, diagnostic.EReturnType, h.Body.Pos(), "process %s: handler :%s returns %s, expected state %s", d.Name, h.Tag, classes.NormalizeTypeName(sub.Apply(bodyT)), classes.NormalizeTypeName(sub.Apply(info.StateType)))
			}
		}
	}
	return sub
}
