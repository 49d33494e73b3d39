package elaborate

import (
	"sort"
	"strings"

	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/classes"
	"github.com/vaisto-lang/vaisto/internal/ctx"
	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/pattern"
	"github.com/vaisto-lang/vaisto/internal/types"
)

// infer is the single recursive judgment implementing every expression
// rule of spec.md §4.4, threading a substitution functionally the way
// internal/pattern.Bind already does rather than mutating shared state.
// Every error is recorded on c (via recover) and absorbed into
// types.TAny, the documented recovery placeholder, so one malformed
// expression never aborts elaboration of the rest of the file.
func (e *Elaborator) infer(c *ctx.Context, env *ctx.Env, sub types.Subst, expr ast.Expr) (types.Type, types.Subst) {
	switch n := expr.(type) {

	case *ast.Literal:
		var t types.Type
		switch n.Kind {
		case ast.LitInt:
			t = types.TInt
		case ast.LitFloat:
			t = types.TFloat
		case ast.LitBool:
			t = types.TBool
		case ast.LitString:
			t = types.TString
		default:
			t = types.TAny
		}
		e.module.Types[expr] = t
		return t, sub

	case *ast.Atom:
		t := &types.AtomTag{Tag: n.Tag}
		e.module.Types[expr] = t
		return t, sub

	case *ast.Sym:
		if sc, ok := env.Lookup(n.Name); ok {
			t, constraints := c.Instantiate(sc)
			for _, con := range constraints {
				c.AddConstraint(con)
			}
			e.module.Types[expr] = t
			return t, sub
		}
		t := &types.AtomTag{Tag: n.Name}
		e.module.Types[expr] = t
		return t, sub

	case *ast.If:
		return e.inferIf(c, env, sub, n, expr)

	case *ast.Let:
		return e.inferLet(c, env, sub, n, expr)

	case *ast.Fn:
		return e.inferFn(c, env, sub, n, expr)

	case *ast.Call:
		return e.inferCall(c, env, sub, n, expr)

	case *ast.BinOp:
		return e.inferBinOp(c, env, sub, n, expr)

	case *ast.Do:
		return e.inferDo(c, env, sub, n, expr)

	case *ast.Match:
		return e.inferMatch(c, env, sub, n, expr)

	case *ast.FieldAccess:
		return e.inferFieldAccess(c, env, sub, n, expr)

	case *ast.Spawn:
		return e.inferSpawn(c, env, sub, n, expr)

	case *ast.Send:
		return e.inferSend(c, env, sub, n, expr)
	}

	result := e.recover(c, diagnostic.EInternal, expr.Pos(), "elaborate: unhandled expression form %T", expr)
	e.module.Types[expr] = result
	return result, sub
}

func (e *Elaborator) inferIf(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.If, expr ast.Expr) (types.Type, types.Subst) {
	var condT types.Type
	condT, sub = e.infer(c, env, sub, n.Cond)
	if s2, err := types.Unify(condT, types.TBool, sub); err == nil {
		sub = s2
	} else {
		e.recover(c, diagnostic.ENonBoolPredicate, n.Cond.Pos(), "if condition must be Bool, got %s", classes.NormalizeTypeName(sub.Apply(condT)))
	}

	var thenT, elseT types.Type
	thenT, sub = e.infer(c, env, sub, n.Then)
	elseT, sub = e.infer(c, env, sub, n.Else)
	thenT = sub.Apply(thenT)
	elseT = sub.Apply(elseT)

	if s3, err := types.Unify(thenT, elseT, sub); err == nil {
		sub = s3
		result := sub.Apply(thenT)
		e.module.Types[expr] = result
		return result, sub
	}

	if at1, ok1 := thenT.(*types.AtomTag); ok1 {
		if at2, ok2 := elseT.(*types.AtomTag); ok2 && at1.Tag != at2.Tag {
			e.module.Types[expr] = types.TAtom
			return types.TAtom, sub
		}
	}

	result := e.recover(c, diagnostic.EBranchDivergence, n.Pos(), "if branches diverge: %s vs %s", classes.NormalizeTypeName(thenT), classes.NormalizeTypeName(elseT))
	e.module.Types[expr] = result
	return result, sub
}

func (e *Elaborator) inferLet(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.Let, expr ast.Expr) (types.Type, types.Subst) {
	curEnv := env
	for _, b := range n.Bindings {
		var initT types.Type
		initT, sub = e.infer(c, curEnv, sub, b.Init)
		scheme := c.Generalize(curEnv, initT, sub)
		curEnv = curEnv.Extend(b.Name, scheme)
	}
	var bodyT types.Type
	bodyT, sub = e.infer(c, curEnv, sub, n.Body)
	e.module.Types[expr] = bodyT
	return bodyT, sub
}

func (e *Elaborator) inferFn(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.Fn, expr ast.Expr) (types.Type, types.Subst) {
	paramVars := make([]types.Type, len(n.Params))
	fnEnv := env
	for i, p := range n.Params {
		tv := c.FreshTVar()
		paramVars[i] = tv
		fnEnv = fnEnv.ExtendMono(p, tv)
	}
	var bodyT types.Type
	bodyT, sub = e.infer(c, fnEnv, sub, n.Body)
	result := &types.TFun{Params: paramVars, Return: bodyT}
	e.module.Types[expr] = result
	return result, sub
}

func (e *Elaborator) inferCall(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.Call, expr ast.Expr) (types.Type, types.Subst) {
	if sym, isSym := n.Fn.(*ast.Sym); isSym {
		if _, bound := env.Lookup(sym.Name); !bound {
			if ref, ok := e.methodClass[sym.Name]; ok {
				return e.inferClassMethodCall(c, env, sub, expr, ref.Class, ref.Method, n.Args)
			}
			hint, hasHint := diagnostic.Suggest(sym.Name, e.lexicon)
			d := diagnostic.New(diagnostic.EUnknownFunction, sym.Pos(), "unknown function: %s", sym.Name)
			if hasHint {
				d = d.WithHint("did you mean %q?", hint)
			}
			c.AddError(d)
			for _, a := range n.Args {
				_, sub = e.infer(c, env, sub, a)
			}
			e.module.Types[expr] = types.TAny
			return types.TAny, sub
		}
	}

	var fnT types.Type
	fnT, sub = e.infer(c, env, sub, n.Fn)
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		argTypes[i], sub = e.infer(c, env, sub, a)
	}

	resolvedFn := sub.Apply(fnT)
	if _, isFun := resolvedFn.(*types.TFun); !isFun {
		if _, isVar := resolvedFn.(*types.TVar); !isVar {
			result := e.recover(c, diagnostic.ENotAFunction, n.Fn.Pos(), "cannot call non-function type %s", classes.NormalizeTypeName(resolvedFn))
			e.module.Types[expr] = result
			return result, sub
		}
	}

	resultVar := c.FreshTVar()
	expected := &types.TFun{Params: argTypes, Return: resultVar}
	s2, err := types.Unify(resolvedFn, expected, sub)
	if err != nil {
		result := e.recover(c, diagnostic.EArity, n.Pos(), "%v", err)
		e.module.Types[expr] = result
		return result, sub
	}
	sub = s2
	result := sub.Apply(resultVar)
	e.module.Types[expr] = result
	return result, sub
}

// unifyNumericOperands implements the numeric widening rule: Int paired
// with Float widens to Float without needing a class dictionary;
// anything else (including two still-unresolved type variables) unifies
// structurally, so a generic numeric function's parameters simply
// become the same type.
func unifyNumericOperands(a, b types.Type, sub types.Subst) (types.Type, types.Subst, error) {
	if a.Equals(types.TInt) && b.Equals(types.TFloat) {
		return types.TFloat, sub, nil
	}
	if a.Equals(types.TFloat) && b.Equals(types.TInt) {
		return types.TFloat, sub, nil
	}
	s2, err := types.Unify(a, b, sub)
	if err != nil {
		return nil, sub, err
	}
	return s2.Apply(a), s2, nil
}

func (e *Elaborator) inferBinOp(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.BinOp, expr ast.Expr) (types.Type, types.Subst) {
	var lt, rt types.Type
	lt, sub = e.infer(c, env, sub, n.Left)
	rt, sub = e.infer(c, env, sub, n.Right)
	lt = sub.Apply(lt)
	rt = sub.Apply(rt)

	common, s2, err := unifyNumericOperands(lt, rt, sub)
	if err != nil {
		result := e.recover(c, diagnostic.EInvalidOperand, n.Pos(), "cannot apply %s to %s and %s", n.Op, classes.NormalizeTypeName(lt), classes.NormalizeTypeName(rt))
		e.module.Types[expr] = result
		return result, sub
	}
	sub = s2
	c.AddConstraint(types.Constraint{Class: "Num", Type: common})

	if n.Op == "/" {
		e.module.Types[expr] = types.TFloat
		return types.TFloat, sub
	}
	result := sub.Apply(common)
	e.module.Types[expr] = result
	return result, sub
}

func (e *Elaborator) inferDo(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.Do, expr ast.Expr) (types.Type, types.Subst) {
	var result types.Type = types.TUnit
	for _, x := range n.Exprs {
		result, sub = e.infer(c, env, sub, x)
	}
	e.module.Types[expr] = result
	return result, sub
}

func (e *Elaborator) inferMatch(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.Match, expr ast.Expr) (types.Type, types.Subst) {
	var scrutT types.Type
	scrutT, sub = e.infer(c, env, sub, n.Scrutinee)
	scrutT = sub.Apply(scrutT)

	if _, isVar := scrutT.(*types.TVar); isVar {
		for _, cl := range n.Clauses {
			pc, ok := cl.Pattern.(*ast.PCtor)
			if !ok {
				continue
			}
			owner, ok := e.ctorOwner[pc.Ctor]
			if !ok {
				continue
			}
			nominal := e.freshNominalType(c, owner)
			if s2, err := types.Unify(scrutT, nominal, sub); err == nil {
				sub = s2
				scrutT = sub.Apply(scrutT)
			}
			break
		}
	}

	var resultT types.Type
	haveResult := false
	for _, cl := range n.Clauses {
		bindings, s2, err := pattern.Bind(cl.Pattern, scrutT, c, sub, e.module)
		if err != nil {
			e.recover(c, diagnostic.ETypeMismatch, cl.Pattern.Pos(), "%v", err)
			continue
		}
		sub = s2
		clauseEnv := env
		for name, t := range bindings {
			clauseEnv = clauseEnv.ExtendMono(name, t)
		}
		var bodyT types.Type
		bodyT, sub = e.infer(c, clauseEnv, sub, cl.Body)
		if !haveResult {
			resultT = bodyT
			haveResult = true
			continue
		}
		if s3, err := types.Unify(sub.Apply(resultT), sub.Apply(bodyT), sub); err == nil {
			sub = s3
			resultT = sub.Apply(resultT)
		} else {
			e.recover(c, diagnostic.EReturnType, cl.Body.Pos(), "match clause returns %s, expected %s", classes.NormalizeTypeName(sub.Apply(bodyT)), classes.NormalizeTypeName(resultT))
		}
	}
	if !haveResult {
		resultT = types.TAny
	}

	check := pattern.Check(n.Clauses, scrutT, e.module)
	if !check.Exhaustive {
		e.recover(c, diagnostic.ENonExhaustive, n.Pos(), "non-exhaustive match, missing: %s", strings.Join(check.Missing, "; "))
	}

	result := sub.Apply(resultT)
	e.module.Types[expr] = result
	return result, sub
}

func (e *Elaborator) inferFieldAccess(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.FieldAccess, expr ast.Expr) (types.Type, types.Subst) {
	var recT types.Type
	recT, sub = e.infer(c, env, sub, n.Record)
	recT = sub.Apply(recT)

	var rowVarID uint32
	if rec, ok := recT.(*types.Record); ok && rec.Row != nil && rec.Row.Tail != nil {
		rowVarID = rec.Row.Tail.ID
	} else {
		rowVarID = c.FreshRVar().ID
	}
	fieldVar := &types.TVar{ID: types.FieldTVarID(rowVarID, n.Field)}
	candidate := &types.Record{Row: &types.Row{Labels: map[string]types.Type{n.Field: fieldVar}, Tail: &types.RVar{ID: rowVarID}}}

	s2, err := types.Unify(recT, candidate, sub)
	if err != nil {
		result := e.recover(c, diagnostic.ETypeMismatch, n.Pos(), "value has no field %q: %v", n.Field, err)
		e.module.Types[expr] = result
		return result, sub
	}
	sub = s2
	result := sub.Apply(fieldVar)
	e.module.Types[expr] = result
	return result, sub
}

func (e *Elaborator) inferSpawn(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.Spawn, expr ast.Expr) (types.Type, types.Subst) {
	info, ok := e.module.Processes[n.Process]
	if !ok {
		result := e.recover(c, diagnostic.EUnknownProcess, n.Pos(), "unknown process: %s", n.Process)
		e.module.Types[expr] = result
		return result, sub
	}

	var initT types.Type
	initT, sub = e.infer(c, env, sub, n.Init)
	if s2, err := types.Unify(initT, info.StateType, sub); err == nil {
		sub = s2
	} else {
		e.recover(c, diagnostic.ETypeMismatch, n.Init.Pos(), "spawn %s: init value has type %s, process state is %s", n.Process, classes.NormalizeTypeName(sub.Apply(initT)), classes.NormalizeTypeName(info.StateType))
	}

	tags := make([]string, 0, len(info.MessageTag))
	for t := range info.MessageTag {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	result := &types.PidOf{Process: n.Process, AcceptedMsgs: tags}
	e.module.Types[expr] = result
	return result, sub
}

func (e *Elaborator) inferSend(c *ctx.Context, env *ctx.Env, sub types.Subst, n *ast.Send, expr ast.Expr) (types.Type, types.Subst) {
	var pidT types.Type
	pidT, sub = e.infer(c, env, sub, n.Pid)
	pidT = sub.Apply(pidT)

	pid, ok := pidT.(*types.PidOf)
	if !ok {
		result := e.recover(c, diagnostic.ESendToNonPid, n.Pid.Pos(), "cannot send to non-pid type %s", classes.NormalizeTypeName(pidT))
		e.module.Types[expr] = result
		return result, sub
	}

	var msgT types.Type
	msgT, sub = e.infer(c, env, sub, n.Msg)
	if tag, hasTag := messageTag(sub.Apply(msgT)); hasTag && !pid.Accepts(tag) {
		e.recover(c, diagnostic.EInvalidMessage, n.Msg.Pos(), "process %s does not accept message :%s", pid.Process, tag)
	}

	e.module.Types[expr] = types.TUnit
	return types.TUnit, sub
}

// messageTag extracts the atom tag a sent message dispatches a process
// handler on: either the message itself is an atom, or it is a tuple
// whose first element is one — vaisto has no other way to spell a
// tagged message, per §5.2's process handler form.
func messageTag(t types.Type) (string, bool) {
	switch v := t.(type) {
	case *types.AtomTag:
		return v.Tag, true
	case *types.TTuple:
		if len(v.Elems) > 0 {
			if at, ok := v.Elems[0].(*types.AtomTag); ok {
				return at.Tag, true
			}
		}
	}
	return "", false
}

// freshNominalType instantiates a deftype's nominal shape with fresh
// type arguments — used to pre-unify an as-yet-unresolved scrutinee type
// variable against the owning type of the first constructor pattern a
// match clause mentions, since internal/pattern.Bind's bindCtor requires
// a resolved *types.Sum or named *types.Record head and cannot itself
// resolve a bare type variable.
func (e *Elaborator) freshNominalType(c *ctx.Context, name string) types.Type {
	info, ok := e.module.Deftypes[name]
	if !ok {
		return types.TAny
	}
	if info.IsRecord {
		ctor := info.Ctors[0]
		labels := make(map[string]types.Type, len(ctor.Fields))
		for i, lbl := range ctor.Labels {
			labels[lbl] = ctor.Fields[i]
		}
		return &types.Record{Name: name, Row: &types.Row{Labels: labels}}
	}
	params := e.deftypeParams[name]
	args := make([]types.Type, len(params))
	for i := range params {
		args[i] = c.FreshTVar()
	}
	return &types.Sum{Name: name, Args: args}
}
