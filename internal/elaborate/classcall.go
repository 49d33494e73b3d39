package elaborate

import (
	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/classes"
	"github.com/vaisto-lang/vaisto/internal/ctx"
	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/typedast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

// methodRef is what a bare name resolves to when it names a class
// method rather than an ordinary binding: which class, and which
// method of that class (the two differ for an operator symbol, e.g.
// "==" names Eq's "eq" method).
type methodRef struct {
	Class  string
	Method string
}

// seedBuiltinMethodClass registers the method names of the five builtin
// classes (and, for Eq and Ord, their operator-symbol aliases) every module gets for
// free, so `(show x)`, `(eq a b)`, or a bare `==` used in Call position
// all resolve to a class-method dispatch without the user writing a
// `defclass` for them.
func seedBuiltinMethodClass() map[string]methodRef {
	m := map[string]methodRef{}
	add := func(class string, methods ...string) {
		for _, name := range methods {
			m[name] = methodRef{Class: class, Method: name}
		}
	}
	add("Num", "add", "sub", "mul", "div", "neg")
	add("Eq", "eq", "neq")
	add("Ord", "lt", "lte", "gt", "gte")
	add("Show", "show")
	add("Fractional", "divide", "recip")
	for _, op := range []string{"==", "!=", "<", "<=", ">", ">="} {
		class, method := classes.OperatorMethod(op)
		if class != "" {
			m[op] = methodRef{Class: class, Method: method}
		}
	}
	return m
}

// intrinsicResult returns the statically-known result type of a builtin
// class method, independent of whether its instance is resolved yet:
// Num/Fractional arithmetic returns the operand type itself, Eq/Ord
// comparisons return Bool, Show returns String. A derived Eq or Show
// instance (internal/classes.DeriveEq/DeriveShow) has the same result
// type as a builtin one — deriving only changes how the emitter builds
// the dictionary, never the static type — so this covers both without
// needing to know whether an instance is builtin or derived.
func intrinsicResult(class, method string, headType types.Type) (types.Type, bool) {
	switch class {
	case "Num":
		switch method {
		case "add", "sub", "mul", "div", "neg":
			return headType, true
		}
	case "Eq":
		switch method {
		case "eq", "neq":
			return types.TBool, true
		}
	case "Ord":
		switch method {
		case "lt", "lte", "gt", "gte":
			return types.TBool, true
		}
	case "Show":
		if method == "show" {
			return types.TString, true
		}
	case "Fractional":
		switch method {
		case "divide", "recip":
			return types.TFloat, true
		}
	}
	return nil, false
}

// inferClassMethodCall elaborates a call whose head names a class
// method rather than an ordinary binding (spec.md §4.5's resolver,
// reached through `(show x)`-style calls and through the comparison
// operators, which — unlike `+ - * /` — have no dedicated ast.BinOp
// form and arrive here as ordinary Call nodes). The first argument's
// type is the dispatch head, per every builtin class's single-type-
// parameter shape.
func (e *Elaborator) inferClassMethodCall(c *ctx.Context, env *ctx.Env, sub types.Subst, callExpr ast.Expr, className, methodName string, argExprs []ast.Expr) (types.Type, types.Subst) {
	if len(argExprs) == 0 {
		result := e.recover(c, diagnostic.EArity, callExpr.Pos(), "%s.%s needs at least one argument to dispatch on", className, methodName)
		e.module.Types[callExpr] = result
		return result, sub
	}
	var headType types.Type
	headType, sub = e.infer(c, env, sub, argExprs[0])
	for _, a := range argExprs[1:] {
		_, sub = e.infer(c, env, sub, a)
	}
	result, sub := e.classMethodCall(c, env, sub, callExpr, className, methodName, headType, argExprs)
	e.module.Types[callExpr] = result
	return result, sub
}

// classMethodCall resolves one class-constraint dispatch: a bare type
// variable head defers resolution (spec.md §4.5 step 2) via
// ctx.Context.AddConstraint, returning the intrinsic result type where
// one is statically known or a fresh placeholder otherwise; a concrete
// head resolves its dictionary immediately, recording it on the call
// node for the emitter, then either returns the intrinsic result or —
// for a method with no fixed built-in meaning — re-elaborates the
// chosen instance's (or class default's) method body.
func (e *Elaborator) classMethodCall(c *ctx.Context, env *ctx.Env, sub types.Subst, callExpr ast.Expr, className, methodName string, headType types.Type, argExprs []ast.Expr) (types.Type, types.Subst) {
	headType = sub.Apply(headType)
	c.AddConstraint(types.Constraint{Class: className, Type: headType})

	if _, isVar := headType.(*types.TVar); isVar {
		if result, ok := intrinsicResult(className, methodName, headType); ok {
			return result, sub
		}
		return c.FreshTVar(), sub
	}

	dict, err := classes.ResolveConstraint(e.instances, className, headType)
	if err != nil {
		return e.classResolutionError(c, callExpr.Pos(), className, headType, err), sub
	}
	e.module.ClassCall[callExpr] = &typedast.ClassCallInfo{Class: className, Method: methodName, Dict: dict}

	if result, ok := intrinsicResult(className, methodName, headType); ok {
		return result, sub
	}
	return e.elaborateUserClassCall(c, env, sub, className, methodName, headType, argExprs)
}

func (e *Elaborator) classResolutionError(c *ctx.Context, loc ast.Loc, className string, headType types.Type, err error) types.Type {
	if _, ok := err.(*classes.MissingInstanceError); ok {
		return e.recover(c, diagnostic.ENoInstance, loc, "no instance for %s[%s]", className, classes.NormalizeTypeName(headType))
	}
	return e.recover(c, diagnostic.EConstraintDepth, loc, "%v", err)
}

// elaborateUserClassCall re-elaborates the resolved instance's method
// body (or, absent one, the class's default) as a synthetic Call of an
// ordinary Fn literal — reusing Call/Fn inference rather than adding a
// parallel application rule, per the design decision recorded in
// DESIGN.md: ast.MethodSig carries no declared signature, so there is
// no scheme to instantiate at the call site, only a body to check
// directly against these particular arguments.
func (e *Elaborator) elaborateUserClassCall(c *ctx.Context, env *ctx.Env, sub types.Subst, className, methodName string, headType types.Type, argExprs []ast.Expr) (types.Type, types.Subst) {
	inst, ok := e.instances.Lookup(className, headType)
	if !ok {
		return e.recover(c, diagnostic.ENoInstance, argExprs[0].Pos(), "no instance for %s[%s]", className, classes.NormalizeTypeName(headType)), sub
	}

	var params []string
	var body ast.Expr
	if impl, ok := inst.Methods[methodName]; ok && impl.Body != nil {
		params, body = impl.Params, impl.Body
	} else if cls, ok := e.classes.Lookup(className); ok {
		if mi, ok := cls.Method(methodName); ok && mi.HasDefault {
			params, body = mi.Default.Params, mi.Default.Body
		}
	}
	if body == nil {
		return e.recover(c, diagnostic.ENoInstance, argExprs[0].Pos(), "class %s: method %s has no implementation for %s", className, methodName, classes.NormalizeTypeName(headType)), sub
	}

	synthetic := &ast.Call{Fn: &ast.Fn{Params: params, Body: body}, Args: argExprs}
	return e.infer(c, env, sub, synthetic)
}
