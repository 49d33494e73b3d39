// Package elaborate is vaisto's type elaborator: Hindley-Milner
// inference extended with ADTs and exhaustiveness checking, type
// classes with deriving, row-polymorphic records, and capability-typed
// process/PID message passing (spec.md §4). It decorates the surface
// ast.File in place, recording each expression's resolved type (and, at
// a class method call, the dictionary chosen to satisfy it) into an
// internal/typedast.Module rather than lowering to a separate IR — the
// teacher's ANF-lowering and dictionary-passing-evaluator elaborator
// (core.go, expressions.go, dictionaries.go, verify.go and friends) was
// superseded wholesale by this design; see DESIGN.md's "Dropped teacher
// modules" entry for why.
package elaborate

import (
	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/classes"
	"github.com/vaisto-lang/vaisto/internal/ctx"
	"github.com/vaisto-lang/vaisto/internal/diagnostic"
	"github.com/vaisto-lang/vaisto/internal/typedast"
	"github.com/vaisto-lang/vaisto/internal/types"
)

// Elaborator carries the tables built up while admitting one file's
// declarations: the class/instance tables inference consults, the
// constructor-to-owning-type index internal/pattern's bindCtor cannot
// derive from a bare type variable on its own, and the typed-AST
// decoration being assembled.
type Elaborator struct {
	module *typedast.Module

	classes   *classes.Table
	instances *classes.InstanceTable

	// ctorOwner maps a constructor name to the deftype that declares it,
	// and deftypeParams maps a deftype name to its own type-parameter
	// ids — together enough to mint a fresh instantiation of a deftype's
	// nominal shape when a match scrutinee's type is still an unresolved
	// type variable.
	ctorOwner     map[string]string
	deftypeParams map[string][]uint32

	// methodClass maps a bare name (an ordinary method name, or — for
	// the builtin Eq and Ord classes only — an operator symbol like "==") to
	// the class/method it dispatches, so Call inference can recognize a
	// method invocation written as an ordinary function call.
	methodClass map[string]methodRef

	// lexicon collects every name admitted as a constructor, method, or
	// top-level defn, purely so an unknown-function call site can offer
	// a typo suggestion (internal/diagnostic.Suggest) — ctx.Env itself
	// has no enumeration API by design.
	lexicon []string
}

// New returns an elaborator seeded with vaisto's builtin classes and
// instances (Num/Eq/Ord/Show/Fractional over Int/Float/String/Bool),
// ready to admit one file's declarations.
func New() *Elaborator {
	return &Elaborator{
		module:        typedast.NewModule(""),
		classes:       classes.NewTable(),
		instances:     classes.LoadBuiltinInstances(),
		ctorOwner:     map[string]string{},
		deftypeParams: map[string][]uint32{},
		methodClass:   seedBuiltinMethodClass(),
	}
}

// recover accumulates a non-fatal diagnostic and returns types.TAny, the
// documented error-recovery placeholder, so a single malformed
// expression never aborts elaboration of the rest of the file.
func (e *Elaborator) recover(c *ctx.Context, code diagnostic.Code, loc ast.Loc, format string, args ...any) types.Type {
	c.AddError(diagnostic.New(code, loc, format, args...))
	return types.TAny
}

// Elaborate admits every declaration of file in dependency order —
// types, then classes and instances, then processes, then top-level
// defns grouped by strongly-connected call-graph component — and
// finally the optional trailing Eval expression permitted in eval mode,
// returning the fully decorated module.
func Elaborate(file *ast.File) *typedast.Module {
	e := New()
	e.module.Name = file.Name
	c := ctx.New()
	env := ctx.NewEnv()
	sub := types.NewSubst()

	var deftypes []*ast.DeftypeDecl
	var classDecls []*ast.DefclassDecl
	var instanceDecls []*ast.InstanceDecl
	var processDecls []*ast.ProcessDecl
	var defns []*ast.DefnDecl

	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *ast.DeftypeDecl:
			deftypes = append(deftypes, decl)
		case *ast.DefclassDecl:
			classDecls = append(classDecls, decl)
		case *ast.InstanceDecl:
			instanceDecls = append(instanceDecls, decl)
		case *ast.ProcessDecl:
			processDecls = append(processDecls, decl)
		case *ast.DefnDecl:
			defns = append(defns, decl)
		}
	}

	env, sub = e.admitDeftypes(c, env, deftypes)

	for _, decl := range classDecls {
		e.admitClass(c, decl)
	}
	e.module.Classes = e.classes

	for _, decl := range instanceDecls {
		e.admitInstance(c, decl)
	}
	e.module.Instances = e.instances

	e.admitProcessShapes(c, processDecls)

	env, sub = e.admitDefns(c, env, sub, defns)

	sub = e.elaborateProcessBodies(c, env, sub, processDecls)

	if file.Eval != nil {
		var evalT types.Type
		evalT, sub = e.infer(c, env, sub, file.Eval)
		e.module.Types[file.Eval] = sub.Apply(evalT)
	}

	e.finalize(c, sub)
	return e.module
}

// finalize re-applies the fully-solved substitution to every type
// recorded during inference, flattening intermediate type-variable
// bindings accumulated before later unification resolved them, and
// copies the context's accumulated diagnostics onto the module so
// typedast.Module.Ok reflects every error found across the whole pass.
func (e *Elaborator) finalize(c *ctx.Context, sub types.Subst) {
	for expr, t := range e.module.Types {
		e.module.Types[expr] = sub.Apply(t)
	}
	for _, p := range e.module.Processes {
		p.StateType = sub.Apply(p.StateType)
	}
	e.module.Errors = append(e.module.Errors, c.Errors()...)
}
