package elaborate

import (
	"github.com/vaisto-lang/vaisto/internal/ast"
	"github.com/vaisto-lang/vaisto/internal/classes"
	"github.com/vaisto-lang/vaisto/internal/ctx"
	"github.com/vaisto-lang/vaisto/internal/diagnostic"
)

// admitClass registers a `defclass` declaration into the class table and
// indexes each of its method names into methodClass, so an ordinary
// call to that method name dispatches as a class method the same way
// the four builtin classes' methods already do.
func (e *Elaborator) admitClass(c *ctx.Context, decl *ast.DefclassDecl) {
	if err := e.classes.Admit(decl); err != nil {
		e.recover(c, diagnostic.EOverlappingClass, decl.Loc, "%v", err)
		return
	}
	for _, m := range decl.Methods {
		e.methodClass[m.Name] = methodRef{Class: decl.Name, Method: m.Name}
		e.lexicon = append(e.lexicon, m.Name)
	}
}

// admitInstance converts an `instance` declaration into a
// classes.Instance and adds it to the instance table, surfacing an
// overlap (two instances for the same class/head) as a diagnostic
// rather than a panic.
func (e *Elaborator) admitInstance(c *ctx.Context, decl *ast.InstanceDecl) {
	methods := make(map[string]*ast.MethodImpl, len(decl.Methods))
	for _, m := range decl.Methods {
		methods[m.Name] = m
	}
	inst := &classes.Instance{
		Class:       decl.Class,
		Head:        decl.Head,
		HeadArgs:    decl.HeadArgs,
		Constraints: decl.Constraints,
		Methods:     methods,
	}
	if err := e.instances.Add(inst); err != nil {
		e.recover(c, diagnostic.EOverlappingClass, decl.Loc, "%v", err)
	}
}
