// Package ast defines the untyped abstract syntax tree consumed by the
// elaborator. Nodes carry Loc spans so the diagnostic engine can point
// at exact source locations; the lexer/parser that produce a File are
// thin collaborators, not the focus of this module.
package ast

import "fmt"

// Loc is a source span: a start position and a length in bytes on that line.
type Loc struct {
	File   string
	Line   int
	Col    int
	Length int
}

func (l Loc) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// Node is implemented by every AST node.
type Node interface {
	Pos() Loc
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Pattern is any pattern node used in `match` clauses.
type Pattern interface {
	Node
	patternNode()
}

// Decl is any top-level declaration.
type Decl interface {
	Node
	declNode()
}

// File is a single parsed `.va` source file.
type File struct {
	Name    string
	NS      *NSDecl
	Imports []*ImportDecl
	Decls   []Decl
	// Eval is the optional trailing expression permitted in eval mode.
	Eval Expr
	Loc  Loc
}

func (f *File) Pos() Loc { return f.Loc }

// NSDecl is `(ns M)`.
type NSDecl struct {
	Name string
	Loc  Loc
}

func (n *NSDecl) Pos() Loc { return n.Loc }

// ImportDecl is `(import M [:as A])`.
type ImportDecl struct {
	Module string
	Alias  string // empty if no :as
	Loc    Loc
}

func (i *ImportDecl) Pos() Loc { return i.Loc }

// ---- Literals & variables ----

type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitBool
	LitString
)

type Literal struct {
	Kind  LitKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
	Loc   Loc
}

func (l *Literal) Pos() Loc  { return l.Loc }
func (l *Literal) exprNode() {}

// Sym is a bare symbol: either a bound variable reference or, when
// unbound, an atom literal (§4.4 Literal rule).
type Sym struct {
	Name string
	Loc  Loc
}

func (s *Sym) Pos() Loc  { return s.Loc }
func (s *Sym) exprNode() {}

// Atom is an explicit `:tag` literal.
type Atom struct {
	Tag string
	Loc Loc
}

func (a *Atom) Pos() Loc  { return a.Loc }
func (a *Atom) exprNode() {}

// ---- Core expression forms ----

type If struct {
	Cond, Then, Else Expr
	Loc              Loc
}

func (n *If) Pos() Loc  { return n.Loc }
func (n *If) exprNode() {}

type Binding struct {
	Name string
	Init Expr
}

type Let struct {
	Bindings []Binding
	Body     Expr
	Loc      Loc
}

func (n *Let) Pos() Loc  { return n.Loc }
func (n *Let) exprNode() {}

type Fn struct {
	Params []string
	Body   Expr
	Loc    Loc
}

func (n *Fn) Pos() Loc  { return n.Loc }
func (n *Fn) exprNode() {}

type Call struct {
	Fn   Expr
	Args []Expr
	Loc  Loc
}

func (n *Call) Pos() Loc  { return n.Loc }
func (n *Call) exprNode() {}

// BinOp covers the four numeric operators `+ - * /`.
type BinOp struct {
	Op          string
	Left, Right Expr
	Loc         Loc
}

func (n *BinOp) Pos() Loc  { return n.Loc }
func (n *BinOp) exprNode() {}

type Do struct {
	Exprs []Expr
	Loc   Loc
}

func (n *Do) Pos() Loc  { return n.Loc }
func (n *Do) exprNode() {}

type MatchClause struct {
	Pattern Pattern
	Body    Expr
}

type Match struct {
	Scrutinee Expr
	Clauses   []MatchClause
	Loc       Loc
}

func (n *Match) Pos() Loc  { return n.Loc }
func (n *Match) exprNode() {}

// FieldAccess is `(. record :field)`.
type FieldAccess struct {
	Record Expr
	Field  string
	Loc    Loc
}

func (n *FieldAccess) Pos() Loc  { return n.Loc }
func (n *FieldAccess) exprNode() {}

// Spawn is `(spawn p init)`.
type Spawn struct {
	Process string
	Init    Expr
	Loc     Loc
}

func (n *Spawn) Pos() Loc  { return n.Loc }
func (n *Spawn) exprNode() {}

// Send is `(! pid msg)` (Safe=true) or `(!! pid msg)` (Safe=false).
type Send struct {
	Pid  Expr
	Msg  Expr
	Safe bool
	Loc  Loc
}

func (n *Send) Pos() Loc  { return n.Loc }
func (n *Send) exprNode() {}

// ---- Patterns ----

type PWildcard struct{ Loc Loc }

func (p *PWildcard) Pos() Loc     { return p.Loc }
func (p *PWildcard) patternNode() {}

type PVar struct {
	Name string
	Loc  Loc
}

func (p *PVar) Pos() Loc     { return p.Loc }
func (p *PVar) patternNode() {}

type PLiteral struct {
	Lit *Literal
	Loc Loc
}

func (p *PLiteral) Pos() Loc     { return p.Loc }
func (p *PLiteral) patternNode() {}

// PCtor matches a sum constructor or a record-destructuring application.
type PCtor struct {
	Ctor string
	Args []Pattern
	Loc  Loc
}

func (p *PCtor) Pos() Loc     { return p.Loc }
func (p *PCtor) patternNode() {}

type PList struct {
	Elems []Pattern
	Loc   Loc
}

func (p *PList) Pos() Loc     { return p.Loc }
func (p *PList) patternNode() {}

// PCons matches `[h | t]`.
type PCons struct {
	Head, Tail Pattern
	Loc        Loc
}

func (p *PCons) Pos() Loc     { return p.Loc }
func (p *PCons) patternNode() {}

type PTuple struct {
	Elems []Pattern
	Loc   Loc
}

func (p *PTuple) Pos() Loc     { return p.Loc }
func (p *PTuple) patternNode() {}

// ---- Top-level declarations ----

type DefnDecl struct {
	Name   string
	Params []string
	Body   Expr
	Loc    Loc
}

func (d *DefnDecl) Pos() Loc  { return d.Loc }
func (d *DefnDecl) declNode() {}

// TypeRef is a reference to a type in a signature position (field type,
// constructor argument type). It is resolved against the type table
// during elaboration.
type TypeRef struct {
	Name string // "Int", "Float", "Bool", "String", "Atom", a type var, or a declared type name
	Loc  Loc
}

// FieldDecl is one constructor field. Label is empty for a plain
// positional sum-type field (`[Some Int]`); it is set when the field was
// written `[name Type]`, the form a record-style constructor uses so its
// fields have the labels row-polymorphic `.` access unifies against.
type FieldDecl struct {
	Label string
	Type  *TypeRef
	Loc   Loc
}

type CtorDecl struct {
	Name   string
	Fields []*FieldDecl
	Loc    Loc
}

// Labeled reports whether every field of the constructor carries a name,
// i.e. it was declared in record form. A constructor with zero fields is
// not labeled (there is nothing to label).
func (d *CtorDecl) Labeled() bool {
	if len(d.Fields) == 0 {
		return false
	}
	for _, f := range d.Fields {
		if f.Label == "" {
			return false
		}
	}
	return true
}

// DeftypeDecl is `(deftype T (Ctor field…)… deriving [C…])` for a sum, or
// a single-constructor record form recognized during admission (§4.9 of
// spec: "Cyclic and nominal types"). A record is a DeftypeDecl with
// exactly one constructor whose fields are all labeled; constructing one
// is ordinary constructor application `(Ctor v1 v2…)`, the same `Call`
// path a sum-type constructor uses — there is no separate record-literal
// syntax or AST node.
type DeftypeDecl struct {
	Name     string
	Ctors    []*CtorDecl
	Deriving []string
	Loc      Loc
}

func (d *DeftypeDecl) Pos() Loc  { return d.Loc }
func (d *DeftypeDecl) declNode() {}

type MethodSig struct {
	Name    string
	Arity   int
	Default *Fn // nil if no default body
	Loc     Loc
}

type DefclassDecl struct {
	Name    string
	TyVar   string
	Methods []*MethodSig
	Loc     Loc
}

func (d *DefclassDecl) Pos() Loc  { return d.Loc }
func (d *DefclassDecl) declNode() {}

type MethodImpl struct {
	Name   string
	Params []string
	Body   Expr
}

// InstanceDecl is `(instance C head methods…)` or, when Constraints is
// non-empty, `(instance C (H a…) where [(C1 a)…] methods…)`.
type InstanceDecl struct {
	Class       string
	Head        string   // primitive name or nominal type constructor name
	HeadArgs    []string // type parameters of the head, e.g. "a" in (Maybe a)
	Constraints []ClassConstraintRef
	Methods     []*MethodImpl
	Loc         Loc
}

// ClassConstraintRef is a `(C1 a)` entry in an instance's `where` clause.
type ClassConstraintRef struct {
	Class string
	Param string
}

func (d *InstanceDecl) Pos() Loc  { return d.Loc }
func (d *InstanceDecl) declNode() {}

type ProcessDecl struct {
	Name string
	Init Expr
	// Handlers maps a message tag to the parameter bound by that
	// message's payload (empty string if the tag carries no payload)
	// and the body elaborated with `state` and the parameter in scope.
	Handlers []ProcessHandler
	Loc      Loc
}

type ProcessHandler struct {
	Tag   string
	Param string
	Body  Expr
}

func (d *ProcessDecl) Pos() Loc  { return d.Loc }
func (d *ProcessDecl) declNode() {}
