package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaisto-lang/vaisto/internal/ast"
)

func TestParseDefn(t *testing.T) {
	f := mustParse(t, `(defn add [a b] (+ a b))`)
	require.Len(t, f.Decls, 1)

	defn, ok := f.Decls[0].(*ast.DefnDecl)
	require.True(t, ok)
	assert.Equal(t, "add", defn.Name)
	assert.Equal(t, []string{"a", "b"}, defn.Params)

	op, ok := defn.Body.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "+", op.Op)
}

func TestParseDeftypeWithDeriving(t *testing.T) {
	f := mustParse(t, `
(deftype Color
  [Red]
  [Green]
  [Blue]
  deriving [Eq Show])`)

	require.Len(t, f.Decls, 1)
	dt, ok := f.Decls[0].(*ast.DeftypeDecl)
	require.True(t, ok)
	assert.Equal(t, "Color", dt.Name)
	require.Len(t, dt.Ctors, 3)
	assert.Equal(t, "Red", dt.Ctors[0].Name)
	assert.Equal(t, []string{"Eq", "Show"}, dt.Deriving)
}

func TestParseDeftypeWithPositionalFields(t *testing.T) {
	f := mustParse(t, `(deftype Box [Box Int String])`)
	dt := f.Decls[0].(*ast.DeftypeDecl)
	require.Len(t, dt.Ctors, 1)
	require.Len(t, dt.Ctors[0].Fields, 2)
	assert.Equal(t, "Int", dt.Ctors[0].Fields[0].Type.Name)
	assert.Equal(t, "String", dt.Ctors[0].Fields[1].Type.Name)
	assert.Empty(t, dt.Ctors[0].Fields[0].Label)
	assert.False(t, dt.Ctors[0].Labeled())
}

func TestParseDeftypeWithLabeledFields(t *testing.T) {
	f := mustParse(t, `(deftype Point [Point [x Int] [y Int]])`)
	dt := f.Decls[0].(*ast.DeftypeDecl)
	require.Len(t, dt.Ctors, 1)
	ctor := dt.Ctors[0]
	require.Len(t, ctor.Fields, 2)
	assert.Equal(t, "x", ctor.Fields[0].Label)
	assert.Equal(t, "Int", ctor.Fields[0].Type.Name)
	assert.Equal(t, "y", ctor.Fields[1].Label)
	assert.Equal(t, "Int", ctor.Fields[1].Type.Name)
	assert.True(t, ctor.Labeled())
}

func TestParseDefclass(t *testing.T) {
	f := mustParse(t, `
(defclass Eq a
  [(eq 2)
   (neq [x y] (. x :dummy))])`)

	dc := f.Decls[0].(*ast.DefclassDecl)
	assert.Equal(t, "Eq", dc.Name)
	assert.Equal(t, "a", dc.TyVar)
	require.Len(t, dc.Methods, 2)
	assert.Equal(t, 2, dc.Methods[0].Arity)
	assert.Nil(t, dc.Methods[0].Default)
	require.NotNil(t, dc.Methods[1].Default)
	assert.Equal(t, []string{"x", "y"}, dc.Methods[1].Default.Params)
}

func TestParseInstanceWithConstraints(t *testing.T) {
	f := mustParse(t, `
(instance Eq Pair a
  (constraints [(Eq a)])
  where
  [(eq [p q] (. p :dummy))])`)

	inst := f.Decls[0].(*ast.InstanceDecl)
	assert.Equal(t, "Eq", inst.Class)
	assert.Equal(t, "Pair", inst.Head)
	assert.Equal(t, []string{"a"}, inst.HeadArgs)
	require.Len(t, inst.Constraints, 1)
	assert.Equal(t, "Eq", inst.Constraints[0].Class)
	assert.Equal(t, "a", inst.Constraints[0].Param)
	require.Len(t, inst.Methods, 1)
	assert.Equal(t, "eq", inst.Methods[0].Name)
}

func TestParseProcess(t *testing.T) {
	f := mustParse(t, `
(process Counter
  (init 0)
  (handlers
    [:inc (n) (+ n 1)]
    [:get (n) n]))`)

	proc := f.Decls[0].(*ast.ProcessDecl)
	assert.Equal(t, "Counter", proc.Name)
	require.NotNil(t, proc.Init)
	require.Len(t, proc.Handlers, 2)
	assert.Equal(t, "inc", proc.Handlers[0].Tag)
	assert.Equal(t, "n", proc.Handlers[0].Param)
}

func TestParseIfLetFn(t *testing.T) {
	f := mustParse(t, `((fn [x] (let [y (+ x 1)] (if (> y 0) y 0))) 5)`)
	require.NotNil(t, f.Eval)

	call, ok := f.Eval.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 1)

	fn, ok := call.Fn.(*ast.Fn)
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, fn.Params)

	let, ok := fn.Body.(*ast.Let)
	require.True(t, ok)
	require.Len(t, let.Bindings, 1)
	assert.Equal(t, "y", let.Bindings[0].Name)

	_, ok = let.Body.(*ast.If)
	assert.True(t, ok)
}

func TestParseDoAndFieldAccess(t *testing.T) {
	f := mustParse(t, `(do (. rec :name) (. rec :age))`)
	do, ok := f.Eval.(*ast.Do)
	require.True(t, ok)
	require.Len(t, do.Exprs, 2)

	fa, ok := do.Exprs[0].(*ast.FieldAccess)
	require.True(t, ok)
	assert.Equal(t, "name", fa.Field)
}

func TestParseSpawnAndSend(t *testing.T) {
	f := mustParse(t, `(do (spawn Counter 0) (! pid :inc))`)
	do := f.Eval.(*ast.Do)

	spawn, ok := do.Exprs[0].(*ast.Spawn)
	require.True(t, ok)
	assert.Equal(t, "Counter", spawn.Process)

	send, ok := do.Exprs[1].(*ast.Send)
	require.True(t, ok)
	assert.True(t, send.Safe)
}

func TestParseUnsafeSend(t *testing.T) {
	f := mustParse(t, `(!! pid 42)`)
	send, ok := f.Eval.(*ast.Send)
	require.True(t, ok)
	assert.False(t, send.Safe)
}

func TestParseMatchWithConsPattern(t *testing.T) {
	f := mustParse(t, `
(match xs
  [[h | t] h]
  [[] 0])`)

	m, ok := f.Eval.(*ast.Match)
	require.True(t, ok)
	require.Len(t, m.Clauses, 2)

	cons, ok := m.Clauses[0].Pattern.(*ast.PCons)
	require.True(t, ok)
	_, ok = cons.Head.(*ast.PVar)
	assert.True(t, ok)

	list, ok := m.Clauses[1].Pattern.(*ast.PList)
	require.True(t, ok)
	assert.Len(t, list.Elems, 0)
}

func TestParseMatchWithCtorPattern(t *testing.T) {
	f := mustParse(t, `
(match opt
  [(Some x) x]
  [None 0])`)

	m := f.Eval.(*ast.Match)
	ctor, ok := m.Clauses[0].Pattern.(*ast.PCtor)
	require.True(t, ok)
	assert.Equal(t, "Some", ctor.Ctor)
	require.Len(t, ctor.Args, 1)

	bare, ok := m.Clauses[1].Pattern.(*ast.PCtor)
	require.True(t, ok)
	assert.Equal(t, "None", bare.Ctor)
	assert.Len(t, bare.Args, 0)
}

func TestParseTuplePattern(t *testing.T) {
	f := mustParse(t, `
(match p
  [(tuple a b) a])`)

	m := f.Eval.(*ast.Match)
	tup, ok := m.Clauses[0].Pattern.(*ast.PTuple)
	require.True(t, ok)
	require.Len(t, tup.Elems, 2)
}

func TestParseWildcardAndLiteralPatterns(t *testing.T) {
	f := mustParse(t, `
(match n
  [0 "zero"]
  [_ "other"])`)

	m := f.Eval.(*ast.Match)
	lit, ok := m.Clauses[0].Pattern.(*ast.PLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(0), lit.Lit.Int)

	_, ok = m.Clauses[1].Pattern.(*ast.PWildcard)
	assert.True(t, ok)
}

func TestParseNSAndImport(t *testing.T) {
	f := mustParse(t, `
(ns app.main)
(import app.util :as u)
(defn go [] 1)`)

	require.NotNil(t, f.NS)
	assert.Equal(t, "app.main", f.NS.Name)
	require.Len(t, f.Imports, 1)
	assert.Equal(t, "app.util", f.Imports[0].Module)
	assert.Equal(t, "u", f.Imports[0].Alias)
}

func TestParseListLiteralSugar(t *testing.T) {
	f := mustParse(t, `[1 2 3]`)
	call, ok := f.Eval.(*ast.Call)
	require.True(t, ok)
	fn := call.Fn.(*ast.Sym)
	assert.Equal(t, "list", fn.Name)
	assert.Len(t, call.Args, 3)
}

func TestParseErrorUnmatchedParen(t *testing.T) {
	errs := mustParseError(t, `(defn f [x] (+ x 1)`)
	require.NotEmpty(t, errs)
}

func TestParseErrorMissingBindingInit(t *testing.T) {
	errs := mustParseError(t, `(let [x] x)`)
	require.NotEmpty(t, errs)
}

func TestPrintDefnIsStable(t *testing.T) {
	f := mustParse(t, `(defn double [x] (* x 2))`)
	first := ast.Print(f)
	second := ast.Print(f)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "DefnDecl")
}
