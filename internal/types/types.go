// Package types defines vaisto's type representation: type variables, row
// variables, the built-in type constructors, records, sum types, process
// PIDs, and type schemes, plus the substitution and unification machinery
// the elaborator drives inference with.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Type is any vaisto type: a variable, a built-in constructor, a compound
// (function/list/tuple/record), a nominal sum type, or a process PID type.
type Type interface {
	String() string
	Equals(Type) bool
}

// FieldVarBit partitions the TVar id space (§3): an id with this bit set
// was introduced by a row-polymorphic field access rather than ordinary
// unification, so generalization can tell the two origins apart without
// extra bookkeeping.
const FieldVarBit uint32 = 1 << 27

// IsFieldVar reports whether id was minted for a field access rather than
// an ordinary inference variable.
func IsFieldVar(id uint32) bool { return id&FieldVarBit != 0 }

// FieldTVarID deterministically derives the type variable id used for
// accessing label on a record whose own row variable is recordVar, so that
// two accesses to the same field through the same row variable share one
// type instead of unifying two independently-fresh variables.
func FieldTVarID(recordVar uint32, label string) uint32 {
	h := fnv32a(fmt.Sprintf("%d:%s", recordVar, label))
	return h | FieldVarBit
}

func fnv32a(s string) uint32 {
	const offset32 = 2166136261
	const prime32 = 16777619
	h := uint32(offset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return h
}

// TVar is an ordinary inference type variable, identified by a small
// integer minted by the inference context (internal/ctx).
type TVar struct {
	ID uint32
}

func (t *TVar) String() string { return fmt.Sprintf("t%d", t.ID) }
func (t *TVar) Equals(other Type) bool {
	o, ok := other.(*TVar)
	return ok && t.ID == o.ID
}

// RVar is a row variable: the "...rest" of an open record.
type RVar struct {
	ID uint32
}

func (r *RVar) String() string { return fmt.Sprintf("r%d", r.ID) }
func (r *RVar) Equals(other Type) bool {
	o, ok := other.(*RVar)
	return ok && r.ID == o.ID
}

// TCon is a nullary built-in type constructor.
type TCon struct {
	Name string
}

var (
	TInt    = &TCon{Name: "Int"}
	TFloat  = &TCon{Name: "Float"}
	TBool   = &TCon{Name: "Bool"}
	TString = &TCon{Name: "String"}
	TUnit   = &TCon{Name: "Unit"}
	TAny    = &TCon{Name: "Any"} // error-recovery placeholder, never shown to a user as a real type
	TAtom   = &TCon{Name: "Atom"} // universal atom type, the widened form of any AtomTag
)

func (t *TCon) String() string { return t.Name }
func (t *TCon) Equals(other Type) bool {
	o, ok := other.(*TCon)
	return ok && t.Name == o.Name
}

// AtomTag is a singleton atom type: the type of one specific `:tag`
// literal (§3: "Atom(sym) (singleton)"). Two AtomTags with different
// Tags are distinct types; `if`'s branch-unification rule is the one
// place they widen to the universal TAtom rather than failing to unify.
type AtomTag struct {
	Tag string
}

func (t *AtomTag) String() string { return ":" + t.Tag }
func (t *AtomTag) Equals(other Type) bool {
	o, ok := other.(*AtomTag)
	return ok && t.Tag == o.Tag
}

// TFun is a (possibly multi-argument) function type.
type TFun struct {
	Params []Type
	Return Type
}

func (t *TFun) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.Return.String())
}

func (t *TFun) Equals(other Type) bool {
	o, ok := other.(*TFun)
	if !ok || len(t.Params) != len(o.Params) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equals(o.Params[i]) {
			return false
		}
	}
	return t.Return.Equals(o.Return)
}

// TList is a homogeneous list type.
type TList struct {
	Elem Type
}

func (t *TList) String() string { return "[" + t.Elem.String() + "]" }
func (t *TList) Equals(other Type) bool {
	o, ok := other.(*TList)
	return ok && t.Elem.Equals(o.Elem)
}

// TTuple is a fixed-arity heterogeneous tuple type.
type TTuple struct {
	Elems []Type
}

func (t *TTuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *TTuple) Equals(other Type) bool {
	o, ok := other.(*TTuple)
	if !ok || len(t.Elems) != len(o.Elems) {
		return false
	}
	for i := range t.Elems {
		if !t.Elems[i].Equals(o.Elems[i]) {
			return false
		}
	}
	return true
}

// Row is an open or closed record row: a set of labeled field types plus
// an optional tail variable standing for "and possibly more fields".
type Row struct {
	Labels map[string]Type
	Tail   *RVar // nil means the row is closed
}

func (r *Row) sortedLabels() []string {
	keys := make([]string, 0, len(r.Labels))
	for k := range r.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Row) String() string {
	keys := r.sortedLabels()
	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, r.Labels[k].String()))
	}
	if r.Tail != nil {
		parts = append(parts, "| "+r.Tail.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (r *Row) Equals(other Type) bool {
	o, ok := other.(*Row)
	if !ok || len(r.Labels) != len(o.Labels) {
		return false
	}
	for k, v := range r.Labels {
		ov, ok := o.Labels[k]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	if r.Tail == nil || o.Tail == nil {
		return r.Tail == o.Tail
	}
	return r.Tail.Equals(o.Tail)
}

// Record is a record type: an open or closed row, optionally given a
// nominal name by a single-constructor, all-labeled-fields deftype (§3:
// "Record(name, fields: [(sym, T)]) — nominal product"). Name is empty
// for the anonymous, purely structural records row-polymorphic field
// access infers on the fly — those are never declared, only inferred,
// and never get class instances of their own.
type Record struct {
	Name string
	Row  *Row
}

func (t *Record) String() string {
	body := "{}"
	if t.Row != nil {
		body = t.Row.String()
	}
	if t.Name == "" {
		return body
	}
	return t.Name + " " + body
}

func (t *Record) Equals(other Type) bool {
	o, ok := other.(*Record)
	if !ok || t.Name != o.Name {
		return false
	}
	if t.Row == nil || o.Row == nil {
		return t.Row == o.Row
	}
	return t.Row.Equals(o.Row)
}

// Sum is a nominal algebraic data type, e.g. Option a or Result a b. Name
// identifies the deftype; Args are its type parameters' current bindings.
type Sum struct {
	Name string
	Args []Type
}

func (t *Sum) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + " " + strings.Join(parts, " ")
}

func (t *Sum) Equals(other Type) bool {
	o, ok := other.(*Sum)
	if !ok || t.Name != o.Name || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equals(o.Args[i]) {
			return false
		}
	}
	return true
}

// PidOf is the capability-typed PID of a spawned process: it carries the
// name of the process declaration, and the set of message tags that
// process's handlers accept, so `!`/`!!` sends can be checked statically
// (§3: "PidOf(process_name, accepted_msgs: [sym])").
type PidOf struct {
	Process      string
	AcceptedMsgs []string
}

func (t *PidOf) String() string { return "Pid<" + t.Process + ">" }
func (t *PidOf) Equals(other Type) bool {
	o, ok := other.(*PidOf)
	return ok && t.Process == o.Process
}

// Accepts reports whether tag is one of the process's declared message
// tags.
func (t *PidOf) Accepts(tag string) bool {
	for _, m := range t.AcceptedMsgs {
		if m == tag {
			return true
		}
	}
	return false
}

// Constraint is a type class constraint attached to a scheme, e.g. Eq a.
type Constraint struct {
	Class string
	Type  Type
}

func (c Constraint) String() string { return c.Class + " " + c.Type.String() }

// Scheme is a universally quantified, possibly constrained type: the
// result of generalizing an inferred type at a let/defn boundary.
type Scheme struct {
	TVars       []uint32
	RVars       []uint32
	Constraints []Constraint
	Type        Type
}

func (s *Scheme) String() string {
	if len(s.TVars) == 0 && len(s.RVars) == 0 && len(s.Constraints) == 0 {
		return s.Type.String()
	}
	var b strings.Builder
	if len(s.TVars) > 0 || len(s.RVars) > 0 {
		b.WriteString("forall")
		for _, v := range s.TVars {
			fmt.Fprintf(&b, " t%d", v)
		}
		for _, v := range s.RVars {
			fmt.Fprintf(&b, " r%d", v)
		}
		b.WriteString(". ")
	}
	if len(s.Constraints) > 0 {
		parts := make([]string, len(s.Constraints))
		for i, c := range s.Constraints {
			parts[i] = c.String()
		}
		fmt.Fprintf(&b, "(%s) => ", strings.Join(parts, ", "))
	}
	b.WriteString(s.Type.String())
	return b.String()
}
