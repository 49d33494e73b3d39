package types

import (
	"fmt"
)

// UnifyError reports why two types could not be made equal.
type UnifyError struct {
	Left, Right Type
	Reason      string
}

func (e *UnifyError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot unify %s with %s: %s", e.Left.String(), e.Right.String(), e.Reason)
	}
	return fmt.Sprintf("cannot unify %s with %s", e.Left.String(), e.Right.String())
}

var freshRowVarSeq uint32

// freshRowVarFor mints a row variable outside the ordinary id space used
// by the inference context, for the remainder row produced when two
// differently-named open rows unify. Grounded on the teacher's
// RowUnifier.freshRowVar: both sides need a shared "and whatever's left"
// tail that is new to the program.
func freshRowVarFor(seed uint32) *RVar {
	freshRowVarSeq++
	return &RVar{ID: (FieldVarBit << 1) + seed + freshRowVarSeq}
}

// Unify computes the most general substitution making a and b equal,
// extending sub. It performs the occurs check on variable bindings and
// delegates record unification to UnifyRows.
func Unify(a, b Type, sub Subst) (Subst, error) {
	a = sub.Apply(a)
	b = sub.Apply(b)

	if a.Equals(b) {
		return sub, nil
	}

	switch av := a.(type) {
	case *TVar:
		return bindVar(av.ID, b, sub)
	case *RVar:
		return bindVar(av.ID, b, sub)
	}
	switch bv := b.(type) {
	case *TVar:
		return bindVar(bv.ID, a, sub)
	case *RVar:
		return bindVar(bv.ID, a, sub)
	}

	switch av := a.(type) {
	case *TCon:
		if av.Name == "Atom" {
			if _, ok := b.(*AtomTag); ok {
				return sub, nil
			}
		}
		bv, ok := b.(*TCon)
		if !ok {
			return nil, &UnifyError{Left: a, Right: b}
		}
		if av.Name == bv.Name {
			return sub, nil
		}
		return nil, &UnifyError{Left: a, Right: b}

	case *TFun:
		bv, ok := b.(*TFun)
		if !ok || len(av.Params) != len(bv.Params) {
			return nil, &UnifyError{Left: a, Right: b, Reason: "arity mismatch"}
		}
		var err error
		for i := range av.Params {
			sub, err = Unify(av.Params[i], bv.Params[i], sub)
			if err != nil {
				return nil, err
			}
		}
		return Unify(av.Return, bv.Return, sub)

	case *TList:
		bv, ok := b.(*TList)
		if !ok {
			return nil, &UnifyError{Left: a, Right: b}
		}
		return Unify(av.Elem, bv.Elem, sub)

	case *TTuple:
		bv, ok := b.(*TTuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return nil, &UnifyError{Left: a, Right: b, Reason: "arity mismatch"}
		}
		var err error
		for i := range av.Elems {
			sub, err = Unify(av.Elems[i], bv.Elems[i], sub)
			if err != nil {
				return nil, err
			}
		}
		return sub, nil

	case *Record:
		bv, ok := b.(*Record)
		if !ok {
			return nil, &UnifyError{Left: a, Right: b}
		}
		if av.Name != "" && bv.Name != "" && av.Name != bv.Name {
			return nil, &UnifyError{Left: a, Right: b, Reason: "record names disagree"}
		}
		return UnifyRows(av.Row, bv.Row, sub)

	case *Sum:
		bv, ok := b.(*Sum)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return nil, &UnifyError{Left: a, Right: b}
		}
		var err error
		for i := range av.Args {
			sub, err = Unify(av.Args[i], bv.Args[i], sub)
			if err != nil {
				return nil, err
			}
		}
		return sub, nil

	case *PidOf:
		bv, ok := b.(*PidOf)
		if !ok || av.Process != bv.Process {
			return nil, &UnifyError{Left: a, Right: b}
		}
		return sub, nil

	case *AtomTag:
		if bv, ok := b.(*AtomTag); ok && av.Tag == bv.Tag {
			return sub, nil
		}
		// A singleton atom is accepted wherever the universal Atom is
		// expected — the symmetric case is handled below when a is TCon.
		if bv, ok := b.(*TCon); ok && bv.Name == "Atom" {
			return sub, nil
		}
		return nil, &UnifyError{Left: a, Right: b}
	}

	return nil, &UnifyError{Left: a, Right: b}
}

func bindVar(id uint32, t Type, sub Subst) (Subst, error) {
	if tv, ok := t.(*TVar); ok && tv.ID == id {
		return sub, nil
	}
	if rv, ok := t.(*RVar); ok && rv.ID == id {
		return sub, nil
	}
	if occurs(id, t) {
		return nil, &UnifyError{Left: &TVar{ID: id}, Right: t, Reason: "occurs check failed"}
	}
	return sub.Bind(id, t), nil
}

func occurs(id uint32, t Type) bool {
	return FreeVars(t)[id]
}

// UnifyRows unifies two record rows, partitioning their fields into
// common, left-only, and right-only labels (§4.2): common fields unify
// structurally, a field unique to one open row flows into the other's
// tail, and two differently-named open tails share a freshly minted
// remainder row. Grounded on the teacher's RowUnifier.UnifyRows.
func UnifyRows(r1, r2 *Row, sub Subst) (Subst, error) {
	r1 = applySubToRow(sub, r1)
	r2 = applySubToRow(sub, r2)

	common := make(map[string]bool)
	only1 := make(map[string]Type)
	only2 := make(map[string]Type)

	for label, typ := range r1.Labels {
		if _, ok := r2.Labels[label]; ok {
			common[label] = true
		} else {
			only1[label] = typ
		}
	}
	for label, typ := range r2.Labels {
		if !common[label] {
			only2[label] = typ
		}
	}

	var err error
	for label := range common {
		sub, err = Unify(r1.Labels[label], r2.Labels[label], sub)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", label, err)
		}
	}

	switch {
	case r1.Tail == nil && r2.Tail == nil:
		if len(only1) > 0 || len(only2) > 0 {
			return nil, &UnifyError{
				Left: &Record{Row: r1}, Right: &Record{Row: r2},
				Reason: fmt.Sprintf("closed records disagree on fields %v / %v", labelNames(only1), labelNames(only2)),
			}
		}
		return sub, nil

	case r1.Tail != nil && r2.Tail == nil:
		return sub.Bind(r1.Tail.ID, &Row{Labels: only2, Tail: nil}), nil

	case r1.Tail == nil && r2.Tail != nil:
		return sub.Bind(r2.Tail.ID, &Row{Labels: only1, Tail: nil}), nil

	default: // both open
		if r1.Tail.ID == r2.Tail.ID {
			if len(only1) > 0 || len(only2) > 0 {
				return nil, &UnifyError{
					Left: &Record{Row: r1}, Right: &Record{Row: r2},
					Reason: "same row variable with different extensions",
				}
			}
			return sub, nil
		}
		fresh := freshRowVarFor(r1.Tail.ID ^ r2.Tail.ID)
		sub = sub.Bind(r1.Tail.ID, &Row{Labels: only2, Tail: fresh})
		sub = sub.Bind(r2.Tail.ID, &Row{Labels: only1, Tail: fresh})
		return sub, nil
	}
}

func applySubToRow(sub Subst, r *Row) *Row {
	if r == nil {
		return &Row{Labels: map[string]Type{}}
	}
	return sub.applyRow(r)
}

func labelNames(labels map[string]Type) []string {
	names := make([]string, 0, len(labels))
	for k := range labels {
		names = append(names, k)
	}
	return names
}
