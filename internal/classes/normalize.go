package classes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vaisto-lang/vaisto/internal/types"
)

// NormalizeTypeName produces a canonical string for a type, used as the
// deterministic half of an instance-table/dictionary-registry key and in
// diagnostic messages. Grounded on the teacher's NormalizeTypeName, with
// TRecord/TVar2 replaced by vaisto's Row/Record/RVar and the teacher's
// Bytes constructor dropped (vaisto has no bytes primitive).
func NormalizeTypeName(t types.Type) string {
	if t == nil {
		return "<unknown>"
	}
	switch typ := t.(type) {
	case *types.TCon:
		return typ.Name
	case *types.TVar:
		return fmt.Sprintf("_t%d", typ.ID)
	case *types.RVar:
		return fmt.Sprintf("_r%d", typ.ID)
	case *types.TFun:
		var params []string
		for _, p := range typ.Params {
			params = append(params, NormalizeTypeName(p))
		}
		return fmt.Sprintf("(%s)->%s", strings.Join(params, ","), NormalizeTypeName(typ.Return))
	case *types.TList:
		return fmt.Sprintf("List<%s>", NormalizeTypeName(typ.Elem))
	case *types.TTuple:
		var elems []string
		for _, e := range typ.Elems {
			elems = append(elems, NormalizeTypeName(e))
		}
		return fmt.Sprintf("Tuple<%s>", strings.Join(elems, ","))
	case *types.Record:
		if typ.Name != "" {
			return fmt.Sprintf("%s<%s>", typ.Name, normalizeRow(typ.Row))
		}
		return fmt.Sprintf("Record<%s>", normalizeRow(typ.Row))
	case *types.Sum:
		if len(typ.Args) == 0 {
			return typ.Name
		}
		var args []string
		for _, a := range typ.Args {
			args = append(args, NormalizeTypeName(a))
		}
		return fmt.Sprintf("%s<%s>", typ.Name, strings.Join(args, ","))
	case *types.PidOf:
		return fmt.Sprintf("Pid<%s>", typ.Process)
	case *types.AtomTag:
		return fmt.Sprintf("Atom<%s>", typ.Tag)
	default:
		return t.String()
	}
}

func normalizeRow(r *types.Row) string {
	if r == nil {
		return ""
	}
	names := make([]string, 0, len(r.Labels))
	for name := range r.Labels {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := make([]string, 0, len(names))
	for _, name := range names {
		fields = append(fields, fmt.Sprintf("%s:%s", name, NormalizeTypeName(r.Labels[name])))
	}
	s := strings.Join(fields, ",")
	if r.Tail != nil {
		s += "|" + NormalizeTypeName(r.Tail)
	}
	return s
}

// typeHeadName is the type-constructor name used as an instance-table
// key's type component: the nominal name for TCon/Sum/named Record, or a
// bare constructor name for the rest ("Pid", "List", "Tuple", "Record",
// "Fn", "Atom"), since vaisto instances are declared against a head
// constructor, not a fully applied type.
func typeHeadName(t types.Type) string {
	switch typ := t.(type) {
	case *types.TCon:
		return typ.Name
	case *types.Sum:
		return typ.Name
	case *types.PidOf:
		return "Pid"
	case *types.TList:
		return "List"
	case *types.TTuple:
		return "Tuple"
	case *types.Record:
		if typ.Name != "" {
			return typ.Name
		}
		return "Record"
	case *types.TFun:
		return "Fn"
	case *types.AtomTag:
		return "Atom"
	default:
		return NormalizeTypeName(t)
	}
}
