package classes

import (
	"fmt"
	"sort"

	"github.com/vaisto-lang/vaisto/internal/types"
)

// DefaultingTrace records one numeric-defaulting decision, kept so a
// compile can explain itself (`vaisto compile -v` or similar) the same
// way the teacher's FormatDefaultingTraces does.
type DefaultingTrace struct {
	TVarID  uint32
	Class   string
	Default types.Type
}

// ApplyDefaulting resolves any remaining constraint on a bare, otherwise
// unconstrained-by-substitution type variable by binding it to that
// class's default type — Num to Int, Fractional to Float — per spec.md's
// numeric defaulting at generalization boundaries. A constraint whose
// type already resolves to something other than a bare TVar is dropped,
// since unification has settled it; a constraint on a class with no
// default is returned in remaining for the caller to report as unsolved.
// Grounded on the
// teacher's applyNumericDefaulting, simplified since vaisto's constraint
// set carries only class constraints (the teacher also threads row
// constraints through the same pass; vaisto's rows unify eagerly and
// never reach this stage unresolved).
func ApplyDefaulting(sub types.Subst, constraints []types.Constraint) (types.Subst, []types.Constraint, []DefaultingTrace) {
	defaulted := make(map[uint32]bool)
	var traces []DefaultingTrace
	var remaining []types.Constraint

	for _, con := range constraints {
		resolved := sub.Apply(con.Type)
		tv, ok := resolved.(*types.TVar)
		if !ok {
			// Already resolved to a concrete type by unification/instance
			// resolution elsewhere — nothing left for defaulting to do.
			continue
		}
		if defaulted[tv.ID] {
			continue
		}
		def := DefaultTypeFor(con.Class)
		if def == nil {
			remaining = append(remaining, con)
			continue
		}
		sub = sub.Bind(tv.ID, def)
		defaulted[tv.ID] = true
		traces = append(traces, DefaultingTrace{TVarID: tv.ID, Class: con.Class, Default: def})
	}

	return sub, remaining, traces
}

// FormatDefaultingTraces renders defaulting decisions for diagnostics,
// sorted by type-variable id for determinism.
func FormatDefaultingTraces(traces []DefaultingTrace) string {
	if len(traces) == 0 {
		return ""
	}
	sort.Slice(traces, func(i, j int) bool { return traces[i].TVarID < traces[j].TVarID })
	out := "numeric defaulting applied:\n"
	for _, t := range traces {
		out += fmt.Sprintf("  t%d: %s defaulted to %s\n", t.TVarID, t.Class, t.Default.String())
	}
	return out
}
