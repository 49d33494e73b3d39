package types

import (
	"fmt"
	"sort"
	"strings"
)

// TypeErrorKind classifies a TypeCheckError for the diagnostic engine's
// code assignment (E0xx for type errors, per the diagnostic package).
type TypeErrorKind string

const (
	TypeMismatchError       TypeErrorKind = "type_mismatch"
	RowMismatchError        TypeErrorKind = "row_mismatch"
	OccursCheckErrorKind    TypeErrorKind = "occurs_check"
	UnboundVariableError    TypeErrorKind = "unbound_variable"
	ArityMismatchError      TypeErrorKind = "arity_mismatch"
	NonExhaustiveMatchError TypeErrorKind = "non_exhaustive_match"
	UnsolvedConstraintError TypeErrorKind = "unsolved_constraint"
)

// TypeCheckError is a detailed, diagnostic-ready type error: the
// diagnostic package wraps these with a source location and renders them
// with the header/excerpt/caret format; this package only ever produces
// the Kind/Expected/Actual/Message/Suggestion content.
type TypeCheckError struct {
	Kind       TypeErrorKind
	Path       []string // record field / pattern path, for nested mismatches
	Expected   Type
	Actual     Type
	Message    string
	Suggestion string
}

func (e *TypeCheckError) Error() string {
	var parts []string
	if len(e.Path) > 0 {
		parts = append(parts, fmt.Sprintf("at %s", strings.Join(e.Path, ".")))
	}
	parts = append(parts, e.Message)
	if e.Expected != nil && e.Actual != nil {
		parts = append(parts, fmt.Sprintf("\n  expected: %s\n  actual:   %s", e.Expected, e.Actual))
	}
	if e.Suggestion != "" {
		parts = append(parts, fmt.Sprintf("\n  suggestion: %s", e.Suggestion))
	}
	return strings.Join(parts, ": ")
}

// NewTypeMismatchError creates a plain type mismatch error.
func NewTypeMismatchError(expected, actual Type, path []string) *TypeCheckError {
	return &TypeCheckError{
		Kind:     TypeMismatchError,
		Path:     path,
		Expected: expected,
		Actual:   actual,
		Message:  "type mismatch",
	}
}

// NewRowMismatchError builds a detailed record row error naming exactly
// which fields are missing, extra, or mismatched in type, rather than
// just reporting the two record types and leaving the reader to diff
// them by hand.
func NewRowMismatchError(expected, actual *Row, path []string) *TypeCheckError {
	missing := make([]string, 0)
	for k := range expected.Labels {
		if _, ok := actual.Labels[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)

	extra := make([]string, 0)
	typeMismatches := make([]string, 0)
	for k, actualType := range actual.Labels {
		if expectedType, ok := expected.Labels[k]; ok {
			if !expectedType.Equals(actualType) {
				fieldPath := append(append([]string{}, path...), k)
				typeMismatches = append(typeMismatches,
					fmt.Sprintf("%s: expected %s, found %s", strings.Join(fieldPath, "."), expectedType, actualType))
			}
		} else {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	message := "record row mismatch"
	suggestions := make([]string, 0)

	if len(missing) > 0 {
		message = fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))
		suggestions = append(suggestions, fmt.Sprintf("add fields: %s", strings.Join(missing, ", ")))
	}
	if len(extra) > 0 {
		if len(missing) > 0 {
			message += fmt.Sprintf("; has extra fields: %s", strings.Join(extra, ", "))
		} else {
			message = fmt.Sprintf("has extra fields: %s", strings.Join(extra, ", "))
		}
		if expected.Tail == nil {
			suggestions = append(suggestions, "this record type doesn't allow extra fields")
		}
	}
	if len(typeMismatches) > 0 {
		if len(missing) > 0 || len(extra) > 0 {
			message += "; "
		}
		message += fmt.Sprintf("field type mismatches: %s", strings.Join(typeMismatches, ", "))
	}

	return &TypeCheckError{
		Kind:       RowMismatchError,
		Path:       path,
		Message:    message,
		Suggestion: strings.Join(suggestions, "; "),
	}
}

// NewOccursCheckError reports an attempt to build an infinite type.
func NewOccursCheckError(varName string, inType Type) *TypeCheckError {
	return &TypeCheckError{
		Kind:       OccursCheckErrorKind,
		Message:    fmt.Sprintf("infinite type: %s occurs in %s", varName, inType),
		Suggestion: "this would create an infinite type; check for a recursive definition missing a base case",
	}
}

// NewUnboundVariableError reports a reference to an undeclared name. The
// diagnostic package layers the Jaro-Winkler "did you mean" suggestion
// on top using the enclosing scope's bindings; this error only carries
// the bare fact.
func NewUnboundVariableError(name string, path []string) *TypeCheckError {
	return &TypeCheckError{
		Kind:    UnboundVariableError,
		Path:    path,
		Message: fmt.Sprintf("unbound variable: %s", name),
	}
}

// NewArityMismatchError reports a function call or constructor pattern
// applied with the wrong number of arguments.
func NewArityMismatchError(expected, actual int, path []string) *TypeCheckError {
	return &TypeCheckError{
		Kind:    ArityMismatchError,
		Path:    path,
		Message: fmt.Sprintf("expects %d argument(s), but %d provided", expected, actual),
	}
}

// NewNonExhaustiveMatchError reports a match expression that doesn't
// cover every constructor of its scrutinee's type. missing names the
// uncovered constructors (or "_" style patterns) the usefulness
// algorithm found.
func NewNonExhaustiveMatchError(typeName string, missing []string) *TypeCheckError {
	return &TypeCheckError{
		Kind:       NonExhaustiveMatchError,
		Message:    fmt.Sprintf("non-exhaustive match on %s: missing %s", typeName, strings.Join(missing, ", ")),
		Suggestion: fmt.Sprintf("add a clause for %s, or a wildcard catch-all", strings.Join(missing, ", ")),
	}
}

// NewUnsolvedConstraintError reports a type class constraint that
// couldn't be resolved to any instance, with a class-specific hint for
// the handful of classes vaisto ships deriving support for.
func NewUnsolvedConstraintError(className string, typ Type, path []string) *TypeCheckError {
	var suggestion string
	switch className {
	case "Eq":
		suggestion = fmt.Sprintf("%s needs an Eq instance; add 'deriving [Eq]' if its fields are all comparable", typ)
	case "Show":
		suggestion = fmt.Sprintf("%s needs a Show instance; automatic deriving only covers nullary constructors", typ)
	case "Ord":
		suggestion = fmt.Sprintf("%s needs an Ord instance for ordering operations (<, >, <=, >=)", typ)
	default:
		suggestion = fmt.Sprintf("%s needs an instance of %s", typ, className)
	}
	return &TypeCheckError{
		Kind:       UnsolvedConstraintError,
		Path:       path,
		Message:    fmt.Sprintf("unsolved constraint: %s %s", className, typ),
		Suggestion: suggestion,
	}
}

// ErrorList aggregates multiple type errors for non-fatal accumulation.
type ErrorList []*TypeCheckError

func (e ErrorList) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Error()
	}
	parts := []string{fmt.Sprintf("%d type errors:", len(e))}
	for i, err := range e {
		parts = append(parts, fmt.Sprintf("\n[%d] %s", i+1, err.Error()))
	}
	return strings.Join(parts, "\n")
}
