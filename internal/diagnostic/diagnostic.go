package diagnostic

import (
	"fmt"

	"github.com/vaisto-lang/vaisto/internal/ast"
)

// Diagnostic is one structured error (spec.md §4.7): a code, a message,
// a primary span, and whatever extra context the site producing it had
// on hand — the expected/actual types of a mismatch, a hint (e.g. a
// typo suggestion or the accepted-message list of a PID), and any
// related spans (a missing-constructor witness points back at the
// `match`, a redeclaration points back at the first declaration).
type Diagnostic struct {
	Code     Code
	Message  string
	Primary  ast.Loc
	Expected string
	Actual   string
	Hint     string
	Related  []ast.Loc
}

// Error implements the error interface so a Diagnostic can be returned
// and accumulated anywhere plain Go code expects an error.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// New builds a bare diagnostic with no type/hint context.
func New(code Code, loc ast.Loc, format string, args ...any) *Diagnostic {
	return &Diagnostic{Code: code, Message: fmt.Sprintf(format, args...), Primary: loc}
}

// WithTypes attaches the expected/actual type strings a mismatch
// diagnostic reports alongside its message.
func (d *Diagnostic) WithTypes(expected, actual string) *Diagnostic {
	d.Expected = expected
	d.Actual = actual
	return d
}

// WithHint attaches a one-line suggestion (a typo correction, an
// accepted-message list) rendered under the caret.
func (d *Diagnostic) WithHint(format string, args ...any) *Diagnostic {
	d.Hint = fmt.Sprintf(format, args...)
	return d
}

// WithRelated attaches secondary spans the renderer prints after the
// primary excerpt (e.g. "first declared here").
func (d *Diagnostic) WithRelated(locs ...ast.Loc) *Diagnostic {
	d.Related = append(d.Related, locs...)
	return d
}
