// Package diagnostic is vaisto's structured error type: a three-digit
// code, message, primary span, optional expected/actual types and hint,
// rendered as a compact source excerpt with a caret underline (spec.md
// §4.7). Grounded on the teacher's internal/errors (Report/ReportError,
// the Schema/Code/Phase/Message/Data shape and its per-phase code
// taxonomy), adapted from the teacher's JSON-schema-first design (every
// Report round-trips through encoding/json for an external AI-facing
// consumer) to vaisto's plain Go error value plus a human-facing
// terminal/LSP renderer — spec.md's diagnostic contract is a rendered
// string and an LSP Diagnostic, not a wire schema of its own.
package diagnostic

// Code is a three-digit error code in vaisto's E-prefixed taxonomy
// (spec.md §7): E001-E099 type errors, E100-E199 name resolution,
// E200-E299 syntax/shape, E300-E399 process/concurrency, E9xx internal.
type Code string

const (
	// Type errors (E001-E099).
	ETypeMismatch     Code = "E001"
	EListHeterogenous Code = "E002"
	EBranchDivergence Code = "E003"
	EReturnType       Code = "E004"
	EArity            Code = "E005"
	EInvalidOperand   Code = "E006"
	EConsMismatch     Code = "E007"
	ENotAList         Code = "E008"
	ENotAFunction     Code = "E009"
	EHigherOrderArity Code = "E010"
	ENonBoolPredicate Code = "E011"
	ENonExhaustive    Code = "E012"
	ENoInstance       Code = "E013"
	EConstraintDepth  Code = "E014"
	EBadDeriving      Code = "E015"

	// Name resolution errors (E100-E199).
	EUndefinedVariable Code = "E100"
	EUnknownFunction   Code = "E101"
	EUnknownType       Code = "E102"
	EUnknownProcess    Code = "E103"
	EOverlappingClass  Code = "E104"

	// Syntax/shape errors (E200-E299), surfaced from the parser.
	EMalformedDefn Code = "E200"
	EParseError    Code = "E201"

	// Process/concurrency errors (E300-E399).
	EInvalidMessage Code = "E300"
	ESendToNonPid   Code = "E301"

	// Internal errors (E9xx) — should not occur; treated as bugs, per
	// spec.md §7: "Runtime exceptions from any internal component are
	// caught at the CLI boundary, translated to E9xx ... and prevented
	// from leaking stack traces."
	EInternal Code = "E900"
)
