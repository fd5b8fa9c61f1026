package formula

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Lookup failures.
var (
	ErrUnknownCategory = eris.New("formula: unknown category")
	ErrUnknownFormula  = eris.New("formula: unknown formula")
	ErrUnknownScenario = eris.New("formula: unknown scenario")
)

// UnsolvableError reports that a formula has no rearrangement for the blank
// field, or that an input the rearrangement needs is also blank.
type UnsolvableError struct {
	Formula string
	Field   string
	Missing string // blank input, if any
	Term    string // composite term that could not be formed, if any
}

func (e *UnsolvableError) Error() string {
	switch {
	case e.Term != "":
		return fmt.Sprintf("formula %s: cannot solve for %s without %s", e.Formula, e.Field, e.Term)
	case e.Missing != "":
		return fmt.Sprintf("formula %s: cannot solve for %s while %s is blank", e.Formula, e.Field, e.Missing)
	default:
		return fmt.Sprintf("formula %s: no rearrangement for %s", e.Formula, e.Field)
	}
}

// termError marks a derived term whose inputs are not all present.
type termError struct {
	term string
}

func (e *termError) Error() string {
	return e.term + " is undefined"
}

func errTermUndefined(term string) error {
	return &termError{term: term}
}

// DegenerateError reports inputs that make a defined rearrangement invalid:
// a zero divisor, a non-positive value where positivity is required, or
// equal values where they must differ.
type DegenerateError struct {
	Reason string
	Fields []string // ids of the variables responsible, when known
}

func (e *DegenerateError) Error() string {
	return e.Reason
}

func degenerate(reason string, fields ...string) *DegenerateError {
	return &DegenerateError{Reason: reason, Fields: fields}
}

// nonZero fails when divisor is zero. label names the term in the message.
func nonZero(divisor float64, label string, fields ...string) error {
	if isZero(divisor) {
		return degenerate(fmt.Sprintf("Cannot divide by zero: %s is zero.", label), fields...)
	}
	return nil
}
