/*
errors.go - Error types for the timesheet engine

PURPOSE:
  The engine distinguishes three failure classes:
  1. Input defects  - bad dates/times/settings: recovered with a documented
     default and, where user-relevant, a warning. Never abort.
  2. Data absence   - a day with no punches is a valid state (FALTA/FOLGA),
     not an error.
  3. Structural failure - no employees or no valid dates at all: there is
     nothing to compute, reported to the caller as a definitive error.

  Only class 3 surfaces as an error value; classes 1 and 2 are folded into
  the report itself.
*/
package timesheet

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNoData is returned when the input contains no employees or no valid
	// punch dates at all. Structural: nothing meaningful can be computed.
	ErrNoData = errors.New("no valid punch data to compute")

	// ErrUnknownStatus is returned when an override carries a status outside
	// the allowed set.
	ErrUnknownStatus = errors.New("unknown override status")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ParseError reports an unparsable field value. Callers generally downgrade
// it to a warning rather than propagate it.
type ParseError struct {
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparsable %s: %q", e.Field, e.Value)
}

// OverrideError reports a rejected manual override.
type OverrideError struct {
	Employee EmployeeID
	Date     Date
	Status   Status
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("invalid override %q for %s on %s", e.Status, e.Employee, e.Date)
}

func (e *OverrideError) Unwrap() error { return ErrUnknownStatus }
