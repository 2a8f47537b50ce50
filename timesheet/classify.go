/*
classify.go - Day classification state machine

PURPOSE:
  Combines pairing output, daily target, the tolerance verdict and any
  manual override into the day's final status and bucket split. This used
  to be a nest of weekday/holiday conditionals; it is now a fixed priority
  order over a closed Status set:

  1. No punches: designated rest day -> DSR; holiday or non-working
     Sunday/Saturday -> FOLGA; otherwise FALTA with the full target as
     shortfall.
  2. Punches on a holiday or non-working Sunday: target is zero, all worked
     time is overtime-100, status EXTRA (FERIADO/FOLGA when nothing was
     actually worked).
  3. Punches on a non-working Saturday: same, FOLGA when zero worked.
  4. Ordinary working day: normal = min(worked, target); the tolerance
     verdict decides between NORMAL, EXTRA (credit beyond tolerance) and
     INCOMPLETO with alert (deduction beyond tolerance).

  A manual override replaces the computed status outright and clears the
  shortfall/alert per its own rules, but never touches worked time or the
  night figures.
*/
package timesheet

import (
	"fmt"
	"time"
)

// minLunchBreak is the statutory intrajourney break on full days.
const minLunchBreak = 60 * time.Minute

// DayInput is everything the classifier needs for one employee-day.
type DayInput struct {
	Employee EmployeeID
	Date     Date
	Pairing  PairingResult

	// Target is the effective target (zero on holidays / non-working
	// weekend days); Nominal is the schedule table value before zeroing,
	// used when a FALTA override needs the full-day figure.
	Target  time.Duration
	Nominal time.Duration

	Holiday     bool
	Premium     bool // holiday or non-working Sunday
	OffSaturday bool
	RestDay     bool

	Override  *Status
	Tolerance time.Duration
}

// DayOutcome is the classifier's verdict.
type DayOutcome struct {
	Status      Status
	Normal      time.Duration
	Shortfall   time.Duration
	Overtime50  time.Duration
	Overtime100 time.Duration
	Alert       bool
	Note        string
	Warnings    []string
}

// Classify runs the state machine for one day. Pure: same input, same
// outcome.
func Classify(in DayInput) DayOutcome {
	out := classifyComputed(in)
	out.Warnings = append(out.Warnings, sideEffectWarnings(in, &out)...)

	if in.Override != nil {
		applyOverride(in, *in.Override, &out)
	}
	return out
}

// classifyComputed is the no-override path, rules 1-4 in priority order.
func classifyComputed(in DayInput) DayOutcome {
	p := in.Pairing
	var out DayOutcome
	out.Note = p.Note

	// Rule 1: nothing punched.
	if !p.HasPunches() {
		switch {
		case in.RestDay:
			out.Status = StatusDSR
		case in.Holiday, in.Premium, in.OffSaturday:
			out.Status = StatusFolga
		default:
			out.Status = StatusFalta
			out.Shortfall = in.Target
		}
		return out
	}

	// Rules 2 and 3: worked time on a zero-target day is all 100%.
	if in.Premium || in.OffSaturday {
		out.Overtime100 = p.Worked
		switch {
		case p.Worked > 0:
			out.Status = StatusExtra
		case in.Holiday:
			out.Status = StatusFeriado
		default:
			out.Status = StatusFolga
		}
		return out
	}

	// Rule 4: ordinary working day.
	verdict := EvaluateTolerance(in.Target-p.Worked, in.Tolerance)
	if p.Worked > in.Target {
		out.Normal = in.Target
		if verdict.Tag == TagFullCredit {
			out.Overtime50 = verdict.Abonado
			out.Status = StatusExtra
		} else {
			// Excess within tolerance is forgiven, not overtime.
			out.Status = StatusNormal
		}
		return out
	}

	out.Normal = p.Worked
	out.Shortfall = in.Target - p.Worked
	if verdict.Tag == TagFullDeduction {
		out.Status = StatusIncompleto
		out.Alert = true
	} else {
		out.Status = StatusNormal
	}
	return out
}

// sideEffectWarnings accumulates the soft alerts the report surfaces.
func sideEffectWarnings(in DayInput, out *DayOutcome) []string {
	var warnings []string
	p := in.Pairing

	if p.Odd {
		warnings = append(warnings, fmt.Sprintf(
			"%s %s: número ímpar de batidas (%d)", in.Employee, in.Date, p.RawCount))
		out.Alert = true
	}
	if p.Orphans > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%s %s: %d batida(s) órfã(s) descartada(s)", in.Employee, in.Date, p.Orphans))
		out.Alert = true
	}
	if p.RawCount >= 4 && p.HasLunchGap && p.LunchGap < minLunchBreak {
		warnings = append(warnings, fmt.Sprintf(
			"%s %s: intervalo intrajornada de %d min (mínimo 60)",
			in.Employee, in.Date, int(p.LunchGap.Minutes())))
		out.Alert = true
	}
	return warnings
}

// applyOverride replaces the computed status. Worked duration and night
// figures are untouched; only shortfall/overtime/status/alert change.
func applyOverride(in DayInput, st Status, out *DayOutcome) {
	out.Status = st
	out.Alert = false

	switch st {
	case StatusAbono, StatusFolga, StatusFeriado, StatusDSR:
		out.Shortfall = 0

	case StatusAtestado:
		out.Shortfall = 0
		if !in.Pairing.HasPunches() {
			out.Note = "ATESTADO MÉDICO"
		}

	case StatusFalta:
		if !in.Pairing.HasPunches() {
			// Forced absence: the full schedule value for the weekday.
			out.Shortfall = in.Nominal
		}
	}
}
