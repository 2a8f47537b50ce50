/*
Package timesheet converts raw time-clock punches into CLT payroll figures:
daily worked time, shortfall, overtime at 50% and 100%, night-shift
differential, and weekly-aggregated totals.

PURPOSE:
  This package is the computation core. It is a deterministic, stateless
  function from (punch events, settings, manual overrides) to per-day records
  and per-employee summaries. It never touches the network, the filesystem,
  or a database; ingestion and spreadsheet export live in their own packages.

KEY CONCEPTS IN THIS FILE (types.go):
  - PunchEvent: one raw clock reading (employee, date, time-of-day)
  - WorkInterval: an ordered (start, end) pair derived from punches
  - DayRecord: the per-employee-per-day payroll row
  - Status: the closed set of day classifications
  - Report / EmployeeSummary: the final output units

DESIGN PRINCIPLES:
  1. Determinism: identical input always yields identical output
  2. Best effort: bad records degrade to warnings, never abort the run
  3. Type safety: strong typing for employee IDs and statuses
  4. Durations everywhere: time.Duration for all worked/target arithmetic;
     decimal.Decimal only where statutory fractions appear (night hour)

SEE ALSO:
  - pairing.go: punches -> work intervals
  - schedule.go: daily target resolution
  - classify.go: day status state machine
  - week.go: 44h weekly aggregation
  - engine.go: orchestration
*/
package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// EmployeeID identifies an employee. The clock export carries no numeric IDs,
// so this is the name token extracted from the punch line.
type EmployeeID string

// =============================================================================
// PUNCH EVENT - Raw, immutable input
// =============================================================================

// PunchEvent is a single clock reading as produced by the ingestion
// collaborator. Events for one day arrive in no particular order.
type PunchEvent struct {
	Employee EmployeeID
	Date     Date
	Clock    ClockTime
}

// =============================================================================
// WORK INTERVAL - Derived, never persisted
// =============================================================================

// WorkInterval is an ordered (start, end) pair with End >= Start after
// midnight-crossing adjustment. The displayed exit time keeps the punched
// time-of-day even when End rolled to the next calendar day.
type WorkInterval struct {
	Start time.Time
	End   time.Time
}

func (w WorkInterval) Duration() time.Duration { return w.End.Sub(w.Start) }

// =============================================================================
// STATUS - Closed day-classification set
// =============================================================================

// Status is the final classification of one employee-day.
type Status string

const (
	StatusNormal     Status = "NORMAL"
	StatusExtra      Status = "EXTRA"
	StatusIncompleto Status = "INCOMPLETO"
	StatusFalta      Status = "FALTA"
	StatusFolga      Status = "FOLGA"
	StatusFeriado    Status = "FERIADO"
	StatusDSR        Status = "DSR"
	StatusAbono      Status = "ABONO"
	StatusAtestado   Status = "ATESTADO"
)

// OverrideStatuses is the subset a manual correction may carry.
var OverrideStatuses = map[Status]bool{
	StatusAbono:    true,
	StatusAtestado: true,
	StatusFolga:    true,
	StatusFeriado:  true,
	StatusDSR:      true,
	StatusFalta:    true,
}

// OverrideKey addresses one employee-day in the override map.
type OverrideKey struct {
	Employee EmployeeID
	Date     Date
}

// =============================================================================
// DAY RECORD - One row of the final report
// =============================================================================

// DayRecord is the per-day payroll row. Created fresh on every computation
// and never mutated after assembly; overrides are applied during creation.
type DayRecord struct {
	Employee EmployeeID
	Date     Date
	Weekday  time.Weekday

	// Up to four punch slots as displayed on the report. Nil = empty slot.
	Entry1 *ClockTime
	Exit1  *ClockTime
	Entry2 *ClockTime
	Exit2  *ClockTime

	Target time.Duration
	Worked time.Duration

	// Night differential is informational and never added to Worked.
	NightTime    time.Duration
	NightReduced decimal.Decimal // NightTime scaled by the 60/52.5 legal hour

	Normal      time.Duration
	Shortfall   time.Duration
	Overtime50  time.Duration
	Overtime100 time.Duration

	Status Status
	Alert  bool
	Note   string
}

// =============================================================================
// REPORT - Final output unit
// =============================================================================

// EmployeeSummary totals one employee over the requested range.
type EmployeeSummary struct {
	Employee          EmployeeID
	TotalNormal       time.Duration
	TotalShortfall    time.Duration
	TotalOvertime50   time.Duration
	TotalOvertime100  time.Duration
	TotalNightTime    time.Duration
	TotalNightReduced decimal.Decimal

	// NetBalance = overtime - shortfall. Informative only: the engine makes
	// no pay or compensatory-time-off decisions.
	NetBalance  time.Duration
	Informative bool

	Days []DayRecord
}

// Report is everything the export collaborator needs: day rows sorted by
// (employee, date), one summary per employee, and the soft-failure warnings
// accumulated along the way.
type Report struct {
	Days      []DayRecord
	Summaries []EmployeeSummary
	Warnings  []string
}
