/*
settings.go - Engine configuration with clamped defaults

PURPOSE:
  Everything the caller can tune in one struct. Numeric fields are validated
  and clamped to safe defaults by Normalize() - an out-of-range tolerance or
  weekly cap silently becomes the statutory default instead of raising,
  because a payroll preview must always be producible.

DEFAULTS:
  DailyTargetMinutes  480      (8h)
  ToleranceMinutes    10       (CLT art. 58 §1)
  BreakMinutes        120      (auto lunch split length)
  WeeklyCapMinutes    2640     (44h)
  SaturdayWorking     true
  SundayWorking       false
  NightShift          true
  AggregationMode     weekly
*/
package timesheet

import "time"

// AggregationMode selects how overtime buckets are reconciled.
type AggregationMode string

const (
	// AggregationWeekly reconciles overtime against the 44h weekly cap.
	AggregationWeekly AggregationMode = "weekly"
	// AggregationDaily sums each day's own buckets independently. Legacy
	// behaviour, does not reconcile against the weekly cap.
	AggregationDaily AggregationMode = "daily"
)

// RestWeekdayNone disables the designated weekly rest day.
const RestWeekdayNone = -1

// Settings carries all caller-tunable behaviour. The zero value is NOT
// usable; pass it through Normalize() first (the engine always does).
type Settings struct {
	// DailyTargetMinutes is the custom schedule minutes. Statutory schedules
	// ignore it; see Catalog.
	DailyTargetMinutes int

	// ToleranceMinutes is the daily all-or-nothing tolerance threshold.
	ToleranceMinutes int

	// AutoBreak inserts a midday break of BreakMinutes when a day has
	// exactly two punches straddling noon.
	AutoBreak    bool
	BreakMinutes int

	SaturdayWorking bool
	SundayWorking   bool

	// NightShift enables pre-dawn punch reordering and the night
	// differential calculation.
	NightShift bool

	// Holidays is the declared holiday list. Empty = company default table.
	Holidays []Date

	ScheduleID     string
	ScheduleAnchor string // cyclic anchor date, may be empty or unparsable

	WeeklyCapMinutes int
	AggregationMode  AggregationMode

	// RestWeekday designates a weekly rest day (DSR) as an int weekday
	// (0=Sunday .. 6=Saturday), or RestWeekdayNone.
	RestWeekday int
}

// DefaultSettings returns the company baseline: 8h weekdays, half Saturday,
// 10min tolerance, weekly 44h reconciliation.
func DefaultSettings() Settings {
	return Settings{
		DailyTargetMinutes: 480,
		ToleranceMinutes:   10,
		AutoBreak:          true,
		BreakMinutes:       120,
		SaturdayWorking:    true,
		SundayWorking:      false,
		NightShift:         true,
		ScheduleID:         DefaultScheduleID,
		WeeklyCapMinutes:   2640,
		AggregationMode:    AggregationWeekly,
		RestWeekday:        RestWeekdayNone,
	}
}

// Normalize clamps every numeric field into its safe range and fills the
// holiday table when none was supplied. It never fails.
func (s Settings) Normalize() Settings {
	if s.DailyTargetMinutes < 60 || s.DailyTargetMinutes > 720 {
		s.DailyTargetMinutes = 480
	}
	if s.ToleranceMinutes < 0 || s.ToleranceMinutes > 60 {
		s.ToleranceMinutes = 10
	}
	if s.BreakMinutes < 15 || s.BreakMinutes > 240 {
		s.BreakMinutes = 120
	}
	if s.WeeklyCapMinutes < 600 || s.WeeklyCapMinutes > 4320 {
		s.WeeklyCapMinutes = 2640
	}
	if s.AggregationMode != AggregationDaily {
		s.AggregationMode = AggregationWeekly
	}
	if s.RestWeekday < 0 || s.RestWeekday > 6 {
		s.RestWeekday = RestWeekdayNone
	}
	if s.ScheduleID == "" {
		s.ScheduleID = DefaultScheduleID
	}
	if len(s.Holidays) == 0 {
		s.Holidays = NationalHolidays2025()
	}
	return s
}

// Derived accessors keep call sites readable.
func (s Settings) Tolerance() time.Duration   { return time.Duration(s.ToleranceMinutes) * time.Minute }
func (s Settings) BreakLength() time.Duration { return time.Duration(s.BreakMinutes) * time.Minute }
func (s Settings) CustomTarget() time.Duration {
	return time.Duration(s.DailyTargetMinutes) * time.Minute
}
func (s Settings) WeeklyCap() time.Duration {
	return time.Duration(s.WeeklyCapMinutes) * time.Minute
}

// restsOn reports whether the weekday is the designated DSR day.
func (s Settings) restsOn(w time.Weekday) bool {
	return s.RestWeekday != RestWeekdayNone && time.Weekday(s.RestWeekday) == w
}
