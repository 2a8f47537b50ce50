/*
week.go - ISO-week overtime aggregation (44h rule)

PURPOSE:
  CLT caps the regular week at 44 hours. Time beyond the cap is overtime at
  50%, EXCEPT time already owed at 100% (Sunday/holiday work) - the same
  minute must never be paid in both buckets. Per ISO week:

    excess       = max(0, total worked - cap)
    overtime-100 = worked already classified as Sunday/holiday
    overtime-50  = max(0, excess - overtime-100), capped at the week's
                   regular-day worked total

  Subtracting the legally-privileged 100% bucket from the raw excess BEFORE
  deriving the 50% bucket is what prevents double counting.

SCOPE:
  One accumulator per employee, built while scanning that employee's days
  in date order, discarded after producing the totals. Nothing is shared
  across employees.
*/
package timesheet

import (
	"fmt"
	"time"
)

// WeekKey identifies one ISO week.
type WeekKey struct {
	Year int
	Week int
}

func (k WeekKey) String() string { return fmt.Sprintf("%d-W%02d", k.Year, k.Week) }

// WeekBucket accumulates one employee's worked time for one ISO week.
type WeekBucket struct {
	Total   time.Duration // all worked time
	Premium time.Duration // worked time already in the 100% bucket
	Regular time.Duration // worked time on regular weekdays/Saturdays
}

// weeklyAccumulator is scoped to a single employee's processing.
type weeklyAccumulator struct {
	cap     time.Duration
	buckets map[WeekKey]*WeekBucket
	order   []WeekKey
}

func newWeeklyAccumulator(cap time.Duration) *weeklyAccumulator {
	return &weeklyAccumulator{cap: cap, buckets: make(map[WeekKey]*WeekBucket)}
}

// add folds one day record in. Days must arrive in date order so the week
// listing stays deterministic.
func (a *weeklyAccumulator) add(day *DayRecord) {
	year, week := day.Date.ISOWeek()
	key := WeekKey{Year: year, Week: week}
	b, ok := a.buckets[key]
	if !ok {
		b = &WeekBucket{}
		a.buckets[key] = b
		a.order = append(a.order, key)
	}
	b.Total += day.Worked
	b.Premium += day.Overtime100
	b.Regular += day.Worked - day.Overtime100
}

// totals derives the employee's overtime split and over-cap warnings.
func (a *weeklyAccumulator) totals(employee EmployeeID) (ot50, ot100 time.Duration, warnings []string) {
	for _, key := range a.order {
		b := a.buckets[key]

		excess := b.Total - a.cap
		if excess < 0 {
			excess = 0
		}

		week50 := excess - b.Premium
		if week50 < 0 {
			week50 = 0
		}
		// Never attribute more 50% overtime than regular-day work exists.
		if week50 > b.Regular {
			week50 = b.Regular
		}

		ot50 += week50
		ot100 += b.Premium

		if b.Total > a.cap {
			warnings = append(warnings, fmt.Sprintf(
				"%s semana %s: total trabalhado %s excede o limite de %s",
				employee, key, formatHM(b.Total), formatHM(a.cap)))
		}
	}
	return ot50, ot100, warnings
}

// formatHM renders a duration as "44h00" for warning text.
func formatHM(d time.Duration) string {
	return fmt.Sprintf("%dh%02d", int(d.Hours()), int(d.Minutes())%60)
}
