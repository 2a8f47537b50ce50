/*
schedule.go - Schedule catalog and daily target resolution

PURPOSE:
  Maps (schedule id, calendar date) to the target worked duration for that
  date. Three schedule shapes exist, as a closed tagged variant:

    FixedWeekly  - a per-weekday table (the common case)
    Cyclic       - an N-day rotation indexed from an anchor date (12x36,
                   work-one/rest-one rosters)
    Custom       - caller-supplied daily minutes, default 480

  Statutory schedules pin their minutes and ignore any caller-supplied
  custom value, so a misconfigured upload can never relax a legal minimum.

DEGRADATION:
  - Unknown schedule id        -> default 44h schedule, warning
  - Missing/unparsable anchor  -> flat 8h target, warning
  Both degrade the run, never fail it.

ZEROING:
  The resolver forces the target to zero on declared holidays and on
  Sundays/Saturdays not designated as working, regardless of the schedule
  table: a non-working day must never appear to have a shortfall.
*/
package timesheet

import (
	"fmt"
	"time"
)

// =============================================================================
// SCHEDULE DEFINITION - Closed tagged variant
// =============================================================================

type ScheduleKind string

const (
	KindFixedWeekly ScheduleKind = "fixed_weekly"
	KindCyclic      ScheduleKind = "cyclic"
	KindCustom      ScheduleKind = "custom"
)

// ScheduleDefinition is one immutable catalog entry.
type ScheduleDefinition struct {
	ID   string
	Name string
	Kind ScheduleKind

	// KindFixedWeekly: target per weekday, indexed by time.Weekday.
	Weekdays [7]time.Duration

	// KindCyclic: target per cycle offset; the cycle length is len(Cycle).
	Cycle []time.Duration

	// Statutory schedules ignore the caller's custom minutes outright.
	Statutory bool
}

// targetOn returns the schedule's nominal table value for a date, before any
// holiday/weekend zeroing.
func (s ScheduleDefinition) targetOn(d Date, anchor Date, anchorOK bool, custom time.Duration) time.Duration {
	switch s.Kind {
	case KindFixedWeekly:
		return s.Weekdays[d.Weekday()]

	case KindCyclic:
		if !anchorOK || len(s.Cycle) == 0 {
			// Degraded: flat 8h. The resolver already warned.
			return 8 * time.Hour
		}
		offset := d.DaysSince(anchor) % len(s.Cycle)
		if offset < 0 {
			offset += len(s.Cycle)
		}
		return s.Cycle[offset]

	case KindCustom:
		switch d.Weekday() {
		case time.Sunday:
			return 0
		case time.Saturday:
			return custom / 2
		default:
			return custom
		}

	default:
		return 8 * time.Hour
	}
}

// =============================================================================
// CATALOG
// =============================================================================

const (
	// DefaultScheduleID is the baseline 44h week: 8h Mon-Fri, 4h Saturday.
	DefaultScheduleID = "padrao-44h"

	// ScheduleCommerce6x1 is the statutory 6-day commerce week: 440min
	// (7h20) Mon-Sat. Pinned.
	ScheduleCommerce6x1 = "6-day-commerce"

	// Schedule12x36 is the statutory 12h-on/36h-off rotation. Pinned.
	Schedule12x36 = "12x36"

	// ScheduleAlternating is the work-one-day/rest-one-day rotation.
	ScheduleAlternating = "dia-sim-dia-nao"

	// ScheduleCustom applies the caller's daily minutes Mon-Fri and half of
	// them on Saturday.
	ScheduleCustom = "personalizada"
)

// Catalog is the static, read-only schedule table. Safe for concurrent use.
type Catalog struct {
	byID map[string]ScheduleDefinition
}

// NewCatalog builds the company catalog.
func NewCatalog() *Catalog {
	fixed := func(weekday, saturday time.Duration) [7]time.Duration {
		var w [7]time.Duration
		for wd := time.Monday; wd <= time.Friday; wd++ {
			w[wd] = weekday
		}
		w[time.Saturday] = saturday
		return w
	}

	defs := []ScheduleDefinition{
		{
			ID:       DefaultScheduleID,
			Name:     "Padrão 44h (8h seg-sex, 4h sáb)",
			Kind:     KindFixedWeekly,
			Weekdays: fixed(8*time.Hour, 4*time.Hour),
		},
		{
			ID:        ScheduleCommerce6x1,
			Name:      "Comércio 6x1 (7h20 seg-sáb)",
			Kind:      KindFixedWeekly,
			Weekdays:  fixed(440*time.Minute, 440*time.Minute),
			Statutory: true,
		},
		{
			ID:        Schedule12x36,
			Name:      "Plantão 12x36",
			Kind:      KindCyclic,
			Cycle:     []time.Duration{12 * time.Hour, 0},
			Statutory: true,
		},
		{
			ID:    ScheduleAlternating,
			Name:  "Dia sim, dia não (8h)",
			Kind:  KindCyclic,
			Cycle: []time.Duration{8 * time.Hour, 0},
		},
		{
			ID:   ScheduleCustom,
			Name: "Jornada personalizada",
			Kind: KindCustom,
		},
	}

	byID := make(map[string]ScheduleDefinition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return &Catalog{byID: byID}
}

// Lookup returns the definition for id, or the default definition when the
// id is unknown.
func (c *Catalog) Lookup(id string) (ScheduleDefinition, bool) {
	if def, ok := c.byID[id]; ok {
		return def, true
	}
	return c.byID[DefaultScheduleID], false
}

// List returns all definitions in a stable order (by id).
func (c *Catalog) List() []ScheduleDefinition {
	ids := []string{DefaultScheduleID, ScheduleCommerce6x1, Schedule12x36, ScheduleAlternating, ScheduleCustom}
	out := make([]ScheduleDefinition, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.byID[id])
	}
	return out
}

// =============================================================================
// TARGET RESOLVER - Schedule bound to one run's settings
// =============================================================================

// TargetResolver answers target-duration questions for one computation run.
// Built once per run; read-only afterwards.
type TargetResolver struct {
	def        ScheduleDefinition
	anchor     Date
	anchorOK   bool
	custom     time.Duration
	holidays   HolidaySet
	sundayOn   bool
	saturdayOn bool
}

// NewTargetResolver binds the catalog to the run's settings. Degradations
// (unknown id, bad anchor) are reported as warnings, never as errors.
func NewTargetResolver(catalog *Catalog, s Settings) (*TargetResolver, []string) {
	var warnings []string

	def, known := catalog.Lookup(s.ScheduleID)
	if !known {
		warnings = append(warnings, fmt.Sprintf(
			"jornada %q desconhecida; usando %s", s.ScheduleID, DefaultScheduleID))
	}

	r := &TargetResolver{
		def:        def,
		custom:     s.CustomTarget(),
		holidays:   NewHolidaySet(s.Holidays),
		sundayOn:   s.SundayWorking,
		saturdayOn: s.SaturdayWorking,
	}

	if def.Kind == KindCyclic {
		anchor, err := ParseDate(s.ScheduleAnchor)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"jornada %s sem data de referência válida (%q); usando 8h fixas",
				def.ID, s.ScheduleAnchor))
		} else {
			r.anchor = anchor
			r.anchorOK = true
		}
	}

	return r, warnings
}

// Definition exposes the bound schedule.
func (r *TargetResolver) Definition() ScheduleDefinition { return r.def }

// IsHoliday reports whether the date is in the declared holiday table.
func (r *TargetResolver) IsHoliday(d Date) bool { return r.holidays.Contains(d) }

// IsPremium reports whether worked time on this date goes straight to the
// 100% bucket: a holiday, or a Sunday not designated as working.
func (r *TargetResolver) IsPremium(d Date) bool {
	if r.IsHoliday(d) {
		return true
	}
	return d.Weekday() == time.Sunday && !r.sundayOn
}

// IsOffSaturday reports a Saturday the schedule/settings mark non-working.
func (r *TargetResolver) IsOffSaturday(d Date) bool {
	if d.Weekday() != time.Saturday {
		return false
	}
	return !r.saturdayOn || r.Nominal(d) == 0
}

// Nominal returns the schedule table value for the date, before zeroing.
// Statutory schedules ignore the caller's custom minutes here.
func (r *TargetResolver) Nominal(d Date) time.Duration {
	custom := r.custom
	if r.def.Statutory {
		custom = 0
	}
	return r.def.targetOn(d, r.anchor, r.anchorOK, custom)
}

// Target returns the effective target for the date: the nominal value, or
// zero on holidays and non-working Sundays/Saturdays.
func (r *TargetResolver) Target(d Date) time.Duration {
	if r.IsPremium(d) {
		return 0
	}
	if r.IsOffSaturday(d) {
		return 0
	}
	return r.Nominal(d)
}
