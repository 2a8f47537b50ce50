/*
engine.go - Computation orchestration

PURPOSE:
  Engine.Run is the single entry point: (punch events, settings, overrides)
  -> Report. It is deterministic and stateless; the only shared state is
  the read-only schedule catalog.

FLOW:
  1. Normalize settings (clamp every numeric field).
  2. Group punches by employee and date; derive the requested range from
     the earliest and latest punch dates.
  3. Bind the schedule catalog to the run's settings (degrading to defaults
     with warnings where configuration is broken).
  4. Process employees in parallel - they are mutually independent, each
     worker owns its own accumulator and writes to its own result slot.
  5. Assemble the report sorted by (employee, date).

  Structural failure (no employees / no valid dates) is the only error;
  everything else degrades into the warning list.
*/
package timesheet

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Input is one complete computation request.
type Input struct {
	Punches   []PunchEvent
	Settings  Settings
	Overrides map[OverrideKey]Status
}

// Engine computes payroll figures. Safe for concurrent use: the catalog is
// read-only and Run keeps all mutable state on its own stack.
type Engine struct {
	catalog *Catalog
	log     *zap.Logger
}

// NewEngine builds an engine with the company schedule catalog. A nil
// logger disables logging.
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: NewCatalog(), log: log}
}

// Catalog exposes the schedule table (for API listing).
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Run executes one computation. Returns ErrNoData when the input contains
// nothing computable; any lesser defect becomes a warning in the report.
func (e *Engine) Run(in Input) (*Report, error) {
	settings := in.Settings.Normalize()

	byEmployee, first, last := groupPunches(in.Punches)
	if len(byEmployee) == 0 {
		return nil, ErrNoData
	}

	resolver, warnings := NewTargetResolver(e.catalog, settings)
	for _, w := range warnings {
		e.log.Warn("configuração degradada", zap.String("detalhe", w))
	}

	overrides, overrideWarnings := validOverrides(in.Overrides)
	warnings = append(warnings, overrideWarnings...)

	employees := make([]EmployeeID, 0, len(byEmployee))
	for emp := range byEmployee {
		employees = append(employees, emp)
	}
	sort.Slice(employees, func(a, b int) bool { return employees[a] < employees[b] })

	// Employees are independent: fan out, one result slot per worker.
	results := make([]employeeResult, len(employees))
	var wg sync.WaitGroup
	for i, emp := range employees {
		wg.Add(1)
		go func(slot int, emp EmployeeID) {
			defer wg.Done()
			results[slot] = processEmployee(emp, byEmployee[emp], first, last, settings, resolver, overrides)
		}(i, emp)
	}
	wg.Wait()

	return assembleReport(results, warnings), nil
}

// =============================================================================
// PER-EMPLOYEE PROCESSING
// =============================================================================

type employeeResult struct {
	summary  EmployeeSummary
	warnings []string
}

// processEmployee walks every calendar date in [first, last] for one
// employee. Owns all of its mutable state; never touches another worker's.
func processEmployee(
	emp EmployeeID,
	punches map[Date][]ClockTime,
	first, last Date,
	settings Settings,
	resolver *TargetResolver,
	overrides map[OverrideKey]Status,
) employeeResult {

	opts := PairingOptions{
		NightShift:  settings.NightShift,
		AutoBreak:   settings.AutoBreak,
		BreakLength: settings.BreakLength(),
	}

	res := employeeResult{summary: EmployeeSummary{
		Employee:          emp,
		Informative:       true,
		TotalNightReduced: decimal.Zero,
	}}
	acc := newWeeklyAccumulator(settings.WeeklyCap())

	for d := first; d.BeforeOrEqual(last); d = d.AddDays(1) {
		rec := computeDay(emp, d, punches[d], opts, settings, resolver, overrides, &res)
		acc.add(&rec)
		res.summary.Days = append(res.summary.Days, rec)
	}

	tallySummary(&res.summary, acc, settings.AggregationMode, &res.warnings)
	return res
}

// computeDay builds one DayRecord: pairing, night differential, target
// resolution, classification, override application.
func computeDay(
	emp EmployeeID,
	d Date,
	clocks []ClockTime,
	opts PairingOptions,
	settings Settings,
	resolver *TargetResolver,
	overrides map[OverrideKey]Status,
	res *employeeResult,
) DayRecord {

	pairing := PairPunches(d, clocks, opts)

	var night NightResult
	night.ReducedMinutes = decimal.Zero
	if settings.NightShift {
		for _, iv := range pairing.Intervals {
			r := NightDifferential(iv)
			night.Night += r.Night
			night.ReducedMinutes = night.ReducedMinutes.Add(r.ReducedMinutes)
		}
	}

	var override *Status
	if st, ok := overrides[OverrideKey{Employee: emp, Date: d}]; ok {
		override = &st
	}

	in := DayInput{
		Employee:    emp,
		Date:        d,
		Pairing:     pairing,
		Target:      resolver.Target(d),
		Nominal:     resolver.Nominal(d),
		Holiday:     resolver.IsHoliday(d),
		Premium:     resolver.IsPremium(d),
		OffSaturday: resolver.IsOffSaturday(d),
		RestDay:     settings.restsOn(d.Weekday()),
		Override:    override,
		Tolerance:   settings.Tolerance(),
	}
	outcome := Classify(in)
	res.warnings = append(res.warnings, outcome.Warnings...)

	return DayRecord{
		Employee:     emp,
		Date:         d,
		Weekday:      d.Weekday(),
		Entry1:       pairing.Entry1,
		Exit1:        pairing.Exit1,
		Entry2:       pairing.Entry2,
		Exit2:        pairing.Exit2,
		Target:       in.Target,
		Worked:       pairing.Worked,
		NightTime:    night.Night,
		NightReduced: night.ReducedMinutes,
		Normal:       outcome.Normal,
		Shortfall:    outcome.Shortfall,
		Overtime50:   outcome.Overtime50,
		Overtime100:  outcome.Overtime100,
		Status:       outcome.Status,
		Alert:        outcome.Alert,
		Note:         outcome.Note,
	}
}

// tallySummary folds day records and the weekly accumulator into totals.
// In weekly mode the 50%/100% split comes from the accumulator; daily mode
// sums each day independently (legacy, no 44h reconciliation).
func tallySummary(s *EmployeeSummary, acc *weeklyAccumulator, mode AggregationMode, warnings *[]string) {
	for i := range s.Days {
		day := &s.Days[i]
		s.TotalNormal += day.Normal
		s.TotalShortfall += day.Shortfall
		s.TotalNightTime += day.NightTime
		s.TotalNightReduced = s.TotalNightReduced.Add(day.NightReduced)
	}

	if mode == AggregationDaily {
		for i := range s.Days {
			s.TotalOvertime50 += s.Days[i].Overtime50
			s.TotalOvertime100 += s.Days[i].Overtime100
		}
	} else {
		ot50, ot100, weekWarnings := acc.totals(s.Employee)
		s.TotalOvertime50 = ot50
		s.TotalOvertime100 = ot100
		*warnings = append(*warnings, weekWarnings...)
	}

	s.NetBalance = s.TotalOvertime50 + s.TotalOvertime100 - s.TotalShortfall
}

// =============================================================================
// INPUT GROUPING
// =============================================================================

// groupPunches indexes raw events by employee and date and finds the range.
func groupPunches(events []PunchEvent) (map[EmployeeID]map[Date][]ClockTime, Date, Date) {
	byEmployee := make(map[EmployeeID]map[Date][]ClockTime)
	var first, last Date

	for _, ev := range events {
		if ev.Employee == "" || ev.Date.IsZero() {
			continue
		}
		days, ok := byEmployee[ev.Employee]
		if !ok {
			days = make(map[Date][]ClockTime)
			byEmployee[ev.Employee] = days
		}
		days[ev.Date] = append(days[ev.Date], ev.Clock)

		if first.IsZero() || ev.Date.Before(first) {
			first = ev.Date
		}
		if last.IsZero() || ev.Date.After(last) {
			last = ev.Date
		}
	}
	return byEmployee, first, last
}

// validOverrides filters the caller's override map down to the allowed
// status set. Rejected entries become warnings, not errors.
func validOverrides(raw map[OverrideKey]Status) (map[OverrideKey]Status, []string) {
	if len(raw) == 0 {
		return nil, nil
	}
	valid := make(map[OverrideKey]Status, len(raw))
	var rejected []OverrideKey
	for key, st := range raw {
		if OverrideStatuses[st] {
			valid[key] = st
		} else {
			rejected = append(rejected, key)
		}
	}
	sort.Slice(rejected, func(a, b int) bool {
		if rejected[a].Employee != rejected[b].Employee {
			return rejected[a].Employee < rejected[b].Employee
		}
		return rejected[a].Date.Before(rejected[b].Date)
	})
	var warnings []string
	for _, key := range rejected {
		warnings = append(warnings, (&OverrideError{
			Employee: key.Employee, Date: key.Date, Status: raw[key],
		}).Error())
	}
	return valid, warnings
}
