package timesheet

import (
	"time"
)

// =============================================================================
// DATE - Calendar day (the unit every record is keyed by)
// =============================================================================

// Date is a calendar day with no time-of-day component. All dates are UTC;
// the engine never deals with zones, punches are local wall-clock readings.
type Date struct {
	t time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts the two formats that appear in punch files and
// configuration: "02.01.2006" (clock export) and "2006-01-02" (API).
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{"02.01.2006", "2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, &ParseError{Field: "date", Value: s}
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) IsZero() bool                  { return d.t.IsZero() }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysSince returns the whole number of days from anchor to d (negative when
// d precedes anchor).
func (d Date) DaysSince(anchor Date) int {
	return int(d.t.Sub(anchor.t).Hours() / 24)
}

// Properties
func (d Date) Year() int                 { return d.t.Year() }
func (d Date) Month() time.Month         { return d.t.Month() }
func (d Date) Day() int                  { return d.t.Day() }
func (d Date) Weekday() time.Weekday     { return d.t.Weekday() }
func (d Date) ISOWeek() (int, int)       { return d.t.ISOWeek() }
func (d Date) Time() time.Time           { return d.t }
func (d Date) String() string            { return d.t.Format("2006-01-02") }
func (d Date) FormatBR() string          { return d.t.Format("02/01/2006") }

// WeekdayNamePT returns the Portuguese weekday name used on report rows.
func (d Date) WeekdayNamePT() string {
	switch d.Weekday() {
	case time.Monday:
		return "Segunda-feira"
	case time.Tuesday:
		return "Terça-feira"
	case time.Wednesday:
		return "Quarta-feira"
	case time.Thursday:
		return "Quinta-feira"
	case time.Friday:
		return "Sexta-feira"
	case time.Saturday:
		return "Sábado"
	default:
		return "Domingo"
	}
}

// =============================================================================
// CLOCK TIME - Time-of-day as punched, second precision
// =============================================================================

// ClockTime is a time-of-day reading in [00:00:00, 24:00:00). It carries no
// date: the pairing resolver decides which calendar day a punch belongs to.
type ClockTime struct {
	secs int
}

func NewClock(hour, min, sec int) ClockTime {
	return ClockTime{secs: hour*3600 + min*60 + sec}
}

// ParseClock parses "15:04:05" or "15:04".
func ParseClock(s string) (ClockTime, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewClock(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return ClockTime{}, &ParseError{Field: "time", Value: s}
}

func (c ClockTime) Hour() int   { return c.secs / 3600 }
func (c ClockTime) Minute() int { return (c.secs % 3600) / 60 }
func (c ClockTime) Second() int { return c.secs % 60 }

// Offset is the distance from midnight.
func (c ClockTime) Offset() time.Duration { return time.Duration(c.secs) * time.Second }

// At anchors the reading on a calendar day, producing a full timestamp.
func (c ClockTime) At(d Date) time.Time {
	return d.Time().Add(c.Offset())
}

func (c ClockTime) Before(other ClockTime) bool { return c.secs < other.secs }

func (c ClockTime) String() string {
	return c.At(NewDate(2000, time.January, 1)).Format("15:04:05")
}

// =============================================================================
// HOLIDAY SET
// =============================================================================

// HolidaySet answers "is this date a declared holiday". Built once from the
// caller's holiday list; read-only afterwards, safe for concurrent use.
type HolidaySet map[Date]bool

func NewHolidaySet(dates []Date) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set
}

func (h HolidaySet) Contains(d Date) bool { return h[d] }

// NationalHolidays2025 returns the Brazilian national and São Paulo state
// holidays observed by the company in 2025. Used as the default when the
// caller supplies no holiday list.
func NationalHolidays2025() []Date {
	return []Date{
		NewDate(2025, time.January, 1),
		NewDate(2025, time.March, 4),
		NewDate(2025, time.April, 18),
		NewDate(2025, time.April, 21),
		NewDate(2025, time.May, 1),
		NewDate(2025, time.June, 19),
		NewDate(2025, time.July, 9),
		NewDate(2025, time.September, 7),
		NewDate(2025, time.October, 12),
		NewDate(2025, time.November, 2),
		NewDate(2025, time.November, 15),
		NewDate(2025, time.November, 20),
		NewDate(2025, time.December, 25),
	}
}
