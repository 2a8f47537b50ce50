/*
pairing.go - Punch pairing resolver

PURPOSE:
  Turns the unordered set of punches for one employee-day into ordered
  (entry, exit) work intervals. The hard part is midnight: a punch at 04:01
  is almost never this morning's entry - it is the closing half of a shift
  that began the previous evening.

ALGORITHM:
  1. Split punches into pre-dawn (hour < 05:00) and normal (hour >= 05:00).
     With night-shift handling on, normal punches sort first and pre-dawn
     punches append AFTER them; otherwise everything sorts ascending.
  2. Walk the ordered list two at a time. When an exit is pre-dawn and its
     entry is not, roll the exit to the next calendar day for duration math;
     the displayed slot keeps the punched time-of-day.
  3. A pair is accepted only when its duration is in (0, 16h]. Otherwise the
     entry is dropped as an orphan and scanning resumes one punch later -
     never silently paired with an unrelated punch.

  With exactly two punches and the automatic-break option on, a break of
  configurable length is inserted at midday when the interval straddles it.
  Days with four or more raw punches are never auto-split.

  The resolver is pure: no state survives between employee-days.
*/
package timesheet

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// preDawnHour splits "closing half of yesterday's shift" from "today's
// opening punch".
const preDawnHour = 5

// maxShift is the longest a single interval may run before the pair is
// considered bogus.
const maxShift = 16 * time.Hour

// PairingOptions tunes the resolver for one run.
type PairingOptions struct {
	NightShift  bool
	AutoBreak   bool
	BreakLength time.Duration
}

// PairingResult is everything the classifier needs to know about one day's
// punches.
type PairingResult struct {
	Intervals []WorkInterval

	// Display slots. Nil = empty. Two punches fill Entry1/Exit2, three fill
	// Entry1/Exit1/Entry2, four or more fill all slots.
	Entry1, Exit1, Entry2, Exit2 *ClockTime

	Worked   time.Duration
	RawCount int
	Odd      bool
	Orphans  int
	Note     string

	// LunchGap is the pause between the first and second interval, when at
	// least two intervals exist.
	LunchGap    time.Duration
	HasLunchGap bool
}

// HasPunches reports whether the day had any raw punches at all.
func (p PairingResult) HasPunches() bool { return p.RawCount > 0 }

// PairPunches resolves one employee-day. punches is not mutated.
func PairPunches(date Date, punches []ClockTime, opts PairingOptions) PairingResult {
	res := PairingResult{RawCount: len(punches), Odd: len(punches)%2 == 1}
	if len(punches) == 0 {
		return res
	}

	ordered := orderPunches(punches, opts.NightShift)

	if opts.AutoBreak && len(ordered) == 2 {
		ordered = maybeSplitLunch(ordered, opts.BreakLength)
	}

	res.assignSlots(ordered)

	// Pair walk
	i := 0
	for i+1 < len(ordered) {
		entry, exit := ordered[i], ordered[i+1]
		start := entry.At(date)
		end := exit.At(date)
		if exit.Hour() < preDawnHour && entry.Hour() >= preDawnHour {
			// Shift crossed midnight: the exit belongs to the next day.
			end = exit.At(date.AddDays(1))
		}
		dur := end.Sub(start)
		if dur > 0 && dur <= maxShift {
			res.Intervals = append(res.Intervals, WorkInterval{Start: start, End: end})
			res.Worked += dur
			i += 2
		} else {
			res.Orphans++
			i++
		}
	}

	if len(res.Intervals) >= 2 {
		res.LunchGap = res.Intervals[1].Start.Sub(res.Intervals[0].End)
		res.HasLunchGap = true
	}

	return res
}

// orderPunches sorts punches for pairing. With night-shift handling on, a
// pre-dawn punch moves after all normal punches: it closes yesterday's
// shift instead of opening today's.
func orderPunches(punches []ClockTime, nightShift bool) []ClockTime {
	ordered := make([]ClockTime, len(punches))
	copy(ordered, punches)

	if !nightShift {
		sort.Slice(ordered, func(a, b int) bool { return ordered[a].Before(ordered[b]) })
		return ordered
	}

	var normal, preDawn []ClockTime
	for _, p := range ordered {
		if p.Hour() < preDawnHour {
			preDawn = append(preDawn, p)
		} else {
			normal = append(normal, p)
		}
	}
	sort.Slice(normal, func(a, b int) bool { return normal[a].Before(normal[b]) })
	sort.Slice(preDawn, func(a, b int) bool { return preDawn[a].Before(preDawn[b]) })
	return append(normal, preDawn...)
}

// maybeSplitLunch inserts a midday break into a two-punch day whose single
// interval straddles noon. Mirrors the paper-card convention of an unpunched
// lunch hour.
func maybeSplitLunch(ordered []ClockTime, breakLen time.Duration) []ClockTime {
	entry, exit := ordered[0], ordered[1]
	if exit.Hour() < preDawnHour {
		// Cross-midnight pair, leave it alone.
		return ordered
	}
	noon := NewClock(12, 0, 0)
	backMin := 12*60 + int(breakLen.Minutes())
	back := NewClock(backMin/60, backMin%60, 0)
	if entry.Before(noon) && back.Before(exit) {
		return []ClockTime{entry, noon, back, exit}
	}
	return ordered
}

// assignSlots fills the four display columns from the ordered punch list.
func (p *PairingResult) assignSlots(ordered []ClockTime) {
	ref := func(i int) *ClockTime {
		c := ordered[i]
		return &c
	}
	switch n := len(ordered); {
	case n == 1:
		p.Entry1 = ref(0)
	case n == 2:
		p.Entry1, p.Exit2 = ref(0), ref(1)
	case n == 3:
		p.Entry1, p.Exit1, p.Entry2 = ref(0), ref(1), ref(2)
	case n >= 4:
		p.Entry1, p.Exit1, p.Entry2, p.Exit2 = ref(0), ref(1), ref(2), ref(3)
		if n > 4 {
			extra := make([]string, 0, n-4)
			for _, c := range ordered[4:] {
				extra = append(extra, c.String())
			}
			p.Note = fmt.Sprintf("batidas adicionais: %s", strings.Join(extra, ", "))
		}
	}
}
