package timesheet

import (
	"strings"
	"testing"
	"time"
)

func day(d Date, worked, ot100 time.Duration) *DayRecord {
	return &DayRecord{Date: d, Worked: worked, Overtime100: ot100}
}

func TestWeeklyAccumulator_SplitsExcessWithoutDoubleCounting(t *testing.T) {
	// GIVEN: one ISO week with 50h total, 4h of which is Sunday work at 100%
	// WHEN:  totals are derived with a 44h cap
	// THEN:  excess is 6h, the 4h premium is subtracted first, 2h land at 50%.
	acc := newWeeklyAccumulator(44 * time.Hour)

	monday := NewDate(2025, time.January, 6)
	for i := 0; i < 5; i++ {
		acc.add(day(monday.AddDays(i), 8*time.Hour, 0))
	}
	acc.add(day(monday.AddDays(5), 6*time.Hour, 0)) // Saturday
	acc.add(day(monday.AddDays(6), 4*time.Hour, 4*time.Hour))

	ot50, ot100, warnings := acc.totals("MARIA")
	if ot50 != 2*time.Hour {
		t.Errorf("ot50 = %v, want 2h", ot50)
	}
	if ot100 != 4*time.Hour {
		t.Errorf("ot100 = %v, want 4h", ot100)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "44h00") {
		t.Errorf("warnings = %v, want one over-cap notice naming the limit", warnings)
	}
}

func TestWeeklyAccumulator_UnderCapYieldsNoFiftyPercent(t *testing.T) {
	// 42h30 of regular work stays under the cap even though every single
	// day ran past its own 8h target.
	acc := newWeeklyAccumulator(44 * time.Hour)
	monday := NewDate(2025, time.January, 6)
	for i := 0; i < 5; i++ {
		acc.add(day(monday.AddDays(i), 8*time.Hour+30*time.Minute, 0))
	}

	ot50, ot100, warnings := acc.totals("MARIA")
	if ot50 != 0 || ot100 != 0 {
		t.Errorf("ot50 = %v, ot100 = %v, want both 0", ot50, ot100)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestWeeklyAccumulator_PremiumOnlyWeekNeverGoesNegative(t *testing.T) {
	// A week made entirely of a 46h holiday marathon: excess 2h is fully
	// covered by the premium bucket, so the 50% bucket stays empty.
	acc := newWeeklyAccumulator(44 * time.Hour)
	monday := NewDate(2025, time.January, 6)
	acc.add(day(monday, 46*time.Hour, 46*time.Hour))

	ot50, ot100, _ := acc.totals("JOSE")
	if ot50 != 0 {
		t.Errorf("ot50 = %v, want 0", ot50)
	}
	if ot100 != 46*time.Hour {
		t.Errorf("ot100 = %v, want 46h", ot100)
	}
}

func TestWeeklyAccumulator_WeeksAreIndependent(t *testing.T) {
	// Two weeks, each 45h: excess is computed per week, not on the sum.
	acc := newWeeklyAccumulator(44 * time.Hour)
	for w := 0; w < 2; w++ {
		monday := NewDate(2025, time.January, 6).AddDays(7 * w)
		for i := 0; i < 5; i++ {
			acc.add(day(monday.AddDays(i), 9*time.Hour, 0))
		}
	}

	ot50, _, warnings := acc.totals("MARIA")
	if ot50 != 2*time.Hour {
		t.Errorf("ot50 = %v, want 1h per week", ot50)
	}
	if len(warnings) != 2 {
		t.Errorf("warnings = %v, want one per week", warnings)
	}
}
