package timesheet_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

// =============================================================================
// NIGHT DIFFERENTIAL
// =============================================================================

func interval(d timesheet.Date, startH, startM, endH, endM int, nextDay bool) timesheet.WorkInterval {
	end := d
	if nextDay {
		end = d.AddDays(1)
	}
	return timesheet.WorkInterval{
		Start: timesheet.NewClock(startH, startM, 0).At(d),
		End:   timesheet.NewClock(endH, endM, 0).At(end),
	}
}

func TestNight_CrossMidnightWithProrogation(t *testing.T) {
	// GIVEN: a shift 23:00 -> 06:00 (starts inside the night window, runs
	//        past 05:00)
	// THEN:  the whole span counts as night time: 6h of window plus 1h of
	//        prorogation = 420 minutes.
	d := date(2025, time.March, 10)
	res := timesheet.NightDifferential(interval(d, 23, 0, 6, 0, true))

	if res.Night != 7*time.Hour {
		t.Fatalf("night = %v, want 7h", res.Night)
	}
	// 420 clock minutes at the 52.5-minute legal hour = 480 legal minutes.
	if !res.ReducedMinutes.Equal(decimal.NewFromInt(480)) {
		t.Errorf("reduced = %s, want 480", res.ReducedMinutes)
	}
}

func TestNight_DaytimeShiftHasNone(t *testing.T) {
	d := date(2025, time.March, 10)
	res := timesheet.NightDifferential(interval(d, 8, 0, 17, 0, false))
	if res.Night != 0 {
		t.Errorf("night = %v, want 0", res.Night)
	}
	if !res.ReducedMinutes.IsZero() {
		t.Errorf("reduced = %s, want 0", res.ReducedMinutes)
	}
}

func TestNight_LateDaytimeStartGetsNoProrogation(t *testing.T) {
	// GIVEN: a shift 21:00 -> 06:00 (starts BEFORE the night window)
	// THEN:  only the window itself counts (22:00-05:00 = 7h); the hour past
	//        05:00 is not prorogated because the start was not nocturnal.
	d := date(2025, time.March, 10)
	res := timesheet.NightDifferential(interval(d, 21, 0, 6, 0, true))
	if res.Night != 7*time.Hour {
		t.Errorf("night = %v, want 7h (no prorogation)", res.Night)
	}
}

func TestNight_PartialEveningOverlap(t *testing.T) {
	// 19:00 -> 23:30 overlaps the window by 1h30m.
	d := date(2025, time.March, 10)
	res := timesheet.NightDifferential(interval(d, 19, 0, 23, 30, false))
	if res.Night != 90*time.Minute {
		t.Errorf("night = %v, want 1h30m", res.Night)
	}
}

func TestNight_FullWindowShift(t *testing.T) {
	// 22:00 -> 05:00 is exactly the legal window: 7h, no prorogation to add.
	d := date(2025, time.March, 10)
	res := timesheet.NightDifferential(interval(d, 22, 0, 5, 0, true))
	if res.Night != 7*time.Hour {
		t.Errorf("night = %v, want 7h", res.Night)
	}
}

func TestNight_IsInformationalOnly(t *testing.T) {
	// The night figure never inflates worked duration: a 23:00 -> 06:00
	// shift works 7h regardless of its 7h night overlap.
	d := date(2025, time.March, 10)
	iv := interval(d, 23, 0, 6, 0, true)
	if iv.Duration() != 7*time.Hour {
		t.Fatalf("worked = %v, want 7h", iv.Duration())
	}
	res := timesheet.NightDifferential(iv)
	if res.Night > iv.Duration() {
		t.Errorf("night %v exceeds worked %v", res.Night, iv.Duration())
	}
}
