package timesheet_test

import (
	"strings"
	"testing"
	"time"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

// =============================================================================
// SCHEDULE CATALOG / TARGET RESOLUTION
// =============================================================================

func resolver(t *testing.T, mutate func(*timesheet.Settings)) (*timesheet.TargetResolver, []string) {
	t.Helper()
	s := timesheet.DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	return timesheet.NewTargetResolver(timesheet.NewCatalog(), s.Normalize())
}

func TestSchedule_DefaultWeek(t *testing.T) {
	// The baseline 44h week: 8h Mon-Fri, 4h Saturday, Sunday off.
	r, warnings := resolver(t, nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	mon := date(2025, time.March, 10) // Monday
	sat := date(2025, time.March, 15)
	sun := date(2025, time.March, 16)

	if got := r.Target(mon); got != 8*time.Hour {
		t.Errorf("Monday target = %v, want 8h", got)
	}
	if got := r.Target(sat); got != 4*time.Hour {
		t.Errorf("Saturday target = %v, want 4h", got)
	}
	if got := r.Target(sun); got != 0 {
		t.Errorf("Sunday target = %v, want 0", got)
	}
}

func TestSchedule_StatutoryMinutesCannotBeRelaxed(t *testing.T) {
	// GIVEN: the 6-day commerce schedule and a caller trying to configure
	//        300-minute days
	// THEN:  every working day still targets 440 minutes - statutory
	//        schedules ignore caller minutes outright.
	r, _ := resolver(t, func(s *timesheet.Settings) {
		s.ScheduleID = timesheet.ScheduleCommerce6x1
		s.DailyTargetMinutes = 300
	})

	for d := date(2025, time.March, 10); d.BeforeOrEqual(date(2025, time.March, 15)); d = d.AddDays(1) {
		if got := r.Nominal(d); got != 440*time.Minute {
			t.Errorf("%s (%s) nominal = %v, want 440min", d, d.Weekday(), got)
		}
	}
}

func TestSchedule_CyclicRotation(t *testing.T) {
	// 12x36 anchored on Monday 2025-01-06: on/off alternation, including
	// dates before the anchor.
	r, warnings := resolver(t, func(s *timesheet.Settings) {
		s.ScheduleID = timesheet.Schedule12x36
		s.ScheduleAnchor = "2025-01-06"
		s.SundayWorking = true
		s.Holidays = []timesheet.Date{date(2099, time.January, 1)}
	})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	cases := []struct {
		day  timesheet.Date
		want time.Duration
	}{
		{date(2025, time.January, 6), 12 * time.Hour},
		{date(2025, time.January, 7), 0},
		{date(2025, time.January, 8), 12 * time.Hour},
		{date(2025, time.January, 5), 0},             // one day before the anchor
		{date(2025, time.January, 4), 12 * time.Hour}, // two days before
	}
	for _, tc := range cases {
		if got := r.Nominal(tc.day); got != tc.want {
			t.Errorf("%s nominal = %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestSchedule_BadAnchorDegradesToFlatTarget(t *testing.T) {
	// GIVEN: a cyclic schedule with an unparsable anchor
	// THEN:  the run degrades to a flat 8h target and says so - it never
	//        fails.
	r, warnings := resolver(t, func(s *timesheet.Settings) {
		s.ScheduleID = timesheet.Schedule12x36
		s.ScheduleAnchor = "not-a-date"
	})

	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if got := r.Nominal(date(2025, time.January, 6)); got != 8*time.Hour {
		t.Errorf("degraded nominal = %v, want 8h", got)
	}
}

func TestSchedule_UnknownIDFallsBackToDefault(t *testing.T) {
	r, warnings := resolver(t, func(s *timesheet.Settings) {
		s.ScheduleID = "turno-da-lua"
	})
	if len(warnings) != 1 || !strings.Contains(warnings[0], "turno-da-lua") {
		t.Fatalf("warnings = %v, want one naming the unknown id", warnings)
	}
	if got := r.Target(date(2025, time.March, 10)); got != 8*time.Hour {
		t.Errorf("fallback Monday target = %v, want 8h", got)
	}
}

func TestSchedule_HolidayAndSundayZeroing(t *testing.T) {
	// Non-working days never appear to have a shortfall, whatever the
	// schedule table says.
	r, _ := resolver(t, nil)

	holiday := date(2025, time.May, 1) // Thursday, national holiday
	if got := r.Target(holiday); got != 0 {
		t.Errorf("holiday target = %v, want 0", got)
	}
	if !r.IsPremium(holiday) {
		t.Error("holiday not premium")
	}

	// A working Sunday keeps its schedule value instead.
	rSun, _ := resolver(t, func(s *timesheet.Settings) {
		s.SundayWorking = true
		s.ScheduleID = timesheet.ScheduleCustom
		s.DailyTargetMinutes = 400
	})
	sun := date(2025, time.March, 16)
	if rSun.IsPremium(sun) {
		t.Error("working Sunday still premium")
	}
}

func TestSchedule_CustomMinutes(t *testing.T) {
	r, _ := resolver(t, func(s *timesheet.Settings) {
		s.ScheduleID = timesheet.ScheduleCustom
		s.DailyTargetMinutes = 400
	})
	if got := r.Nominal(date(2025, time.March, 10)); got != 400*time.Minute {
		t.Errorf("custom weekday nominal = %v, want 400min", got)
	}
	if got := r.Nominal(date(2025, time.March, 15)); got != 200*time.Minute {
		t.Errorf("custom Saturday nominal = %v, want 200min", got)
	}
}
