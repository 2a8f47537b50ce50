/*
night.go - Night-shift differential (CLT art. 73)

PURPOSE:
  Minutes worked inside the legal night window [22:00, 05:00 next day) earn
  a differential, and each such hour legally counts as 52.5 minutes - the
  "reduced hour", reported here as the equivalent duration at factor
  60/52.5.

ALGORITHM:
  The interval and the window live on a 0-29 hour scale (22.0-29.0), so a
  shift starting before midnight and ending after 05:00 is one continuous
  overlap, not two.

  Prorogation (art. 73 §5): when the shift STARTS inside the night window
  and runs past 05:00, every minute past 05:00 keeps the differential. A
  daytime shift that merely runs late never gets the prorogation.

  The result is informational: it is never added to worked duration.
*/
package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	nightWindowStart = 22 * time.Hour // 22:00 on the interval's start day
	nightWindowEnd   = 29 * time.Hour // 05:00 on the following day
)

// The legal night hour has 52.5 clock minutes; reduced time scales clock
// minutes by 60/52.5. Multiply before dividing to keep exact results exact.
var (
	legalHourMinutes = decimal.NewFromInt(60)
	nightHourLength  = decimal.NewFromFloat(52.5)
)

// NightResult reports one interval's night figures.
type NightResult struct {
	// Night is the raw duration intersecting the night window, prorogation
	// included.
	Night time.Duration

	// ReducedMinutes is Night re-expressed with the 52.5-minute legal hour,
	// in minutes.
	ReducedMinutes decimal.Decimal
}

// NightDifferential computes the night figures for one work interval. The
// interval's start day anchors the 0-29h scale; an end numerically earlier
// than the start is normalized by adding 24 hours.
func NightDifferential(iv WorkInterval) NightResult {
	base := DateOf(iv.Start).Time()
	start := iv.Start.Sub(base)
	end := iv.End.Sub(base)
	if end < start {
		end += 24 * time.Hour
	}

	overlap := minDur(end, nightWindowEnd) - maxDur(start, nightWindowStart)
	if overlap < 0 {
		overlap = 0
	}

	// Prorogation: a shift that starts at night keeps the differential for
	// the whole extension past 05:00.
	if start >= nightWindowStart && end > nightWindowEnd {
		overlap += end - nightWindowEnd
	}

	return NightResult{
		Night:          overlap,
		ReducedMinutes: reducedMinutes(overlap),
	}
}

// reducedMinutes converts a night duration to legal-hour minutes.
func reducedMinutes(d time.Duration) decimal.Decimal {
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(d.Minutes()).Mul(legalHourMinutes).Div(nightHourLength)
}

func minDur(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

func maxDur(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
