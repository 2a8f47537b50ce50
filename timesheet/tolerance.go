/*
tolerance.go - Statutory daily tolerance (CLT art. 58 §1)

PURPOSE:
  The daily variance between worked and target time is forgiven when it
  stays within the tolerance threshold (default 10 minutes, boundary
  inclusive). Once the threshold is crossed, the ENTIRE variance lands in
  one bucket - there is no partial tolerance. This all-or-nothing shape is
  the statutory rule and must not be smoothed.

CONVENTION:
  The evaluator is sign-agnostic: positive variance is time to deduct
  (shortfall beyond tolerance), negative variance is time to credit
  (overtime beyond tolerance). The classifier passes target - worked.
*/
package timesheet

import "time"

// ToleranceTag names the verdict.
type ToleranceTag string

const (
	TagTolerated     ToleranceTag = "tolerated"
	TagFullDeduction ToleranceTag = "full deduction"
	TagFullCredit    ToleranceTag = "full credit"
)

// ToleranceVerdict is the evaluator's three-way output. At most one of
// Abonado/Descontado is non-zero.
type ToleranceVerdict struct {
	Abonado    time.Duration // credited minutes (variance below -threshold)
	Descontado time.Duration // deducted minutes (variance above +threshold)
	Tag        ToleranceTag
}

// EvaluateTolerance applies the threshold to a signed variance.
//
//	|variance| <= threshold  -> (0, 0, tolerated)
//	 variance  >  threshold  -> (0, variance, full deduction)
//	 variance  < -threshold  -> (|variance|, 0, full credit)
func EvaluateTolerance(variance, threshold time.Duration) ToleranceVerdict {
	switch {
	case variance > threshold:
		return ToleranceVerdict{Descontado: variance, Tag: TagFullDeduction}
	case variance < -threshold:
		return ToleranceVerdict{Abonado: -variance, Tag: TagFullCredit}
	default:
		return ToleranceVerdict{Tag: TagTolerated}
	}
}
