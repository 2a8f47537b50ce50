/*
report.go - Report assembly

PURPOSE:
  Flattens per-employee results into the final Report: day rows sorted by
  (employee, date), one summary per employee, and the accumulated warning
  list. Every summary carries Informative=true - the net balance is a
  display figure, the engine makes no pay or time-off decisions.

  In weekly aggregation mode the summary's 50% total comes from the ISO-week
  reconciliation; the per-day Overtime50 column keeps each day's own
  candidate figure so the spreadsheet can show where the excess arose.
*/
package timesheet

// assembleReport stitches worker results together. Workers were launched in
// sorted employee order and their days are already date-ordered, so the
// result is deterministic by construction.
func assembleReport(results []employeeResult, warnings []string) *Report {
	report := &Report{Warnings: warnings}

	for _, r := range results {
		report.Days = append(report.Days, r.summary.Days...)
		report.Summaries = append(report.Summaries, r.summary)
		report.Warnings = append(report.Warnings, r.warnings...)
	}
	return report
}
