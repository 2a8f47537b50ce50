/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON shapes for the upload endpoints. These decouple the engine's internal
  model (time.Duration everywhere) from the wire contract (whole minutes),
  so the frontend never parses Go duration strings.

NAMING CONVENTION:
  - *Part: JSON fragments inside the multipart upload form
  - *DTO / *Response: types returned to clients

VALIDATION:
  DTOs are pure data carriers. Settings fields are pointers so "absent" and
  "zero" stay distinguishable; the engine clamps whatever arrives.
*/
package api

import (
	"time"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

// =============================================================================
// REQUEST PARTS
// =============================================================================

// SettingsPart is the optional "settings" JSON part of the upload form.
type SettingsPart struct {
	DailyTargetMinutes *int     `json:"daily_target_minutes"`
	ToleranceMinutes   *int     `json:"tolerance_minutes"`
	AutoBreak          *bool    `json:"auto_break"`
	BreakMinutes       *int     `json:"break_minutes"`
	SaturdayWorking    *bool    `json:"saturday_working"`
	SundayWorking      *bool    `json:"sunday_working"`
	NightShift         *bool    `json:"night_shift"`
	Holidays           []string `json:"holidays"`
	ScheduleID         string   `json:"schedule_id"`
	ScheduleAnchor     string   `json:"schedule_anchor"`
	WeeklyCapMinutes   *int     `json:"weekly_cap_minutes"`
	AggregationMode    string   `json:"aggregation_mode"`
	RestWeekday        *int     `json:"rest_weekday"`
}

// ToSettings maps the part onto the engine defaults. Unparsable holiday
// dates are reported as warnings and skipped.
func (p *SettingsPart) ToSettings() (timesheet.Settings, []string) {
	s := timesheet.DefaultSettings()
	if p == nil {
		return s, nil
	}
	var warnings []string

	if p.DailyTargetMinutes != nil {
		s.DailyTargetMinutes = *p.DailyTargetMinutes
	}
	if p.ToleranceMinutes != nil {
		s.ToleranceMinutes = *p.ToleranceMinutes
	}
	if p.AutoBreak != nil {
		s.AutoBreak = *p.AutoBreak
	}
	if p.BreakMinutes != nil {
		s.BreakMinutes = *p.BreakMinutes
	}
	if p.SaturdayWorking != nil {
		s.SaturdayWorking = *p.SaturdayWorking
	}
	if p.SundayWorking != nil {
		s.SundayWorking = *p.SundayWorking
	}
	if p.NightShift != nil {
		s.NightShift = *p.NightShift
	}
	if p.WeeklyCapMinutes != nil {
		s.WeeklyCapMinutes = *p.WeeklyCapMinutes
	}
	if p.RestWeekday != nil {
		s.RestWeekday = *p.RestWeekday
	}
	if p.ScheduleID != "" {
		s.ScheduleID = p.ScheduleID
	}
	s.ScheduleAnchor = p.ScheduleAnchor
	if p.AggregationMode != "" {
		s.AggregationMode = timesheet.AggregationMode(p.AggregationMode)
	}
	for _, raw := range p.Holidays {
		d, err := timesheet.ParseDate(raw)
		if err != nil {
			warnings = append(warnings, "feriado ignorado: "+raw)
			continue
		}
		s.Holidays = append(s.Holidays, d)
	}
	return s, warnings
}

// OverridePart is one manual status correction in the "overrides" JSON part.
type OverridePart struct {
	Employee string `json:"employee"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// DayRecordDTO is one day row, durations as whole minutes.
type DayRecordDTO struct {
	Date                string  `json:"date"`
	Weekday             string  `json:"weekday"`
	Entry1              string  `json:"entry1,omitempty"`
	Exit1               string  `json:"exit1,omitempty"`
	Entry2              string  `json:"entry2,omitempty"`
	Exit2               string  `json:"exit2,omitempty"`
	TargetMinutes       int     `json:"target_minutes"`
	WorkedMinutes       int     `json:"worked_minutes"`
	NightMinutes        int     `json:"night_minutes"`
	NightReducedMinutes float64 `json:"night_reduced_minutes"`
	NormalMinutes       int     `json:"normal_minutes"`
	ShortfallMinutes    int     `json:"shortfall_minutes"`
	Overtime50Minutes   int     `json:"overtime50_minutes"`
	Overtime100Minutes  int     `json:"overtime100_minutes"`
	Status              string  `json:"status"`
	Alert               bool    `json:"alert"`
	Note                string  `json:"note,omitempty"`
}

// EmployeeSummaryDTO is one employee's totals plus day rows.
type EmployeeSummaryDTO struct {
	Employee                 string         `json:"employee"`
	TotalNormalMinutes       int            `json:"total_normal_minutes"`
	TotalShortfallMinutes    int            `json:"total_shortfall_minutes"`
	TotalOvertime50Minutes   int            `json:"total_overtime50_minutes"`
	TotalOvertime100Minutes  int            `json:"total_overtime100_minutes"`
	TotalNightMinutes        int            `json:"total_night_minutes"`
	TotalNightReducedMinutes float64        `json:"total_night_reduced_minutes"`
	NetBalanceMinutes        int            `json:"net_balance_minutes"`
	Informative              bool           `json:"informative"`
	Days                     []DayRecordDTO `json:"days"`
}

// PreviewResponse is the JSON preview of a computation.
type PreviewResponse struct {
	Summaries []EmployeeSummaryDTO `json:"summaries"`
	Warnings  []string             `json:"warnings"`
}

// ScheduleDTO describes one catalog entry.
type ScheduleDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Statutory bool   `json:"statutory"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// =============================================================================
// MAPPING
// =============================================================================

func toDayRecordDTO(d timesheet.DayRecord) DayRecordDTO {
	clock := func(c *timesheet.ClockTime) string {
		if c == nil {
			return ""
		}
		return c.String()
	}
	return DayRecordDTO{
		Date:                d.Date.String(),
		Weekday:             d.Date.WeekdayNamePT(),
		Entry1:              clock(d.Entry1),
		Exit1:               clock(d.Exit1),
		Entry2:              clock(d.Entry2),
		Exit2:               clock(d.Exit2),
		TargetMinutes:       minutes(d.Target),
		WorkedMinutes:       minutes(d.Worked),
		NightMinutes:        minutes(d.NightTime),
		NightReducedMinutes: d.NightReduced.Round(2).InexactFloat64(),
		NormalMinutes:       minutes(d.Normal),
		ShortfallMinutes:    minutes(d.Shortfall),
		Overtime50Minutes:   minutes(d.Overtime50),
		Overtime100Minutes:  minutes(d.Overtime100),
		Status:              string(d.Status),
		Alert:               d.Alert,
		Note:                d.Note,
	}
}

func toSummaryDTO(s timesheet.EmployeeSummary) EmployeeSummaryDTO {
	dto := EmployeeSummaryDTO{
		Employee:                 string(s.Employee),
		TotalNormalMinutes:       minutes(s.TotalNormal),
		TotalShortfallMinutes:    minutes(s.TotalShortfall),
		TotalOvertime50Minutes:   minutes(s.TotalOvertime50),
		TotalOvertime100Minutes:  minutes(s.TotalOvertime100),
		TotalNightMinutes:        minutes(s.TotalNightTime),
		TotalNightReducedMinutes: s.TotalNightReduced.Round(2).InexactFloat64(),
		NetBalanceMinutes:        minutes(s.NetBalance),
		Informative:              s.Informative,
	}
	for _, d := range s.Days {
		dto.Days = append(dto.Days, toDayRecordDTO(d))
	}
	return dto
}

func minutes(d time.Duration) int { return int(d.Minutes()) }
