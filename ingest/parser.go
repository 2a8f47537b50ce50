/*
Package ingest extracts punch events from raw clock-export files.

PURPOSE:
  The time clock exports a loose text format: each punch line carries a
  sequence number, the employee name, then "dd.mm.yyyy hh:mm:ss". Lines
  that do not look like punches (headers, totals, noise) are simply absent
  from the output - there is no such thing as a partial event.

  For scanned punch cards there is a vision-based fallback (vision.go) that
  produces the same PunchEvent sequence. The timesheet engine never knows
  which path produced its input.

ERROR POLICY:
  Malformed lines are skipped; lines that matched the punch pattern but
  failed to parse are reported in the warning slice so HR can fix the
  export. Parsing never fails the upload.
*/
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

// punchPattern matches the clock export's "dd.mm.yyyy hh:mm:ss" pair.
var punchPattern = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})\s+(\d{2}:\d{2}:\d{2})`)

// ParseReport extracts punch events from one clock-export file.
func ParseReport(r io.Reader) ([]timesheet.PunchEvent, []string) {
	var (
		events   []timesheet.PunchEvent
		warnings []string
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		match := punchPattern.FindStringSubmatchIndex(line)
		if match == nil {
			continue
		}

		dateStr := line[match[2]:match[3]]
		timeStr := line[match[4]:match[5]]

		date, err := timesheet.ParseDate(dateStr)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("linha %d: data inválida %q", lineNo, dateStr))
			continue
		}
		clock, err := timesheet.ParseClock(timeStr)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("linha %d: horário inválido %q", lineNo, timeStr))
			continue
		}

		name := employeeName(line[:match[0]])
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("linha %d: batida sem nome de funcionário", lineNo))
			continue
		}

		events = append(events, timesheet.PunchEvent{
			Employee: timesheet.EmployeeID(name),
			Date:     date,
			Clock:    clock,
		})
	}
	if err := scanner.Err(); err != nil {
		warnings = append(warnings, fmt.Sprintf("leitura interrompida: %v", err))
	}

	return events, warnings
}

// employeeName pulls the name token from the line prefix. The export lays
// out "<seq> <name> ..." before the date, so the name is the second field.
func employeeName(prefix string) string {
	fields := strings.Fields(prefix)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// Consolidate parses several export files into one event sequence, merging
// their warnings. Mirrors the multi-file upload: employees may be spread
// across files and dates may interleave.
func Consolidate(readers ...io.Reader) ([]timesheet.PunchEvent, []string) {
	var (
		events   []timesheet.PunchEvent
		warnings []string
	)
	for i, r := range readers {
		ev, warn := ParseReport(r)
		events = append(events, ev...)
		for _, w := range warn {
			warnings = append(warnings, fmt.Sprintf("arquivo %d: %s", i+1, w))
		}
	}
	return events, warnings
}
