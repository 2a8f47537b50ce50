package ingest_test

import (
	"strings"
	"testing"
	"time"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/ingest"
	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

func TestParseReport_ExtractsPunchLines(t *testing.T) {
	// GIVEN: a realistic export mixing punch lines with header noise
	input := strings.Join([]string{
		"RELATORIO DE PONTO - FILIAL 03",
		"1 MARIA 01.02.2025 08:00:12",
		"2 MARIA 01.02.2025 12:01:47",
		"",
		"3 JOSE 01.02.2025 07:58:03",
		"TOTAL DE REGISTROS: 3",
	}, "\n")

	events, warnings := ingest.ParseReport(strings.NewReader(input))

	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}

	first := events[0]
	if first.Employee != "MARIA" {
		t.Errorf("employee = %s, want MARIA", first.Employee)
	}
	if !first.Date.Equal(timesheet.NewDate(2025, time.February, 1)) {
		t.Errorf("date = %s, want 2025-02-01", first.Date)
	}
	if first.Clock.String() != "08:00:12" {
		t.Errorf("clock = %s, want 08:00:12", first.Clock)
	}
	if events[2].Employee != "JOSE" {
		t.Errorf("third employee = %s, want JOSE", events[2].Employee)
	}
}

func TestParseReport_MultiWordNamesUseFirstToken(t *testing.T) {
	events, _ := ingest.ParseReport(strings.NewReader(
		"7 MARIA SILVA SANTOS 03.02.2025 08:00:00\n"))

	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Employee != "MARIA" {
		t.Errorf("employee = %s, want the first name token", events[0].Employee)
	}
}

func TestParseReport_MalformedLinesWarnButNeverFail(t *testing.T) {
	input := strings.Join([]string{
		"1 MARIA 31.02.2025 08:00:00", // impossible date
		"2 MARIA 01.02.2025 25:61:00", // impossible time
		"01.02.2025 08:00:00",         // no name prefix
		"3 MARIA 01.02.2025 09:00:00", // good
	}, "\n")

	events, warnings := ingest.ParseReport(strings.NewReader(input))

	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want only the good line", len(events))
	}
	if len(warnings) != 3 {
		t.Fatalf("warnings = %v, want 3", warnings)
	}
	for i, frag := range []string{"data inválida", "horário inválido", "sem nome"} {
		if !strings.Contains(warnings[i], frag) {
			t.Errorf("warnings[%d] = %q, want it to mention %q", i, warnings[i], frag)
		}
	}
}

func TestParseReport_EmptyInput(t *testing.T) {
	events, warnings := ingest.ParseReport(strings.NewReader(""))
	if len(events) != 0 || len(warnings) != 0 {
		t.Fatalf("events = %v, warnings = %v, want both empty", events, warnings)
	}
}

func TestConsolidate_MergesFilesAndPrefixesWarnings(t *testing.T) {
	a := strings.NewReader("1 MARIA 01.02.2025 08:00:00\n")
	b := strings.NewReader(strings.Join([]string{
		"1 JOSE 01.02.2025 07:55:00",
		"2 JOSE 99.99.2025 17:00:00",
	}, "\n"))

	events, warnings := ingest.Consolidate(a, b)

	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want 1", warnings)
	}
	if !strings.HasPrefix(warnings[0], "arquivo 2:") {
		t.Errorf("warning %q not attributed to the second file", warnings[0])
	}
}
