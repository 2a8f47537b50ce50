package export_test

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/export"
	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

func sampleReport() *timesheet.Report {
	d := timesheet.NewDate(2025, time.February, 3) // Monday
	entry1, _ := timesheet.ParseClock("08:00:00")
	exit1, _ := timesheet.ParseClock("12:00:00")
	entry2, _ := timesheet.ParseClock("14:00:00")
	exit2, _ := timesheet.ParseClock("18:00:00")

	day := timesheet.DayRecord{
		Employee: "MARIA",
		Date:     d,
		Weekday:  time.Monday,
		Entry1:   &entry1,
		Exit1:    &exit1,
		Entry2:   &entry2,
		Exit2:    &exit2,
		Target:   8 * time.Hour,
		Worked:   8 * time.Hour,
		Normal:   8 * time.Hour,
		Status:   timesheet.StatusNormal,
	}
	summary := timesheet.EmployeeSummary{
		Employee:          "MARIA",
		TotalNormal:       8 * time.Hour,
		NetBalance:        0,
		TotalNightReduced: decimal.Zero,
		Informative:       true,
		Days:              []timesheet.DayRecord{day},
	}
	return &timesheet.Report{
		Days:      []timesheet.DayRecord{day},
		Summaries: []timesheet.EmployeeSummary{summary},
		Warnings:  []string{"arquivo 1: linha 4: data inválida \"99.99.2025\""},
	}
}

func TestWriteXLSX_OneSheetPerEmployeePlusWarnings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Contains(t, sheets, "MARIA")
	require.Contains(t, sheets, "Avisos")
	require.NotContains(t, sheets, "Sheet1")
}

func TestWriteXLSX_DayRowLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	for cell, want := range map[string]string{
		"A1": "Data",
		"G1": "Jornada",
		"N1": "Status",
		"A2": "03/02/2025",
		"B2": "Segunda-feira",
		"C2": "08:00:00",
		"F2": "18:00:00",
		"N2": "NORMAL",
	} {
		got, err := f.GetCellValue("MARIA", cell)
		require.NoError(t, err)
		require.Equal(t, want, got, "cell %s", cell)
	}

	// Durations are stored as Excel day fractions: 8h = 1/3 of a day.
	raw, err := f.GetCellValue("MARIA", "H2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, mustFloat(t, raw), 1e-9)
}

func TestWriteXLSX_SummaryBlock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	// One day row, so the block starts at row 4.
	got, err := f.GetCellValue("MARIA", "A4")
	require.NoError(t, err)
	require.Equal(t, "Resumo do Funcionário", got)

	got, err = f.GetCellValue("MARIA", "A10")
	require.NoError(t, err)
	require.Equal(t, "Saldo Final de Horas", got)

	got, err = f.GetCellValue("MARIA", "A12")
	require.NoError(t, err)
	require.Contains(t, got, "meramente informativo")
}

func TestWriteXLSX_WarningSheetListsEngineWarnings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Avisos", "A2")
	require.NoError(t, err)
	require.Contains(t, got, "data inválida")
}

func TestWriteXLSX_EmptyWarningListGetsPlaceholder(t *testing.T) {
	rep := sampleReport()
	rep.Warnings = nil

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, rep))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Avisos", "A2")
	require.NoError(t, err)
	require.Equal(t, "Nenhum aviso", got)
}

func TestSheetNameSanitizing(t *testing.T) {
	rep := sampleReport()
	rep.Summaries[0].Employee = "JOSE/DA[SILVA]"

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, rep))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "JOSE-DA(SILVA)")
}

func mustFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return v
}
