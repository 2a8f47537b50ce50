/*
Package export renders a computed timesheet report as an .xlsx workbook.

PURPOSE:
  One sheet per employee with the day rows, a bold summary block underneath,
  and a final sheet listing every warning the engine accumulated. Duration
  cells carry the elapsed-time number format ([h]:mm:ss) so totals above 24h
  display correctly, and stay real time values so HR can keep using their
  own formulas on top.

  The writer only consumes timesheet.Report; it never recomputes anything.
*/
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

// dayHeader is the per-day sheet header, in display order.
var dayHeader = []string{
	"Data",
	"Dia da Semana",
	"Entrada 1",
	"Saída 1",
	"Entrada 2",
	"Saída 2",
	"Jornada",
	"Total Trabalhado",
	"Horas Normais",
	"Horas a Dever",
	"Horas Extras (50%)",
	"Horas Extras (100%)",
	"Adicional Noturno",
	"Status",
	"Alerta",
	"Observações",
}

// durationFmt is the elapsed-time number format: hours past 24 keep
// accumulating instead of wrapping.
const durationFmt = "[h]:mm:ss"

// WriteXLSX renders the report into w.
func WriteXLSX(w io.Writer, report *timesheet.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("estilo de cabeçalho: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("estilo negrito: %w", err)
	}
	numFmt := durationFmt
	durationStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("estilo de duração: %w", err)
	}
	boldDurationStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true}, CustomNumFmt: &numFmt,
	})
	if err != nil {
		return fmt.Errorf("estilo de saldo: %w", err)
	}

	styles := sheetStyles{
		header:       headerStyle,
		bold:         boldStyle,
		duration:     durationStyle,
		boldDuration: boldDurationStyle,
	}

	for _, summary := range report.Summaries {
		if err := writeEmployeeSheet(f, summary, styles); err != nil {
			return err
		}
	}
	if err := writeWarningSheet(f, report.Warnings, styles); err != nil {
		return err
	}

	f.DeleteSheet("Sheet1")
	return f.Write(w)
}

type sheetStyles struct {
	header       int
	bold         int
	duration     int
	boldDuration int
}

func writeEmployeeSheet(f *excelize.File, s timesheet.EmployeeSummary, styles sheetStyles) error {
	sheet := sheetName(string(s.Employee))
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("planilha %q: %w", sheet, err)
	}

	for col, title := range dayHeader {
		cell := cellRef(col+1, 1)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, styles.header)
	}

	for i, day := range s.Days {
		row := i + 2
		f.SetCellValue(sheet, cellRef(1, row), day.Date.FormatBR())
		f.SetCellValue(sheet, cellRef(2, row), day.Date.WeekdayNamePT())
		setClock(f, sheet, cellRef(3, row), day.Entry1)
		setClock(f, sheet, cellRef(4, row), day.Exit1)
		setClock(f, sheet, cellRef(5, row), day.Entry2)
		setClock(f, sheet, cellRef(6, row), day.Exit2)
		f.SetCellValue(sheet, cellRef(7, row), excelDuration(day.Target))
		f.SetCellValue(sheet, cellRef(8, row), excelDuration(day.Worked))
		f.SetCellValue(sheet, cellRef(9, row), excelDuration(day.Normal))
		f.SetCellValue(sheet, cellRef(10, row), excelDuration(day.Shortfall))
		f.SetCellValue(sheet, cellRef(11, row), excelDuration(day.Overtime50))
		f.SetCellValue(sheet, cellRef(12, row), excelDuration(day.Overtime100))
		f.SetCellValue(sheet, cellRef(13, row), excelDuration(day.NightTime))
		f.SetCellValue(sheet, cellRef(14, row), string(day.Status))
		if day.Alert {
			f.SetCellValue(sheet, cellRef(15, row), "SIM")
		}
		f.SetCellValue(sheet, cellRef(16, row), day.Note)
	}

	// Duration columns G..M get the elapsed-time format.
	if len(s.Days) > 0 {
		f.SetCellStyle(sheet, cellRef(7, 2), cellRef(13, len(s.Days)+1), styles.duration)
	}

	writeSummaryBlock(f, sheet, s, len(s.Days)+3, styles)

	f.SetColWidth(sheet, "A", "P", 18)
	return nil
}

// writeSummaryBlock appends the per-employee totals, matching the layout HR
// has used since the manual spreadsheet era.
func writeSummaryBlock(f *excelize.File, sheet string, s timesheet.EmployeeSummary, startRow int, styles sheetStyles) {
	title := cellRef(1, startRow)
	f.SetCellValue(sheet, title, "Resumo do Funcionário")
	f.SetCellStyle(sheet, title, title, styles.bold)

	rows := []struct {
		label    string
		duration time.Duration
		bold     bool
	}{
		{"Total de Horas Normais", s.TotalNormal, false},
		{"Total de Horas a Dever", s.TotalShortfall, false},
		{"Total de Horas Extras (50%)", s.TotalOvertime50, false},
		{"Total de Horas Extras (100%)", s.TotalOvertime100, false},
		{"Total de Adicional Noturno", s.TotalNightTime, false},
		{"Saldo Final de Horas", s.NetBalance, true},
	}
	for i, r := range rows {
		labelCell := cellRef(1, startRow+1+i)
		valueCell := cellRef(2, startRow+1+i)
		f.SetCellValue(sheet, labelCell, r.label)
		f.SetCellValue(sheet, valueCell, excelDuration(r.duration))
		if r.bold {
			f.SetCellStyle(sheet, labelCell, labelCell, styles.bold)
			f.SetCellStyle(sheet, valueCell, valueCell, styles.boldDuration)
		} else {
			f.SetCellStyle(sheet, valueCell, valueCell, styles.duration)
		}
	}

	reducedRow := startRow + len(rows) + 1
	f.SetCellValue(sheet, cellRef(1, reducedRow), "Horas noturnas reduzidas (min)")
	f.SetCellValue(sheet, cellRef(2, reducedRow), s.TotalNightReduced.Round(2).InexactFloat64())

	noteRow := reducedRow + 1
	f.SetCellValue(sheet, cellRef(1, noteRow),
		"Saldo meramente informativo - não constitui decisão de pagamento ou compensação")
}

func writeWarningSheet(f *excelize.File, warnings []string, styles sheetStyles) error {
	const sheet = "Avisos"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("planilha %q: %w", sheet, err)
	}
	f.SetCellValue(sheet, "A1", "Avisos do processamento")
	f.SetCellStyle(sheet, "A1", "A1", styles.header)
	if len(warnings) == 0 {
		f.SetCellValue(sheet, "A2", "Nenhum aviso")
	}
	for i, w := range warnings {
		f.SetCellValue(sheet, cellRef(1, i+2), w)
	}
	f.SetColWidth(sheet, "A", "A", 90)
	return nil
}

// =============================================================================
// CELL HELPERS
// =============================================================================

// excelDuration converts a duration to Excel's day-fraction time value.
func excelDuration(d time.Duration) float64 {
	return d.Hours() / 24
}

func setClock(f *excelize.File, sheet, cell string, c *timesheet.ClockTime) {
	if c == nil {
		return
	}
	f.SetCellValue(sheet, cell, c.String())
}

func cellRef(col, row int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s%d", name, row)
}

// sheetName sanitizes an employee name into a legal sheet title.
func sheetName(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", "?", "", "*", "", "[", "(", "]", ")", ":", "-")
	clean := replacer.Replace(name)
	if clean == "" {
		clean = "Funcionário"
	}
	if len(clean) > 31 {
		clean = clean[:31]
	}
	return clean
}
