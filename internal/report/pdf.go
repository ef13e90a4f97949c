package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"shift-wage-bot/internal/domain"
)

// RenderPDF строит месячный отчёт. Встроенные шрифты gofpdf не содержат
// кириллицы, поэтому в PDF подписи на английском.
func RenderPDF(s domain.MonthlySummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Wage report %04d-%02d", s.Year, int(s.Month)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	headers := []string{"Date", "Period", "Hours", "Day", "Gross", "Tax", "Net", "Paid"}
	widths := []float64{22, 38, 16, 18, 24, 22, 24, 14}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, sw := range s.Shifts {
		c := sw.Calculation
		day := "regular"
		if c.IsSpecialDay {
			day = "special"
		}
		paid := "no"
		if sw.Shift.Paid {
			paid = "yes"
		}
		row := []string{
			sw.Shift.StartTime.Format("2006-01-02"),
			sw.Shift.StartTime.Format("15:04") + " - " + sw.Shift.EndTime.Format("15:04"),
			Hours(c.TotalHours),
			day,
			Money(c.GrossWage),
			Money(c.TaxDeduction),
			Money(c.NetWage),
			paid,
		}
		for i, v := range row {
			align := "R"
			if i == 0 || i == 1 || i == 3 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	for _, line := range []string{
		fmt.Sprintf("Shifts: %d", len(s.Shifts)),
		fmt.Sprintf("Hours: %s", Hours(s.TotalHours)),
		fmt.Sprintf("Gross: %s", Money(s.GrossWage)),
		fmt.Sprintf("Tax: %s", Money(s.TaxDeduction)),
		fmt.Sprintf("Net: %s", Money(s.NetWage)),
		fmt.Sprintf("Unpaid net: %s", Money(s.UnpaidNet)),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
