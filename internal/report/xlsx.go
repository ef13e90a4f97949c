package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shift-wage-bot/internal/domain"
)

const (
	ShiftsSheet    = "Смены"
	BreakdownSheet = "Расчёт"
)

// RenderXLSX строит книгу с двумя листами: смены с итогами и построчный расчёт.
// Числа пишутся без округления, формат ячеек показывает два знака.
func RenderXLSX(s domain.MonthlySummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ShiftsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(BreakdownSheet); err != nil {
		return nil, err
	}
	numStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, err
	}

	header := []any{"Начало", "Конец", "Часы", "Особый день", "Начислено", "Налог", "К выплате", "Выплачено", "Заметка"}
	if err := f.SetSheetRow(ShiftsSheet, "A1", &header); err != nil {
		return nil, err
	}
	bheader := []any{"Начало смены", "Тип", "Часы", "Множитель", "Сумма"}
	if err := f.SetSheetRow(BreakdownSheet, "A1", &bheader); err != nil {
		return nil, err
	}

	brow := 2
	for i, sw := range s.Shifts {
		c := sw.Calculation
		row := []any{
			sw.Shift.StartTime.Format("2006-01-02 15:04"),
			sw.Shift.EndTime.Format("2006-01-02 15:04"),
			c.TotalHours,
			c.IsSpecialDay,
			c.GrossWage,
			c.TaxDeduction,
			c.NetWage,
			sw.Shift.Paid,
			sw.Shift.Notes,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ShiftsSheet, cell, &row); err != nil {
			return nil, err
		}
		for _, b := range c.Breakdowns {
			line := []any{sw.Shift.StartTime.Format("2006-01-02 15:04"), BreakdownLabel(b.Type), b.Hours, b.Rate, b.Amount}
			cell, _ := excelize.CoordinatesToCellName(1, brow)
			if err := f.SetSheetRow(BreakdownSheet, cell, &line); err != nil {
				return nil, err
			}
			brow++
		}
	}

	last := len(s.Shifts) + 1
	totalRow := last + 2
	totals := []any{"Итого", "", s.TotalHours, "", s.GrossWage, s.TaxDeduction, s.NetWage, "", ""}
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	if err := f.SetSheetRow(ShiftsSheet, cell, &totals); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(ShiftsSheet, fmt.Sprintf("A%d", totalRow+1), "Не выплачено"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(ShiftsSheet, fmt.Sprintf("G%d", totalRow+1), s.UnpaidNet); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(ShiftsSheet, "C2", fmt.Sprintf("G%d", totalRow+1), numStyle); err != nil {
		return nil, err
	}
	if brow > 2 {
		if err := f.SetCellStyle(BreakdownSheet, "C2", fmt.Sprintf("E%d", brow-1), numStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
