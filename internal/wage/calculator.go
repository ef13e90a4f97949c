package wage

import (
	"shift-wage-bot/internal/model"
)

// Engine собирает расчёт смены. Нулевое значение готово к работе
// (праздничных дней нет). Безопасен для конкурентного использования.
type Engine struct {
	Festive FestiveCalendar
}

func NewEngine(festive FestiveCalendar) Engine {
	return Engine{Festive: festive}
}

// Calculate считает заработок за одну смену. Смена должна быть валидной
// (EndTime > StartTime), а shiftsInWeek должен содержать саму смену.
func (e Engine) Calculate(shift model.Shift, rules []model.OvertimeRule, settings model.WageSettings, shiftsInWeek []model.Shift) Calculation {
	totalHours := shift.DurationHours()
	special, festive := e.Classify(shift, settings.StartWorkOnSunday)

	breakdowns := CalculateTiers(totalHours, special, rules, settings)
	if weekly, ok := CalculateWeeklyOvertime(shift, shiftsInWeek, settings); ok {
		breakdowns = append(breakdowns, weekly)
	}

	var gross float64
	for _, b := range breakdowns {
		gross += b.Amount
	}
	tax := gross * (settings.TaxDeductionPercent / 100)

	return Calculation{
		TotalHours:   totalHours,
		GrossWage:    gross,
		TaxDeduction: tax,
		NetWage:      gross - tax,
		Breakdowns:   breakdowns,
		IsSpecialDay: special,
		IsFestiveDay: festive,
	}
}

// Calculate — расчёт движком без праздничного календаря.
func Calculate(shift model.Shift, rules []model.OvertimeRule, settings model.WageSettings, shiftsInWeek []model.Shift) Calculation {
	return Engine{}.Calculate(shift, rules, settings, shiftsInWeek)
}
