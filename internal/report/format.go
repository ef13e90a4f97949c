package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/model"
	"shift-wage-bot/internal/wage"
)

// Money округляет сумму до копеек только для отображения.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func Hours(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func Rate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

var breakdownLabels = map[wage.BreakdownType]string{
	wage.TypeRegular:        "Обычные часы",
	wage.TypeSpecial:        "Особый день",
	wage.TypeOvertime:       "Переработка",
	wage.TypeWeeklyOvertime: "Недельная переработка",
}

func BreakdownLabel(t wage.BreakdownType) string {
	if l, ok := breakdownLabels[t]; ok {
		return l
	}
	return string(t)
}

var ruMonths = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return ruMonths[m-1]
}

func ShiftPeriod(s model.Shift) string {
	end := s.EndTime.Format("15:04")
	if s.EndTime.YearDay() != s.StartTime.YearDay() || s.EndTime.Year() != s.StartTime.Year() {
		end = s.EndTime.Format("02.01 15:04")
	}
	return s.StartTime.Format("02.01.2006 15:04") + "–" + end
}

// FormatCalculation — текст расчёта смены для сообщения в Telegram.
func FormatCalculation(sw domain.ShiftWage) string {
	var b strings.Builder
	c := sw.Calculation
	fmt.Fprintf(&b, "Смена %s (%s ч)", ShiftPeriod(sw.Shift), Hours(c.TotalHours))
	if c.IsFestiveDay {
		b.WriteString(" · праздник")
	} else if c.IsSpecialDay {
		b.WriteString(" · особый день")
	}
	b.WriteString("\n")
	for _, br := range c.Breakdowns {
		fmt.Fprintf(&b, "  %s: %s ч × %s = %s\n", BreakdownLabel(br.Type), Hours(br.Hours), Rate(br.Rate), Money(br.Amount))
	}
	fmt.Fprintf(&b, "Начислено: %s\n", Money(c.GrossWage))
	fmt.Fprintf(&b, "Налог: %s\n", Money(c.TaxDeduction))
	fmt.Fprintf(&b, "К выплате: %s", Money(c.NetWage))
	if sw.Shift.Notes != "" {
		fmt.Fprintf(&b, "\nЗаметка: %s", sw.Shift.Notes)
	}
	return b.String()
}

// FormatSummary — итоги месяца для сообщения в Telegram.
func FormatSummary(s domain.MonthlySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Зарплата за %s %d\n", MonthName(s.Month), s.Year)
	if len(s.Shifts) == 0 {
		b.WriteString("Смен нет.")
		return b.String()
	}
	for _, sw := range s.Shifts {
		mark := ""
		if sw.Calculation.IsSpecialDay {
			mark = " ★"
		}
		if sw.Shift.Paid {
			mark += " ✓"
		}
		fmt.Fprintf(&b, "%s  %s ч  %s%s\n", sw.Shift.StartTime.Format("02.01"), Hours(sw.Calculation.TotalHours), Money(sw.Calculation.NetWage), mark)
	}
	fmt.Fprintf(&b, "\nСмен: %d, часов: %s\n", len(s.Shifts), Hours(s.TotalHours))
	fmt.Fprintf(&b, "Начислено: %s\n", Money(s.GrossWage))
	fmt.Fprintf(&b, "Налог: %s\n", Money(s.TaxDeduction))
	fmt.Fprintf(&b, "К выплате: %s\n", Money(s.NetWage))
	fmt.Fprintf(&b, "Не выплачено: %s", Money(s.UnpaidNet))
	return b.String()
}

// FormatSettings — текущие настройки расчёта.
func FormatSettings(s model.WageSettings) string {
	weekStart := "понедельник"
	if s.StartWorkOnSunday {
		weekStart = "воскресенье"
	}
	special := "воскресенье"
	if wage.SpecialWeekday(s.StartWorkOnSunday) == time.Saturday {
		special = "суббота"
	}
	return fmt.Sprintf(
		"Ставка в час (wage): %s\nНалог, %% (tax): %s\nБазовые часы (base): %s\nБазовые часы в особый день (basespecial): %s\n"+
			"Неделя начинается (sunday): %s, особый день: %s\nНедельный порог (weekly): %s ч, множитель (weeklyrate): %s",
		Money(s.HourlyWage),
		Rate(s.TaxDeductionPercent),
		Hours(s.BaseHoursWeekday),
		Hours(s.BaseHoursSpecialDay),
		weekStart, special,
		Hours(s.WeeklyOvertimeThresholdHours),
		Rate(s.WeeklyOvertimeMultiplier),
	)
}

// FormatRules — нумерованный список правил переработки.
func FormatRules(rules []model.OvertimeRule) string {
	if len(rules) == 0 {
		return "Правил переработки нет. Добавьте: /addrule 8 1.25"
	}
	var b strings.Builder
	b.WriteString("Правила переработки:\n")
	for i, r := range rules {
		state := "вкл"
		if !r.IsActive {
			state = "выкл"
		}
		fmt.Fprintf(&b, "%d. %s: после %s ч × %s (%s)\n", i+1, r.Name, Hours(r.DailyThreshold), Rate(r.Multiplier), state)
	}
	return strings.TrimRight(b.String(), "\n")
}
