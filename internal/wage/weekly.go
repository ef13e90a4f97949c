package wage

import (
	"time"

	"shift-wage-bot/internal/model"
)

// ISOWeekBounds возвращает границы ISO-недели (с понедельника), в которую попадает t,
// в часовом поясе t: [start, end).
//
// Неделя здесь всегда ISO и не зависит от StartWorkOnSunday, в отличие от
// классификации особых дней.
func ISOWeekBounds(t time.Time) (time.Time, time.Time) {
	offset := (int(t.Weekday()) + 6) % 7
	start := time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 7)
}

func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// WeeklyHours суммирует длительность смен, начавшихся в ISO-неделе смены shift.
func WeeklyHours(shift model.Shift, shiftsInWeek []model.Shift) float64 {
	var total float64
	for _, s := range shiftsInWeek {
		if sameISOWeek(s.StartTime, shift.StartTime) {
			total += s.EndTime.Sub(s.StartTime).Hours()
		}
	}
	return total
}

// CalculateWeeklyOvertime добавляет строку недельной переработки, если сумма
// часов за неделю превышает порог.
//
// Сумма считается от всех часов недели, а не от часов сверх уже оплаченной
// дневной переработки, поэтому часы могут учитываться дважды.
func CalculateWeeklyOvertime(shift model.Shift, shiftsInWeek []model.Shift, settings model.WageSettings) (Breakdown, bool) {
	settings = settings.WithWeeklyDefaults()
	total := WeeklyHours(shift, shiftsInWeek)
	if total <= settings.WeeklyOvertimeThresholdHours {
		return Breakdown{}, false
	}
	hours := total - settings.WeeklyOvertimeThresholdHours
	return Breakdown{
		Hours:  hours,
		Rate:   settings.WeeklyOvertimeMultiplier,
		Amount: hours * settings.HourlyWage * settings.WeeklyOvertimeMultiplier,
		Type:   TypeWeeklyOvertime,
	}, true
}
