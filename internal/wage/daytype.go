package wage

import (
	"time"

	"shift-wage-bot/internal/model"
)

// FestiveCalendar — точка расширения для праздничных дней.
type FestiveCalendar interface {
	IsFestiveDay(date time.Time) bool
}

// NoFestiveDays — календарь без праздников, используется по умолчанию.
type NoFestiveDays struct{}

func (NoFestiveDays) IsFestiveDay(time.Time) bool { return false }

// IsSpecialWorkDay: при неделе с воскресенья особый день — суббота, при неделе с понедельника — воскресенье.
func IsSpecialWorkDay(date time.Time, startWorkOnSunday bool) bool {
	if startWorkOnSunday {
		return date.Weekday() == time.Saturday
	}
	return date.Weekday() == time.Sunday
}

// SpecialWeekday возвращает особый день недели для настройки начала недели.
func SpecialWeekday(startWorkOnSunday bool) time.Weekday {
	if startWorkOnSunday {
		return time.Saturday
	}
	return time.Sunday
}

func (e Engine) festive() FestiveCalendar {
	if e.Festive == nil {
		return NoFestiveDays{}
	}
	return e.Festive
}

// IsFestiveDay делегирует подключённому календарю праздников.
func (e Engine) IsFestiveDay(date time.Time) bool {
	return e.festive().IsFestiveDay(date)
}

// Classify определяет статус всей смены целиком: смена, заходящая за полночь
// в особый день, считается особой полностью, без разбиения по часам.
func (e Engine) Classify(shift model.Shift, startWorkOnSunday bool) (special, festive bool) {
	festive = e.IsFestiveDay(shift.StartTime) || e.IsFestiveDay(shift.EndTime)
	special = IsSpecialWorkDay(shift.StartTime, startWorkOnSunday) ||
		IsSpecialWorkDay(shift.EndTime, startWorkOnSunday) ||
		festive ||
		shift.IsSpecialDayOverride
	return special, festive
}
