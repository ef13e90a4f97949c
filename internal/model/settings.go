package model

const (
	DefaultBaseHours                    = 8.0
	DefaultWeeklyOvertimeThresholdHours = 40.0
	DefaultWeeklyOvertimeMultiplier     = 1.5
)

// WageSettings — неизменяемые настройки расчёта, передаются в каждый вызов движка
type WageSettings struct {
	HourlyWage                   float64
	TaxDeductionPercent          float64
	BaseHoursWeekday             float64
	BaseHoursSpecialDay          float64
	StartWorkOnSunday            bool
	WeeklyOvertimeThresholdHours float64
	WeeklyOvertimeMultiplier     float64
}

func DefaultWageSettings() WageSettings {
	return WageSettings{
		BaseHoursWeekday:             DefaultBaseHours,
		BaseHoursSpecialDay:          DefaultBaseHours,
		WeeklyOvertimeThresholdHours: DefaultWeeklyOvertimeThresholdHours,
		WeeklyOvertimeMultiplier:     DefaultWeeklyOvertimeMultiplier,
	}
}

// WithWeeklyDefaults подставляет недельный порог и множитель, если они не заданы
func (s WageSettings) WithWeeklyDefaults() WageSettings {
	if s.WeeklyOvertimeThresholdHours == 0 {
		s.WeeklyOvertimeThresholdHours = DefaultWeeklyOvertimeThresholdHours
	}
	if s.WeeklyOvertimeMultiplier == 0 {
		s.WeeklyOvertimeMultiplier = DefaultWeeklyOvertimeMultiplier
	}
	return s
}
