package model

import "time"

type Shift struct {
	ID                   string
	EmployeeID           int64
	StartTime            time.Time
	EndTime              time.Time
	IsSpecialDayOverride bool
	Notes                string
	Paid                 bool
}

// DurationHours возвращает длительность смены в часах (дробная часть сохраняется)
func (s Shift) DurationHours() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}

// Valid проверяет инвариант EndTime > StartTime
func (s Shift) Valid() bool {
	return s.EndTime.After(s.StartTime)
}
