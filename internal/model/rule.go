package model

type OvertimeRule struct {
	ID             string
	EmployeeID     int64
	Name           string
	DailyThreshold float64
	Multiplier     float64
	IsActive       bool
}
