package domain

import (
	"context"
	"time"

	"shift-wage-bot/internal/model"
	"shift-wage-bot/internal/wage"
)

// ShiftWage — смена вместе с её расчётом.
type ShiftWage struct {
	Shift       model.Shift      `json:"shift"`
	Calculation wage.Calculation `json:"calculation"`
}

// MonthlySummary — итоги за месяц. Недельная переработка входит в расчёт
// каждой смены недели, поэтому в сумме может учитываться несколько раз.
type MonthlySummary struct {
	EmployeeID   int64       `json:"employeeId"`
	Year         int         `json:"year"`
	Month        time.Month  `json:"month"`
	Shifts       []ShiftWage `json:"shifts"`
	TotalHours   float64     `json:"totalHours"`
	GrossWage    float64     `json:"grossWage"`
	TaxDeduction float64     `json:"taxDeduction"`
	NetWage      float64     `json:"netWage"`
	UnpaidNet    float64     `json:"unpaidNet"`
}

type WageService interface {
	CalculateShift(ctx context.Context, employeeID int64, shiftID string) (ShiftWage, error)
	MonthlySummary(ctx context.Context, employeeID int64, year int, month time.Month) (MonthlySummary, error)
}
