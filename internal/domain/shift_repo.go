package domain

import (
	"context"
	"time"

	"shift-wage-bot/internal/model"
)

type ShiftRepo interface {
	AddShift(ctx context.Context, shift model.Shift) error
	GetShift(ctx context.Context, employeeID int64, id string) (model.Shift, error)
	GetShifts(ctx context.Context, employeeID int64, from, to time.Time) ([]model.Shift, error)
	// GetShiftsInWeek возвращает смены, начавшиеся в ISO-неделе weekOf
	GetShiftsInWeek(ctx context.Context, employeeID int64, weekOf time.Time) ([]model.Shift, error)
	DeleteShift(ctx context.Context, employeeID int64, id string) error
	MarkShiftsPaid(ctx context.Context, employeeID int64, from, to time.Time) error
}
