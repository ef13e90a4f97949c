package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/model"
)

type ShiftServiceImpl struct {
	Repo domain.ShiftRepo
}

func NewShiftService(repo domain.ShiftRepo) *ShiftServiceImpl {
	return &ShiftServiceImpl{Repo: repo}
}

// AddShift проверяет, что смена заканчивается позже начала, и присваивает ID.
func (s *ShiftServiceImpl) AddShift(ctx context.Context, shift model.Shift) (model.Shift, error) {
	if !shift.Valid() {
		return model.Shift{}, fmt.Errorf("%w: %s - %s", domain.ErrInvalidShift,
			shift.StartTime.Format("02.01.2006 15:04"), shift.EndTime.Format("02.01.2006 15:04"))
	}
	if shift.ID == "" {
		shift.ID = uuid.NewString()
	}
	if err := s.Repo.AddShift(ctx, shift); err != nil {
		return model.Shift{}, fmt.Errorf("add shift: %w", err)
	}
	return shift, nil
}

func (s *ShiftServiceImpl) GetShift(ctx context.Context, employeeID int64, id string) (model.Shift, error) {
	return s.Repo.GetShift(ctx, employeeID, id)
}

func (s *ShiftServiceImpl) GetShifts(ctx context.Context, employeeID int64, from, to time.Time) ([]model.Shift, error) {
	return s.Repo.GetShifts(ctx, employeeID, from, to)
}

func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, employeeID int64, id string) error {
	return s.Repo.DeleteShift(ctx, employeeID, id)
}

func (s *ShiftServiceImpl) MarkShiftsPaid(ctx context.Context, employeeID int64, from, to time.Time) error {
	return s.Repo.MarkShiftsPaid(ctx, employeeID, from, to)
}

// MarkAllPaid отмечает выплаченными все смены сотрудника.
func (s *ShiftServiceImpl) MarkAllPaid(ctx context.Context, employeeID int64) error {
	from := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Now().AddDate(10, 0, 0)
	return s.Repo.MarkShiftsPaid(ctx, employeeID, from, to)
}
