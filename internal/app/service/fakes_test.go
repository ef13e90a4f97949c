package service

import (
	"context"
	"sync"
	"time"

	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/model"
	"shift-wage-bot/internal/wage"
)

type fakeShiftRepo struct {
	mu        sync.Mutex
	shifts    []model.Shift
	weekCalls int
	// dropFromWeek имитирует хранилище, не вернувшее смену в недельной выборке
	dropFromWeek string
}

func (r *fakeShiftRepo) AddShift(_ context.Context, s model.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts = append(r.shifts, s)
	return nil
}

func (r *fakeShiftRepo) GetShift(_ context.Context, employeeID int64, id string) (model.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.ID == id {
			return s, nil
		}
	}
	return model.Shift{}, domain.ErrShiftNotFound
}

func (r *fakeShiftRepo) GetShifts(_ context.Context, employeeID int64, from, to time.Time) ([]model.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && !s.StartTime.Before(from) && s.StartTime.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) GetShiftsInWeek(ctx context.Context, employeeID int64, weekOf time.Time) ([]model.Shift, error) {
	r.mu.Lock()
	r.weekCalls++
	r.mu.Unlock()
	from, to := wage.ISOWeekBounds(weekOf)
	shifts, err := r.GetShifts(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	out := shifts[:0]
	for _, s := range shifts {
		if s.ID != r.dropFromWeek {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) DeleteShift(_ context.Context, employeeID int64, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.shifts {
		if s.EmployeeID == employeeID && s.ID == id {
			r.shifts = append(r.shifts[:i], r.shifts[i+1:]...)
			return nil
		}
	}
	return domain.ErrShiftNotFound
}

func (r *fakeShiftRepo) MarkShiftsPaid(_ context.Context, employeeID int64, from, to time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.shifts {
		if s.EmployeeID == employeeID && !s.StartTime.Before(from) && s.StartTime.Before(to) {
			r.shifts[i].Paid = true
		}
	}
	return nil
}

type fakeRuleRepo struct {
	mu    sync.Mutex
	rules []model.OvertimeRule
	err   error
}

func (r *fakeRuleRepo) GetActiveRules(_ context.Context, employeeID int64) ([]model.OvertimeRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []model.OvertimeRule
	for _, rule := range r.rules {
		if rule.EmployeeID == employeeID && rule.IsActive {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) GetRules(_ context.Context, employeeID int64) ([]model.OvertimeRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.OvertimeRule
	for _, rule := range r.rules {
		if rule.EmployeeID == employeeID {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) AddRule(_ context.Context, rule model.OvertimeRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule)
	return nil
}

func (r *fakeRuleRepo) SetRuleActive(_ context.Context, employeeID int64, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rule := range r.rules {
		if rule.EmployeeID == employeeID && rule.ID == id {
			r.rules[i].IsActive = active
			return nil
		}
	}
	return domain.ErrRuleNotFound
}

func (r *fakeRuleRepo) DeleteRule(_ context.Context, employeeID int64, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rule := range r.rules {
		if rule.EmployeeID == employeeID && rule.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return domain.ErrRuleNotFound
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[int64]model.WageSettings
}

func (r *fakeSettingsRepo) GetSettings(_ context.Context, employeeID int64) (model.WageSettings, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[employeeID]
	return s, ok, nil
}

func (r *fakeSettingsRepo) SaveSettings(_ context.Context, employeeID int64, s model.WageSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		r.settings = make(map[int64]model.WageSettings)
	}
	r.settings[employeeID] = s
	return nil
}
