package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/model"
	"shift-wage-bot/internal/wage"
	"shift-wage-bot/pkg/logger"
	"shift-wage-bot/pkg/workerpool"
)

// WageServiceImpl загружает правила, настройки и смены недели параллельно
// через AsyncService и передаёт их в синхронный движок расчёта.
type WageServiceImpl struct {
	Shifts   domain.ShiftRepo
	Rules    domain.RuleRepo
	Settings *SettingsService
	Async    *AsyncService
	Engine   wage.Engine
	Location *time.Location
}

var _ domain.WageService = (*WageServiceImpl)(nil)

func (s *WageServiceImpl) loc() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

type wageInputs struct {
	rules    []model.OvertimeRule
	settings model.WageSettings
}

func (s *WageServiceImpl) fetchInputs(ctx context.Context, employeeID int64) (<-chan wageInputs, <-chan error) {
	out := make(chan wageInputs, 1)
	errc := make(chan error, 1)

	rulesCh := s.Async.Go(ctx, func() (any, error) {
		return s.Rules.GetActiveRules(ctx, employeeID)
	})
	settingsCh := s.Async.Go(ctx, func() (any, error) {
		return s.Settings.GetSettings(ctx, employeeID)
	})

	go func() {
		rules, err := Await(ctx, rulesCh)
		if err != nil {
			errc <- fmt.Errorf("load overtime rules: %w", err)
			return
		}
		settings, err := Await(ctx, settingsCh)
		if err != nil {
			errc <- fmt.Errorf("load wage settings: %w", err)
			return
		}
		out <- wageInputs{rules: rules.([]model.OvertimeRule), settings: settings.(model.WageSettings)}
	}()
	return out, errc
}

func awaitInputs(ctx context.Context, out <-chan wageInputs, errc <-chan error) (wageInputs, error) {
	select {
	case in := <-out:
		return in, nil
	case err := <-errc:
		return wageInputs{}, err
	case <-ctx.Done():
		return wageInputs{}, ctx.Err()
	}
}

func (s *WageServiceImpl) CalculateShift(ctx context.Context, employeeID int64, shiftID string) (domain.ShiftWage, error) {
	shift, err := s.Shifts.GetShift(ctx, employeeID, shiftID)
	if err != nil {
		return domain.ShiftWage{}, err
	}
	if !shift.Valid() {
		return domain.ShiftWage{}, fmt.Errorf("%w: shift %s", domain.ErrInvalidShift, shift.ID)
	}

	inputsCh, errc := s.fetchInputs(ctx, employeeID)
	weekCh := s.Async.Go(ctx, func() (any, error) {
		return s.Shifts.GetShiftsInWeek(ctx, employeeID, shift.StartTime)
	})

	in, err := awaitInputs(ctx, inputsCh, errc)
	if err != nil {
		return domain.ShiftWage{}, err
	}
	week, err := Await(ctx, weekCh)
	if err != nil {
		return domain.ShiftWage{}, fmt.Errorf("load week shifts: %w", err)
	}

	calc := s.Engine.Calculate(shift, in.rules, in.settings, ensureIncluded(week.([]model.Shift), shift))
	logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"shift_id":    shift.ID,
		"hours":       calc.TotalHours,
		"gross":       calc.GrossWage,
	}).Debug("shift wage calculated")
	return domain.ShiftWage{Shift: shift, Calculation: calc}, nil
}

// MonthlySummary считает все смены, начавшиеся в указанном месяце.
func (s *WageServiceImpl) MonthlySummary(ctx context.Context, employeeID int64, year int, month time.Month) (domain.MonthlySummary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, s.loc())
	to := from.AddDate(0, 1, 0)

	inputsCh, errc := s.fetchInputs(ctx, employeeID)
	shifts, err := s.Shifts.GetShifts(ctx, employeeID, from, to)
	if err != nil {
		return domain.MonthlySummary{}, fmt.Errorf("load month shifts: %w", err)
	}

	// смены недели загружаются по одной на каждую ISO-неделю месяца
	weekChans := make(map[int64]<-chan workerpool.Result)
	for _, sh := range shifts {
		key := weekKey(sh)
		if _, ok := weekChans[key]; ok {
			continue
		}
		weekOf := sh.StartTime
		weekChans[key] = s.Async.Go(ctx, func() (any, error) {
			return s.Shifts.GetShiftsInWeek(ctx, employeeID, weekOf)
		})
	}

	in, err := awaitInputs(ctx, inputsCh, errc)
	if err != nil {
		return domain.MonthlySummary{}, err
	}
	weeks := make(map[int64][]model.Shift, len(weekChans))
	for key, ch := range weekChans {
		v, err := Await(ctx, ch)
		if err != nil {
			return domain.MonthlySummary{}, fmt.Errorf("load week shifts: %w", err)
		}
		weeks[key] = v.([]model.Shift)
	}

	summary := domain.MonthlySummary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Shifts:     make([]domain.ShiftWage, 0, len(shifts)),
	}
	for _, sh := range shifts {
		if !sh.Valid() {
			logger.WithFields(logrus.Fields{"employee_id": employeeID, "shift_id": sh.ID}).Warn("skipping shift with non-positive duration")
			continue
		}
		calc := s.Engine.Calculate(sh, in.rules, in.settings, ensureIncluded(weeks[weekKey(sh)], sh))
		summary.Shifts = append(summary.Shifts, domain.ShiftWage{Shift: sh, Calculation: calc})
		summary.TotalHours += calc.TotalHours
		summary.GrossWage += calc.GrossWage
		summary.TaxDeduction += calc.TaxDeduction
		summary.NetWage += calc.NetWage
		if !sh.Paid {
			summary.UnpaidNet += calc.NetWage
		}
	}
	return summary, nil
}

func weekKey(sh model.Shift) int64 {
	start, _ := wage.ISOWeekBounds(sh.StartTime)
	return start.Unix()
}

// ensureIncluded добавляет смену в набор недели, если хранилище её не вернуло:
// иначе недельная сумма будет занижена.
func ensureIncluded(week []model.Shift, shift model.Shift) []model.Shift {
	for _, s := range week {
		if s.ID == shift.ID {
			return week
		}
	}
	out := make([]model.Shift, 0, len(week)+1)
	out = append(out, week...)
	return append(out, shift)
}
