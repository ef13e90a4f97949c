package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/model"
)

type RuleService struct {
	Repo domain.RuleRepo
}

func NewRuleService(repo domain.RuleRepo) *RuleService {
	return &RuleService{Repo: repo}
}

// ListRules возвращает все правила сотрудника по возрастанию порога.
func (s *RuleService) ListRules(ctx context.Context, employeeID int64) ([]model.OvertimeRule, error) {
	rules, err := s.Repo.GetRules(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].DailyThreshold < rules[j].DailyThreshold
	})
	return rules, nil
}

func (s *RuleService) AddRule(ctx context.Context, employeeID int64, name string, threshold, multiplier float64) (model.OvertimeRule, error) {
	if threshold < 0 || threshold > 24 {
		return model.OvertimeRule{}, fmt.Errorf("%w: threshold must be within 0-24 hours", domain.ErrInvalidRule)
	}
	if multiplier <= 0 {
		return model.OvertimeRule{}, fmt.Errorf("%w: multiplier must be positive", domain.ErrInvalidRule)
	}
	if name == "" {
		name = "x" + strconv.FormatFloat(multiplier, 'f', -1, 64) + " после " + strconv.FormatFloat(threshold, 'f', -1, 64) + " ч"
	}
	rule := model.OvertimeRule{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		Name:           name,
		DailyThreshold: threshold,
		Multiplier:     multiplier,
		IsActive:       true,
	}
	if err := s.Repo.AddRule(ctx, rule); err != nil {
		return model.OvertimeRule{}, fmt.Errorf("add rule: %w", err)
	}
	return rule, nil
}

// RuleAt возвращает правило по номеру из ListRules (с единицы).
func (s *RuleService) RuleAt(ctx context.Context, employeeID int64, n int) (model.OvertimeRule, error) {
	rules, err := s.ListRules(ctx, employeeID)
	if err != nil {
		return model.OvertimeRule{}, err
	}
	if n < 1 || n > len(rules) {
		return model.OvertimeRule{}, domain.ErrRuleNotFound
	}
	return rules[n-1], nil
}

func (s *RuleService) DeleteRule(ctx context.Context, employeeID int64, id string) error {
	return s.Repo.DeleteRule(ctx, employeeID, id)
}

func (s *RuleService) SetActive(ctx context.Context, employeeID int64, id string, active bool) error {
	return s.Repo.SetRuleActive(ctx, employeeID, id, active)
}
