package domain

import (
	"context"

	"shift-wage-bot/internal/model"
)

type RuleRepo interface {
	// GetActiveRules возвращает активные правила в произвольном порядке
	GetActiveRules(ctx context.Context, employeeID int64) ([]model.OvertimeRule, error)
	GetRules(ctx context.Context, employeeID int64) ([]model.OvertimeRule, error)
	AddRule(ctx context.Context, rule model.OvertimeRule) error
	SetRuleActive(ctx context.Context, employeeID int64, id string, active bool) error
	DeleteRule(ctx context.Context, employeeID int64, id string) error
}
