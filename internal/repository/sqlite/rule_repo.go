package sqlite

import (
	"context"
	"database/sql"

	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/model"
)

type SqliteRuleRepo struct {
	db *sql.DB
}

func NewSqliteRuleRepo(db *sql.DB) *SqliteRuleRepo {
	return &SqliteRuleRepo{db: db}
}

func (r *SqliteRuleRepo) AddRule(ctx context.Context, rule model.OvertimeRule) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO overtime_rules (id, employee_id, name, daily_threshold, multiplier, is_active) VALUES (?, ?, ?, ?, ?, ?)`,
		rule.ID, rule.EmployeeID, rule.Name, rule.DailyThreshold, rule.Multiplier, rule.IsActive,
	)
	return err
}

// GetActiveRules не сортирует результат: порядок задаёт движок расчёта.
func (r *SqliteRuleRepo) GetActiveRules(ctx context.Context, employeeID int64) ([]model.OvertimeRule, error) {
	return r.query(ctx, `SELECT id, employee_id, name, daily_threshold, multiplier, is_active FROM overtime_rules WHERE employee_id = ? AND is_active = 1`, employeeID)
}

func (r *SqliteRuleRepo) GetRules(ctx context.Context, employeeID int64) ([]model.OvertimeRule, error) {
	return r.query(ctx, `SELECT id, employee_id, name, daily_threshold, multiplier, is_active FROM overtime_rules WHERE employee_id = ? ORDER BY daily_threshold, id`, employeeID)
}

func (r *SqliteRuleRepo) SetRuleActive(ctx context.Context, employeeID int64, id string, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE overtime_rules SET is_active = ? WHERE employee_id = ? AND id = ?`, active, employeeID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}

func (r *SqliteRuleRepo) DeleteRule(ctx context.Context, employeeID int64, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM overtime_rules WHERE employee_id = ? AND id = ?`, employeeID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRuleNotFound
	}
	return nil
}

func (r *SqliteRuleRepo) query(ctx context.Context, q string, args ...any) ([]model.OvertimeRule, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []model.OvertimeRule
	for rows.Next() {
		var rule model.OvertimeRule
		if err := rows.Scan(&rule.ID, &rule.EmployeeID, &rule.Name, &rule.DailyThreshold, &rule.Multiplier, &rule.IsActive); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
