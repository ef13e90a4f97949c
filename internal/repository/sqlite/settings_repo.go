package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"shift-wage-bot/internal/model"
)

type SqliteSettingsRepo struct {
	db *sql.DB
}

func NewSqliteSettingsRepo(db *sql.DB) *SqliteSettingsRepo {
	return &SqliteSettingsRepo{db: db}
}

func (r *SqliteSettingsRepo) GetSettings(ctx context.Context, employeeID int64) (model.WageSettings, bool, error) {
	var s model.WageSettings
	err := r.db.QueryRowContext(ctx, `
SELECT hourly_wage, tax_percent, base_hours_weekday, base_hours_special, start_on_sunday, weekly_threshold, weekly_multiplier
FROM wage_settings WHERE employee_id = ?`, employeeID).Scan(
		&s.HourlyWage,
		&s.TaxDeductionPercent,
		&s.BaseHoursWeekday,
		&s.BaseHoursSpecialDay,
		&s.StartWorkOnSunday,
		&s.WeeklyOvertimeThresholdHours,
		&s.WeeklyOvertimeMultiplier,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WageSettings{}, false, nil
	}
	if err != nil {
		return model.WageSettings{}, false, err
	}
	return s, true, nil
}

func (r *SqliteSettingsRepo) SaveSettings(ctx context.Context, employeeID int64, s model.WageSettings) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO wage_settings (employee_id, hourly_wage, tax_percent, base_hours_weekday, base_hours_special, start_on_sunday, weekly_threshold, weekly_multiplier)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(employee_id) DO UPDATE SET
    hourly_wage = excluded.hourly_wage,
    tax_percent = excluded.tax_percent,
    base_hours_weekday = excluded.base_hours_weekday,
    base_hours_special = excluded.base_hours_special,
    start_on_sunday = excluded.start_on_sunday,
    weekly_threshold = excluded.weekly_threshold,
    weekly_multiplier = excluded.weekly_multiplier`,
		employeeID,
		s.HourlyWage,
		s.TaxDeductionPercent,
		s.BaseHoursWeekday,
		s.BaseHoursSpecialDay,
		s.StartWorkOnSunday,
		s.WeeklyOvertimeThresholdHours,
		s.WeeklyOvertimeMultiplier,
	)
	return err
}
