package sqlite

import (
	"database/sql"
	"fmt"
)

const createShiftsTable = `
CREATE TABLE IF NOT EXISTS shifts (
    id TEXT PRIMARY KEY,
    employee_id INTEGER NOT NULL,
    start_ts INTEGER NOT NULL,
    end_ts INTEGER NOT NULL,
    special_override BOOLEAN NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    paid BOOLEAN NOT NULL DEFAULT 0,
    CHECK (end_ts > start_ts)
);
`

const createShiftsIndex = `
CREATE INDEX IF NOT EXISTS idx_shifts_employee_start ON shifts (employee_id, start_ts);
`

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    chat_id INTEGER NOT NULL,
    role TEXT NOT NULL
);
`

const createOvertimeRulesTable = `
CREATE TABLE IF NOT EXISTS overtime_rules (
    id TEXT PRIMARY KEY,
    employee_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    daily_threshold REAL NOT NULL,
    multiplier REAL NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT 1
);
`

const createWageSettingsTable = `
CREATE TABLE IF NOT EXISTS wage_settings (
    employee_id INTEGER PRIMARY KEY,
    hourly_wage REAL NOT NULL,
    tax_percent REAL NOT NULL,
    base_hours_weekday REAL NOT NULL,
    base_hours_special REAL NOT NULL,
    start_on_sunday BOOLEAN NOT NULL DEFAULT 0,
    weekly_threshold REAL NOT NULL DEFAULT 40,
    weekly_multiplier REAL NOT NULL DEFAULT 1.5
);
`

func Migrate(db *sql.DB) error {
	for _, stmt := range []string{
		createShiftsTable,
		createShiftsIndex,
		createEmployeesTable,
		createOvertimeRulesTable,
		createWageSettingsTable,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
