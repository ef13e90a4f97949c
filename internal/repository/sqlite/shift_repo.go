package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shift-wage-bot/internal/domain"
	"shift-wage-bot/internal/model"
	"shift-wage-bot/internal/wage"
)

type SqliteShiftRepo struct {
	db  *sql.DB
	loc *time.Location
}

// NewSqliteShiftRepo: время хранится в unix-секундах и восстанавливается в поясе loc.
func NewSqliteShiftRepo(db *sql.DB, loc *time.Location) *SqliteShiftRepo {
	if loc == nil {
		loc = time.Local
	}
	return &SqliteShiftRepo{db: db, loc: loc}
}

const shiftColumns = `id, employee_id, start_ts, end_ts, special_override, notes, paid`

func (r *SqliteShiftRepo) AddShift(ctx context.Context, shift model.Shift) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shifts (`+shiftColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		shift.ID,
		shift.EmployeeID,
		shift.StartTime.Unix(),
		shift.EndTime.Unix(),
		shift.IsSpecialDayOverride,
		shift.Notes,
		shift.Paid,
	)
	return err
}

func (r *SqliteShiftRepo) GetShift(ctx context.Context, employeeID int64, id string) (model.Shift, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE employee_id = ? AND id = ?`, employeeID, id)
	s, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Shift{}, domain.ErrShiftNotFound
	}
	return s, err
}

// GetShifts возвращает смены, начавшиеся в [from, to), по времени начала.
func (r *SqliteShiftRepo) GetShifts(ctx context.Context, employeeID int64, from, to time.Time) ([]model.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE employee_id = ? AND start_ts >= ? AND start_ts < ? ORDER BY start_ts`,
		employeeID,
		from.Unix(),
		to.Unix(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *SqliteShiftRepo) GetShiftsInWeek(ctx context.Context, employeeID int64, weekOf time.Time) ([]model.Shift, error) {
	from, to := wage.ISOWeekBounds(weekOf.In(r.loc))
	return r.GetShifts(ctx, employeeID, from, to)
}

func (r *SqliteShiftRepo) DeleteShift(ctx context.Context, employeeID int64, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE employee_id = ? AND id = ?`, employeeID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrShiftNotFound
	}
	return nil
}

func (r *SqliteShiftRepo) MarkShiftsPaid(ctx context.Context, employeeID int64, from, to time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE shifts SET paid = 1 WHERE employee_id = ? AND start_ts >= ? AND start_ts < ?`,
		employeeID,
		from.Unix(),
		to.Unix(),
	)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SqliteShiftRepo) scan(row scanner) (model.Shift, error) {
	var (
		s              model.Shift
		startTS, endTS int64
	)
	if err := row.Scan(&s.ID, &s.EmployeeID, &startTS, &endTS, &s.IsSpecialDayOverride, &s.Notes, &s.Paid); err != nil {
		return model.Shift{}, err
	}
	s.StartTime = time.Unix(startTS, 0).In(r.loc)
	s.EndTime = time.Unix(endTS, 0).In(r.loc)
	return s, nil
}
