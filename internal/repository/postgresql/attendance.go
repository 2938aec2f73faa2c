package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/sdm-erp/erp-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.Repository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (user_id, unit_id, date, clock_in, is_late)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, unit_id, date, clock_in, clock_out, is_late, created_at
	`

	var created attendance.Record
	err := q.QueryRow(ctx, query,
		rec.UserID, rec.UnitID, rec.Date, rec.ClockIn, rec.IsLate,
	).Scan(
		&created.ID, &created.UserID, &created.UnitID, &created.Date,
		&created.ClockIn, &created.ClockOut, &created.IsLate, &created.CreatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// GetOpenByUserDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetOpenByUserDate(ctx context.Context, userID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, unit_id, date, clock_in, clock_out, is_late, created_at
		FROM attendance
		WHERE user_id = $1 AND date = $2 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&rec.ID, &rec.UserID, &rec.UnitID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut, &rec.IsLate, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return rec, nil
}

// CompleteClockOut implements attendance.Repository.
func (r *attendanceRepositoryImpl) CompleteClockOut(ctx context.Context, id string, clockOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET clock_out = $1
		WHERE id = $2 AND clock_out IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, clockOut, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to complete clock out: %w", err)
	}

	return nil
}

// ListByUserMonth implements attendance.Repository. The month key is matched
// against the record date with to_char, mirroring the "YYYY-MM" format used
// across the app.
func (r *attendanceRepositoryImpl) ListByUserMonth(ctx context.Context, userID, month string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, unit_id, date, clock_in, clock_out, is_late, created_at
		FROM attendance
		WHERE user_id = $1 AND to_char(date, 'YYYY-MM') = $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by month: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.unit_id, a.date, a.clock_in, a.clock_out, a.is_late, a.created_at, u.name
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.date = $1
		ORDER BY a.clock_in
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.UnitID, &rec.Date,
			&rec.ClockIn, &rec.ClockOut, &rec.IsLate, &rec.CreatedAt, &rec.UserName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.UnitID, &rec.Date,
			&rec.ClockIn, &rec.ClockOut, &rec.IsLate, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
