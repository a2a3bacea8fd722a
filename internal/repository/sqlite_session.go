package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo over a DBTX, so the same
// code serves both direct reads and unit-of-work transactions.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkSession) error {
	query := `INSERT INTO work_sessions (id, date, start_time, end_time, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Date,
		nullableTime(s.StartTime),
		nullableTime(s.EndTime),
		string(s.Status),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.WorkSession, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, date, start_time, end_time, status, created_at, updated_at
		 FROM work_sessions WHERE id = ?`, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) GetByDate(ctx context.Context, date string) (*domain.WorkSession, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, date, start_time, end_time, status, created_at, updated_at
		 FROM work_sessions WHERE date = ?`, date)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.WorkSession) error {
	query := `UPDATE work_sessions
		SET start_time = ?, end_time = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableTime(s.StartTime),
		nullableTime(s.EndTime),
		string(s.Status),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating work session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("work session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM work_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkSession, error) {
	var s domain.WorkSession
	var status, createdAtStr, updatedAtStr string
	var startStr, endStr sql.NullString

	err := row.Scan(&s.ID, &s.Date, &startStr, &endStr, &status, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}

	s.Status = domain.State(status)
	if s.StartTime, err = parseNullableTime(startStr); err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	if s.EndTime, err = parseNullableTime(endStr); err != nil {
		return nil, fmt.Errorf("parsing end_time: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
