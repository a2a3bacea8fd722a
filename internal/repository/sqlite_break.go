package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/timecalc"
)

// SQLiteBreakRepo implements BreakRepo.
type SQLiteBreakRepo struct {
	db db.DBTX
}

// NewSQLiteBreakRepo creates a new SQLiteBreakRepo.
func NewSQLiteBreakRepo(dbtx db.DBTX) *SQLiteBreakRepo {
	return &SQLiteBreakRepo{db: dbtx}
}

func (r *SQLiteBreakRepo) Create(ctx context.Context, b *domain.BreakPeriod) (int64, error) {
	query := `INSERT INTO break_periods (session_id, break_type, start_time, end_time, duration_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		b.SessionID,
		string(b.BreakType),
		b.StartTime.Format(time.RFC3339),
		nullableTime(b.EndTime),
		nullableInt(b.DurationMinutes),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting break period: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading break period id: %w", err)
	}
	b.ID = id
	return id, nil
}

func (r *SQLiteBreakRepo) GetByID(ctx context.Context, id int64) (*domain.BreakPeriod, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, session_id, break_type, start_time, end_time, duration_minutes, created_at
		 FROM break_periods WHERE id = ?`, id)
	b, err := r.scanBreak(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("break period %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (r *SQLiteBreakRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.BreakPeriod, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, break_type, start_time, end_time, duration_minutes, created_at
		 FROM break_periods WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing break periods: %w", err)
	}
	defer rows.Close()

	var breaks []*domain.BreakPeriod
	for rows.Next() {
		b, err := r.scanBreak(rows.Scan)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating break periods: %w", err)
	}
	return breaks, nil
}

func (r *SQLiteBreakRepo) OpenBySession(ctx context.Context, sessionID string) (*domain.BreakPeriod, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, session_id, break_type, start_time, end_time, duration_minutes, created_at
		 FROM break_periods WHERE session_id = ? AND end_time IS NULL ORDER BY id DESC LIMIT 1`, sessionID)
	b, err := r.scanBreak(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("open break for session %s: %w", sessionID, ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (r *SQLiteBreakRepo) LastClosedBySession(ctx context.Context, sessionID string) (*domain.BreakPeriod, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, session_id, break_type, start_time, end_time, duration_minutes, created_at
		 FROM break_periods WHERE session_id = ? AND end_time IS NOT NULL ORDER BY id DESC LIMIT 1`, sessionID)
	b, err := r.scanBreak(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("closed break for session %s: %w", sessionID, ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (r *SQLiteBreakRepo) Close(ctx context.Context, id int64, end string, durationMinutes int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE break_periods SET end_time = ?, duration_minutes = ? WHERE id = ?`,
		end, durationMinutes, id)
	if err != nil {
		return fmt.Errorf("closing break period: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteBreakRepo) Reopen(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE break_periods SET end_time = NULL, duration_minutes = NULL WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("reopening break period: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteBreakRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM break_periods WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting break period: %w", err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("break period %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteBreakRepo) scanBreak(scan func(dest ...any) error) (*domain.BreakPeriod, error) {
	var b domain.BreakPeriod
	var breakType, startStr, createdAtStr string
	var endStr sql.NullString
	var duration sql.NullInt64

	if err := scan(&b.ID, &b.SessionID, &breakType, &startStr, &endStr, &duration, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning break period: %w", err)
	}

	b.BreakType = domain.BreakType(breakType)
	start, err := timecalc.ParseTime(startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing break start_time: %w", err)
	}
	b.StartTime = start
	if b.EndTime, err = parseNullableTime(endStr); err != nil {
		return nil, fmt.Errorf("parsing break end_time: %w", err)
	}
	if duration.Valid {
		d := int(duration.Int64)
		b.DurationMinutes = &d
	}
	if ts, err := time.Parse(time.RFC3339, createdAtStr); err == nil {
		b.CreatedAt = ts
	}
	return &b, nil
}
