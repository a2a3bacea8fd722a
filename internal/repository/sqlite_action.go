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

// SQLiteActionRepo implements ActionRepo. Rows are append-only; the
// auto-increment id doubles as the per-session ordering key. Revoked
// actions are deleted, never flagged, so every read reflects the
// surviving log.
type SQLiteActionRepo struct {
	db db.DBTX
}

// NewSQLiteActionRepo creates a new SQLiteActionRepo.
func NewSQLiteActionRepo(dbtx db.DBTX) *SQLiteActionRepo {
	return &SQLiteActionRepo{db: dbtx}
}

func (r *SQLiteActionRepo) Append(ctx context.Context, a *domain.Action) (int64, error) {
	query := `INSERT INTO action_logs (session_id, action_type, break_type, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?)`
	var breakType any
	if a.BreakType != nil {
		breakType = string(*a.BreakType)
	}
	res, err := r.db.ExecContext(ctx, query,
		a.SessionID,
		string(a.Type),
		breakType,
		a.Timestamp.Format(time.RFC3339),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("appending action: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading appended action id: %w", err)
	}
	a.ID = id
	return id, nil
}

func (r *SQLiteActionRepo) GetByID(ctx context.Context, id int64) (*domain.Action, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, session_id, action_type, break_type, timestamp, created_at
		 FROM action_logs WHERE id = ?`, id)
	a, err := r.scanAction(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("action %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteActionRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.Action, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, action_type, break_type, timestamp, created_at
		 FROM action_logs WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}
	defer rows.Close()

	var actions []*domain.Action
	for rows.Next() {
		a, err := r.scanAction(rows.Scan)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating actions: %w", err)
	}
	return actions, nil
}

func (r *SQLiteActionRepo) Last(ctx context.Context, sessionID string) (*domain.Action, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, session_id, action_type, break_type, timestamp, created_at
		 FROM action_logs WHERE session_id = ? ORDER BY id DESC LIMIT 1`, sessionID)
	a, err := r.scanAction(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("last action for session %s: %w", sessionID, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteActionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM action_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting action: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting action: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("action %d: %w", id, ErrNotFound)
	}
	return nil
}

// scanAction reads one action row. A timestamp that no longer parses is
// kept as the zero time: the action still orders and replays, but its
// interval is excluded from totals with a warning instead of silently
// counting as zero duration.
func (r *SQLiteActionRepo) scanAction(scan func(dest ...any) error) (*domain.Action, error) {
	var a domain.Action
	var actionType, timestampStr, createdAtStr string
	var breakType sql.NullString

	if err := scan(&a.ID, &a.SessionID, &actionType, &breakType, &timestampStr, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning action: %w", err)
	}

	a.Type = domain.ActionType(actionType)
	if breakType.Valid {
		bt := domain.BreakType(breakType.String)
		a.BreakType = &bt
	}
	if ts, err := timecalc.ParseTime(timestampStr); err == nil {
		a.Timestamp = ts
	}
	if ts, err := time.Parse(time.RFC3339, createdAtStr); err == nil {
		a.CreatedAt = ts
	}
	return &a, nil
}
