package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order. Statements are written
// to be idempotent; "duplicate column name" errors from re-run ALTER
// TABLE statements are tolerated.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One session row per calendar day. Status is denormalized for quick
	// lookup on load; the action log remains the source of truth and the
	// service layer keeps this column consistent with a replay of it.
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL UNIQUE,
		start_time TEXT,
		end_time   TEXT,
		status     TEXT NOT NULL DEFAULT 'not_started'
		           CHECK(status IN ('not_started','working','on_break','day_ended')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Append-only action log. The auto-increment id is the ordering key;
	// revoking an action deletes its row so replays only ever see the
	// surviving sequence.
	`CREATE TABLE IF NOT EXISTS action_logs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id  TEXT NOT NULL REFERENCES work_sessions(id) ON DELETE CASCADE,
		action_type TEXT NOT NULL
		            CHECK(action_type IN ('start_day','stop','continue','end_day','reset_day')),
		break_type  TEXT
		            CHECK(break_type IS NULL OR break_type IN ('lunch','coffee','general')),
		timestamp   TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_action_logs_session ON action_logs(session_id)`,

	`CREATE TABLE IF NOT EXISTS break_periods (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id       TEXT NOT NULL REFERENCES work_sessions(id) ON DELETE CASCADE,
		break_type       TEXT NOT NULL
		                 CHECK(break_type IN ('lunch','coffee','general')),
		start_time       TEXT NOT NULL,
		end_time         TEXT,
		duration_minutes INTEGER,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_break_periods_session ON break_periods(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_break_periods_open ON break_periods(session_id) WHERE end_time IS NULL`,
}
