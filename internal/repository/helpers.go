package repository

import (
	"database/sql"
	"time"

	"github.com/alexanderramin/worklog/internal/timecalc"
)

// nullableTime renders an optional timestamp for a nullable TEXT column.
func nullableTime(ts *time.Time) any {
	if ts == nil {
		return nil
	}
	return ts.Format(time.RFC3339)
}

// nullableInt renders an optional int for a nullable INTEGER column.
func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// parseNullableTime converts a nullable TEXT column back to *time.Time.
func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	ts, err := timecalc.ParseTime(v.String)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
