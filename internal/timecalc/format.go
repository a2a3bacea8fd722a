package timecalc

import (
	"fmt"
	"time"
)

// ParseError indicates a timestamp that could not be interpreted.
// Callers must treat it as "unknown duration", never as zero.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing timestamp %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// timeLayouts are tried in order: RFC3339 with offset, then the same
// shape without one (interpreted as local time).
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseTime parses an ISO-8601 timestamp with or without a timezone
// offset, at second precision.
func ParseTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		if layout == time.RFC3339 {
			if ts, err := time.Parse(layout, value); err == nil {
				return ts, nil
			} else {
				lastErr = err
			}
			continue
		}
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ts, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, &ParseError{Value: value, Err: lastErr}
}

// FormatDuration renders whole seconds as zero-padded HH:MM:SS. Hour
// counts of 100 and beyond widen the field instead of overflowing;
// negative input clamps to zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
