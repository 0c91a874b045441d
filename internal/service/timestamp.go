package service

import (
	"fmt"
	"time"
)

const (
	layoutDate   = "2006-01-02"
	layoutMinute = "2006-01-02T15:04"
	layoutSecond = "2006-01-02T15:04:05"
)

// parseLocalDate parses a "YYYY-MM-DD" date from the forecast payload.
func parseLocalDate(s string) (time.Time, error) {
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrParseFailed, s, err)
	}
	return t, nil
}

// parseLocalTimestamp parses "YYYY-MM-DDTHH:MM", with optional seconds.
// The values are local to the forecast location and carry no zone.
func parseLocalTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{layoutMinute, layoutSecond} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: timestamp %q", ErrParseFailed, s)
}
