package utils

import (
	"fmt"
	"time"

	"github.com/habito-app/habito/internal/constants"
)

// DateKey converts a time to its local calendar date key (YYYY-MM-DD).
// Every date-keyed lookup in the application goes through this so that
// habit history, schedules and journal entries agree on day boundaries.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// TodayKey returns the current local date key.
func TodayKey() string {
	return DateKey(time.Now())
}

// ParseDateKey parses a date key back into a local-midnight time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", key, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// WeekdayOf returns the weekday of a date key.
func WeekdayOf(key string) (time.Weekday, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// IsPast reports whether key is strictly before today. Past days are
// read-only by convention; the comparison is plain string order, which is
// safe for zero-padded YYYY-MM-DD keys.
func IsPast(key, todayKey string) bool {
	return key < todayKey
}
