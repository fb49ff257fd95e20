package service

import (
	"fmt"
	"strings"
	"time"
)

const dayKeyLayout = "2006-01-02"

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

// DayKey truncates a timestamp to its calendar date, the grouping key for
// portions and advisory entries.
func DayKey(t time.Time) string {
	return beginningOfDay(t).Format(dayKeyLayout)
}

func ParseDayKey(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func normalizeDayKey(value string, fallback time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DayKey(fallback), nil
	}
	t, err := ParseDayKey(value)
	if err != nil {
		return "", err
	}
	return t.Format(dayKeyLayout), nil
}
