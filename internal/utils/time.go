package utils

import (
	"strings"
	"time"
)

const (
	layoutDate        = "2006-01-02"
	layoutDisplayDate = "02-01-2006"
)

// ParseDate parses YYYY-MM-DD (the storage format) in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// NormalizeDate accepts either the storage format (YYYY-MM-DD) or the grid
// display format (DD-MM-YYYY) and returns the storage form. Text that parses
// as neither comes back unchanged so the caller can decide what to do.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if _, err := time.ParseInLocation(layoutDate, s, time.Local); err == nil {
		return s
	}
	if t, err := time.ParseInLocation(layoutDisplayDate, s, time.Local); err == nil {
		return t.Format(layoutDate)
	}
	return s
}

// DisplayDate converts a stored YYYY-MM-DD date to DD-MM-YYYY for the grid.
func DisplayDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return t.Format(layoutDisplayDate)
}
