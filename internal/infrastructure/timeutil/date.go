package timeutil

import "time"

// DateLayout is the calendar date format used across the API.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// FormatDate formats a time as YYYY-MM-DD.
// The zero time formats as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatDatePtr formats an optional date; nil formats as an empty string.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// StartOfDay returns midnight UTC of the calendar day of t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of calendar days from a to b.
// The result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)) / day)
}

// GapDays returns the number of days separating two closed intervals,
// or 0 when they overlap.
func GapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	switch {
	case bStart.After(aEnd):
		return DaysBetween(aEnd, bStart)
	case aStart.After(bEnd):
		return DaysBetween(bEnd, aStart)
	default:
		return 0
	}
}
