// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"fmt"
	"time"
)

// DayLayout is the wire format for calendar dates.
const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string into a time.Time pinned at noon UTC.
// Pinning the time-of-day keeps day arithmetic stable across DST transitions
// regardless of the host timezone.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t.Add(12 * time.Hour), nil
}

// FormatDay formats t as a YYYY-MM-DD string.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// Noon returns t's calendar day pinned at noon UTC.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// DayOfMonth builds the date for the given day of the month, clamping the day
// to the last valid day when the month is shorter. A day of 31 in February
// yields the 28th, or the 29th in leap years.
func (k MonthKey) DayOfMonth(day int) time.Time {
	if max := k.Days(); day > max {
		day = max
	}
	return time.Date(k.Year(), k.Month(), day, 12, 0, 0, 0, time.UTC)
}
