// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MonthKey identifies a calendar month as a fixed-width "YYYY-MM" string.
// The zero-padded form makes lexicographic order equal to chronological
// order, which month lookups and the trend layer rely on.
type MonthKey string

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseMonthKey validates and returns a MonthKey from its string form.
func ParseMonthKey(s string) (MonthKey, error) {
	if !monthKeyPattern.MatchString(s) {
		return "", fmt.Errorf("invalid month key %q: want YYYY-MM", s)
	}
	return MonthKey(s), nil
}

// MonthKeyOf returns the MonthKey of the month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format("2006-01"))
}

// String returns the YYYY-MM form.
func (k MonthKey) String() string {
	return string(k)
}

// Year returns the calendar year of the month.
func (k MonthKey) Year() int {
	var y int
	fmt.Sscanf(string(k[:4]), "%d", &y)
	return y
}

// Month returns the calendar month (1-12).
func (k MonthKey) Month() time.Month {
	var m int
	fmt.Sscanf(string(k[5:7]), "%d", &m)
	return time.Month(m)
}

// Start returns the first day of the month at noon UTC. All calendar math in
// the engine is anchored at noon to sidestep daylight-saving off-by-one
// errors when dates are rebuilt from components.
func (k MonthKey) Start() time.Time {
	return time.Date(k.Year(), k.Month(), 1, 12, 0, 0, 0, time.UTC)
}

// End returns the last day of the month at noon UTC.
func (k MonthKey) End() time.Time {
	return k.Start().AddDate(0, 1, -1)
}

// Days returns the number of days in the month.
func (k MonthKey) Days() int {
	return k.End().Day()
}

// Add returns the month key n months after k (n may be negative).
func (k MonthKey) Add(n int) MonthKey {
	return MonthKeyOf(k.Start().AddDate(0, n, 0))
}

// Contains reports whether the given YYYY-MM-DD date string falls inside the
// month. Matching is a prefix check over the fixed-width forms.
func (k MonthKey) Contains(day string) bool {
	return strings.HasPrefix(day, string(k)+"-")
}

// ContainsTime reports whether t falls inside the month.
func (k MonthKey) ContainsTime(t time.Time) bool {
	return MonthKeyOf(t) == k
}
