// Package recurrence computes the calendar dates on which recurring rules
// fire. It is a state-free projection over the timeline bounded by a rule's
// start and (optional, inclusive) end date: the engine only calculates
// dates, it never creates transactions.
package recurrence

import (
	"time"

	"github.com/batchflow/backend/internal/domain/entity"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

// nextOccurrenceHorizonMonths bounds the forward scan in NextOccurrence.
// A rule with no occurrence inside roughly two years is reported as having
// no next occurrence rather than searched indefinitely.
const nextOccurrenceHorizonMonths = 24

// OccurrencesInMonth returns the ordered YYYY-MM-DD dates on which the rule
// fires within the given month. Every returned date lies inside the month
// and inside [StartDate, EndDate]; months before the rule starts or after it
// ends yield an empty slice. The result is recomputed on every call.
func OccurrencesInMonth(rule *entity.RecurringRule, monthKey valueobject.MonthKey) []string {
	monthStart := monthKey.Start()
	monthEnd := monthKey.End()

	ruleStart := valueobject.Noon(rule.StartDate)
	if ruleStart.After(monthEnd) {
		return nil // rule hasn't started yet
	}

	var ruleEnd *time.Time
	if rule.EndDate != nil {
		e := valueobject.Noon(*rule.EndDate)
		ruleEnd = &e
		if e.Before(monthStart) {
			return nil // rule already ended
		}
	}

	switch rule.Frequency {
	case entity.FrequencyMonthly:
		return monthlyOccurrence(monthKey, ruleStart, ruleEnd)
	case entity.FrequencyYearly:
		if ruleStart.Month() != monthKey.Month() {
			return nil
		}
		return monthlyOccurrence(monthKey, ruleStart, ruleEnd)
	case entity.FrequencyWeekly:
		return steppedOccurrences(monthStart, monthEnd, ruleStart, ruleEnd, 7)
	case entity.FrequencyBiweekly:
		return steppedOccurrences(monthStart, monthEnd, ruleStart, ruleEnd, 14)
	default:
		return nil
	}
}

// monthlyOccurrence emits at most one date: the rule's anchor day-of-month,
// clamped to the last valid day when the month is shorter. A rule anchored
// on the 31st fires on the 28th/29th/30th in shorter months.
func monthlyOccurrence(monthKey valueobject.MonthKey, ruleStart time.Time, ruleEnd *time.Time) []string {
	occurrence := monthKey.DayOfMonth(ruleStart.Day())
	if occurrence.Before(ruleStart) {
		return nil
	}
	if ruleEnd != nil && occurrence.After(*ruleEnd) {
		return nil
	}
	return []string{valueobject.FormatDay(occurrence)}
}

// steppedOccurrences walks forward from the rule's start date in fixed steps
// of stepDays. The walk stays anchored to the original start date modulo the
// step: occurrences are always a whole number of steps from the anchor,
// never recomputed from the month boundary.
func steppedOccurrences(monthStart, monthEnd, ruleStart time.Time, ruleEnd *time.Time, stepDays int) []string {
	current := ruleStart
	for current.Before(monthStart) {
		current = current.AddDate(0, 0, stepDays)
	}

	var results []string
	for !current.After(monthEnd) {
		if ruleEnd == nil || !current.After(*ruleEnd) {
			results = append(results, valueobject.FormatDay(current))
		}
		current = current.AddDate(0, 0, stepDays)
	}
	return results
}

// NextOccurrence returns the first occurrence of the rule on or after the
// given reference day, scanning month by month from the first day of the
// reference month up to a 24-month horizon. The second return value is
// false when the rule has permanently ended or no occurrence exists inside
// the horizon; that is an answer, not an error.
func NextOccurrence(rule *entity.RecurringRule, today time.Time) (string, bool) {
	todayStr := valueobject.FormatDay(today)

	monthKey := valueobject.MonthKeyOf(today)
	for i := 0; i < nextOccurrenceHorizonMonths; i++ {
		for _, d := range OccurrencesInMonth(rule, monthKey) {
			if d >= todayStr {
				return d, true
			}
		}
		monthKey = monthKey.Add(1)
	}
	return "", false
}
