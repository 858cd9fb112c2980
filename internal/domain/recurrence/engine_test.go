package recurrence

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/batchflow/backend/internal/domain/entity"
	"github.com/batchflow/backend/internal/domain/valueobject"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := valueobject.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func rule(t *testing.T, frequency entity.Frequency, start string, end string) *entity.RecurringRule {
	t.Helper()
	r := &entity.RecurringRule{
		ID:        uuid.New(),
		Frequency: frequency,
		StartDate: mustDay(t, start),
	}
	if end != "" {
		e := mustDay(t, end)
		r.EndDate = &e
	}
	return r
}

func TestOccurrencesInMonthBounds(t *testing.T) {
	tests := []struct {
		name  string
		rule  *entity.RecurringRule
		month valueobject.MonthKey
		want  []string
	}{
		{
			name:  "rule not started yet",
			rule:  rule(t, entity.FrequencyMonthly, "2024-05-10", ""),
			month: "2024-03",
			want:  nil,
		},
		{
			name:  "rule already ended",
			rule:  rule(t, entity.FrequencyMonthly, "2023-01-10", "2023-12-31"),
			month: "2024-03",
			want:  nil,
		},
		{
			name:  "starts mid-month",
			rule:  rule(t, entity.FrequencyMonthly, "2024-03-20", ""),
			month: "2024-03",
			want:  []string{"2024-03-20"},
		},
		{
			name:  "start later in month than anchor day",
			rule:  rule(t, entity.FrequencyMonthly, "2024-03-20", ""),
			month: "2024-04",
			want:  []string{"2024-04-20"},
		},
		{
			name:  "ends exactly on a computed occurrence",
			rule:  rule(t, entity.FrequencyMonthly, "2024-01-15", "2024-03-15"),
			month: "2024-03",
			want:  []string{"2024-03-15"},
		},
		{
			name:  "ends the day before an occurrence",
			rule:  rule(t, entity.FrequencyMonthly, "2024-01-15", "2024-03-14"),
			month: "2024-03",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OccurrencesInMonth(tt.rule, tt.month)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OccurrencesInMonth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthlyClampsToShortMonths(t *testing.T) {
	r := rule(t, entity.FrequencyMonthly, "2024-01-31", "")

	tests := []struct {
		month valueobject.MonthKey
		want  []string
	}{
		{month: "2024-01", want: []string{"2024-01-31"}},
		{month: "2024-02", want: []string{"2024-02-29"}}, // leap year
		{month: "2024-04", want: []string{"2024-04-30"}},
		{month: "2025-02", want: []string{"2025-02-28"}}, // non-leap
	}

	for _, tt := range tests {
		t.Run(string(tt.month), func(t *testing.T) {
			got := OccurrencesInMonth(r, tt.month)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OccurrencesInMonth(%s) = %v, want %v", tt.month, got, tt.want)
			}
		})
	}
}

func TestYearlyFiresOnlyInAnchorMonth(t *testing.T) {
	r := rule(t, entity.FrequencyYearly, "2022-07-31", "")

	if got := OccurrencesInMonth(r, "2024-07"); !reflect.DeepEqual(got, []string{"2024-07-31"}) {
		t.Errorf("anchor month = %v, want [2024-07-31]", got)
	}
	for _, month := range []valueobject.MonthKey{"2024-01", "2024-06", "2024-08", "2024-12"} {
		if got := OccurrencesInMonth(r, month); got != nil {
			t.Errorf("OccurrencesInMonth(%s) = %v, want empty", month, got)
		}
	}
}

func TestWeeklyOccurrences(t *testing.T) {
	// Monday anchor; every Monday of March 2024.
	r := rule(t, entity.FrequencyWeekly, "2024-01-01", "")

	want := []string{"2024-03-04", "2024-03-11", "2024-03-18", "2024-03-25"}
	if got := OccurrencesInMonth(r, "2024-03"); !reflect.DeepEqual(got, want) {
		t.Errorf("weekly occurrences = %v, want %v", got, want)
	}
}

func TestBiweeklyStaysAnchoredToStartDate(t *testing.T) {
	r := rule(t, entity.FrequencyBiweekly, "2024-01-01", "")

	// 14-day multiples from Jan 1 falling in March: day 70 and day 84.
	want := []string{"2024-03-11", "2024-03-25"}
	got := OccurrencesInMonth(r, "2024-03")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("biweekly occurrences = %v, want %v", got, want)
	}

	// Every occurrence must be a whole number of 14-day steps from the anchor.
	anchor := mustDay(t, "2024-01-01")
	for _, d := range got {
		occ := mustDay(t, d)
		days := int(occ.Sub(anchor).Hours() / 24)
		if days%14 != 0 {
			t.Errorf("occurrence %s is %d days from anchor, not a 14-day multiple", d, days)
		}
	}
}

func TestBiweeklyDistantAnchorKeepsAlignment(t *testing.T) {
	// Anchor far in the past; alignment must survive the long walk.
	r := rule(t, entity.FrequencyBiweekly, "2019-06-14", "")

	anchor := mustDay(t, "2019-06-14")
	got := OccurrencesInMonth(r, "2024-03")
	if len(got) == 0 {
		t.Fatal("expected occurrences in 2024-03")
	}
	for _, d := range got {
		occ := mustDay(t, d)
		if occ.Weekday() != anchor.Weekday() {
			t.Errorf("occurrence %s on %s, want %s", d, occ.Weekday(), anchor.Weekday())
		}
		days := int(occ.Sub(anchor).Hours() / 24)
		if days%14 != 0 {
			t.Errorf("occurrence %s is %d days from anchor", d, days)
		}
	}
}

func TestWeeklyRespectsEndDateInsideMonth(t *testing.T) {
	r := rule(t, entity.FrequencyWeekly, "2024-03-01", "2024-03-15")

	want := []string{"2024-03-01", "2024-03-08", "2024-03-15"}
	if got := OccurrencesInMonth(r, "2024-03"); !reflect.DeepEqual(got, want) {
		t.Errorf("occurrences = %v, want %v", got, want)
	}
}

func TestOccurrencesAreDeterministic(t *testing.T) {
	r := rule(t, entity.FrequencyBiweekly, "2023-11-03", "2024-05-01")

	first := OccurrencesInMonth(r, "2024-02")
	second := OccurrencesInMonth(r, "2024-02")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}

	start := valueobject.FormatDay(r.StartDate)
	end := valueobject.FormatDay(*r.EndDate)
	for _, d := range first {
		if d < start || d > end {
			t.Errorf("occurrence %s outside [%s, %s]", d, start, end)
		}
		if !valueobject.MonthKey("2024-02").Contains(d) {
			t.Errorf("occurrence %s outside queried month", d)
		}
	}
}

func TestNextOccurrence(t *testing.T) {
	today := mustDay(t, "2024-03-10")

	tests := []struct {
		name   string
		rule   *entity.RecurringRule
		want   string
		wantOK bool
	}{
		{
			name:   "later this month",
			rule:   rule(t, entity.FrequencyMonthly, "2024-01-15", ""),
			want:   "2024-03-15",
			wantOK: true,
		},
		{
			name:   "already passed this month",
			rule:   rule(t, entity.FrequencyMonthly, "2024-01-05", ""),
			want:   "2024-04-05",
			wantOK: true,
		},
		{
			name:   "on the reference day itself",
			rule:   rule(t, entity.FrequencyMonthly, "2024-01-10", ""),
			want:   "2024-03-10",
			wantOK: true,
		},
		{
			name:   "ended yesterday",
			rule:   rule(t, entity.FrequencyMonthly, "2024-01-09", "2024-03-09"),
			wantOK: false,
		},
		{
			name:   "yearly in a future month",
			rule:   rule(t, entity.FrequencyYearly, "2023-09-01", ""),
			want:   "2024-09-01",
			wantOK: true,
		},
		{
			name:   "starts beyond the 24-month horizon",
			rule:   rule(t, entity.FrequencyMonthly, "2026-06-01", ""),
			wantOK: false,
		},
		{
			name:   "biweekly stays on anchor grid",
			rule:   rule(t, entity.FrequencyBiweekly, "2024-01-01", ""),
			want:   "2024-03-11",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextOccurrence(tt.rule, today)
			if ok != tt.wantOK {
				t.Fatalf("NextOccurrence ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("NextOccurrence = %s, want %s", got, tt.want)
			}
		})
	}
}
