package datemath_test

import (
	"errors"
	"testing"

	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/datemath"
)

func TestWorkingDaysBetween(t *testing.T) {
	// 2024-03-04 is a Monday.
	from := calendar.MustParseDate("2024-03-04")
	to := calendar.MustParseDate("2024-03-17")
	holiday := calendar.MustParseDate("2024-03-08")

	tests := []struct {
		name     string
		policy   datemath.Policy
		holidays []calendar.Date
		want     int
	}{
		{name: "exclude sundays", policy: datemath.ExcludeSundays, want: 12},
		{name: "exclude weekends", policy: datemath.ExcludeWeekends, want: 10},
		{name: "weekends and holiday", policy: datemath.ExcludeWeekends, holidays: []calendar.Date{holiday}, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.WorkingDaysBetween(from, to, tt.policy, tt.holidays)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("WorkingDaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWorkingDaysBetweenRequiresPolicy(t *testing.T) {
	_, err := datemath.WorkingDaysBetween(calendar.MustParseDate("2024-03-04"), calendar.MustParseDate("2024-03-10"), datemath.PolicyUnset, nil)
	if !errors.Is(err, datemath.ErrPolicyRequired) {
		t.Fatalf("expected ErrPolicyRequired, got %v", err)
	}
}

func TestWorkingDaysBetweenReversed(t *testing.T) {
	got, err := datemath.WorkingDaysBetween(calendar.MustParseDate("2024-03-10"), calendar.MustParseDate("2024-03-04"), datemath.ExcludeSundays, nil)
	if err != nil || got != 0 {
		t.Fatalf("reversed range = %d, %v", got, err)
	}
}

func TestConflicts(t *testing.T) {
	saturday := calendar.MustParseDate("2024-03-09")
	holidays := []calendar.Date{calendar.MustParseDate("2024-03-08")}

	c, err := datemath.Conflicts(saturday, datemath.ExcludeSundays, holidays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Any() {
		t.Errorf("saturday should be a working day when only sundays are excluded: %+v", c)
	}

	c, _ = datemath.Conflicts(saturday, datemath.ExcludeWeekends, holidays)
	if !c.Weekend || c.Holiday {
		t.Errorf("saturday under weekends policy = %+v", c)
	}

	c, _ = datemath.Conflicts(holidays[0], datemath.ExcludeWeekends, holidays)
	if !c.Holiday || c.Weekend {
		t.Errorf("holiday friday = %+v", c)
	}

	if _, err := datemath.Conflicts(saturday, datemath.PolicyUnset, nil); !errors.Is(err, datemath.ErrPolicyRequired) {
		t.Errorf("expected ErrPolicyRequired, got %v", err)
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := datemath.ParsePolicy("weekends"); err != nil || p != datemath.ExcludeWeekends {
		t.Errorf("ParsePolicy(weekends) = %v, %v", p, err)
	}
	if _, err := datemath.ParsePolicy(""); err == nil {
		t.Errorf("empty policy should fail")
	}
}
