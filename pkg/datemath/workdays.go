package datemath

import (
	"errors"
	"fmt"
	"time"

	"cie-dashboard/pkg/calendar"
)

// Policy decides which weekdays count as non-working. There is no default:
// campuses differ, so callers must pick one.
type Policy int

const (
	PolicyUnset Policy = iota
	ExcludeSundays
	ExcludeWeekends
)

var ErrPolicyRequired = errors.New("working-day policy is required")

// ParsePolicy accepts "sundays" and "weekends".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "sundays", "exclude_sundays":
		return ExcludeSundays, nil
	case "weekends", "exclude_weekends":
		return ExcludeWeekends, nil
	default:
		return PolicyUnset, fmt.Errorf("%w: unknown policy %q", ErrPolicyRequired, s)
	}
}

func (p Policy) String() string {
	switch p {
	case ExcludeSundays:
		return "sundays"
	case ExcludeWeekends:
		return "weekends"
	default:
		return "unset"
	}
}

// IsWeekend reports whether d falls on a day the policy treats as off.
func (p Policy) IsWeekend(d calendar.Date) bool {
	switch wd := d.Weekday(); p {
	case ExcludeSundays:
		return wd == time.Sunday
	case ExcludeWeekends:
		return wd == time.Sunday || wd == time.Saturday
	default:
		return false
	}
}

// Conflict describes why a date is not a working day.
type Conflict struct {
	Date    calendar.Date
	Weekend bool
	Holiday bool
}

// Any reports whether the date has any conflict.
func (c Conflict) Any() bool {
	return c.Weekend || c.Holiday
}

// Conflicts checks d against the policy and a holiday list.
func Conflicts(d calendar.Date, policy Policy, holidays []calendar.Date) (Conflict, error) {
	if policy == PolicyUnset {
		return Conflict{}, ErrPolicyRequired
	}
	c := Conflict{Date: d, Weekend: policy.IsWeekend(d)}
	for _, h := range holidays {
		if h == d {
			c.Holiday = true
			break
		}
	}
	return c, nil
}

// WorkingDaysBetween counts working days in the inclusive range [from, to].
// A reversed range counts zero.
func WorkingDaysBetween(from, to calendar.Date, policy Policy, holidays []calendar.Date) (int, error) {
	if policy == PolicyUnset {
		return 0, ErrPolicyRequired
	}
	off := make(map[calendar.Date]struct{}, len(holidays))
	for _, h := range holidays {
		off[h] = struct{}{}
	}

	n := 0
	for d := from; !d.After(to); d = d.AddDays(1) {
		if policy.IsWeekend(d) {
			continue
		}
		if _, ok := off[d]; ok {
			continue
		}
		n++
	}
	return n, nil
}
