package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cie-dashboard/pkg/calendar"
)

var (
	ErrUnrecognized = errors.New("unrecognized date expression")

	offsetRe  = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	agoRe     = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
	weekdayRe = regexp.MustCompile(`^(next|last|this) ([a-z]+)$`)
)

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// Parser resolves ISO dates and short English phrases to calendar days in a
// fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate resolves expr relative to now. Accepted forms:
//
//	2024-03-15
//	today | tomorrow | yesterday
//	in N days|weeks|months, N days|weeks|months ago
//	next|last|this <weekday>
//	next|last|this week|month|year (first day of that period)
//
// Anything else is ErrUnrecognized.
func (p *Parser) ParseDate(expr string, now time.Time) (calendar.Date, error) {
	expr = strings.Join(strings.Fields(strings.ToLower(expr)), " ")
	today := calendar.DateOf(now.In(p.location))

	if d, err := calendar.ParseDate(expr); err == nil {
		return d, nil
	}

	switch expr {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if m := offsetRe.FindStringSubmatch(expr); m != nil {
		return shift(today, m[1], m[2], 1)
	}
	if m := agoRe.FindStringSubmatch(expr); m != nil {
		return shift(today, m[1], m[2], -1)
	}
	if m := weekdayRe.FindStringSubmatch(expr); m != nil {
		return relativeTo(today, m[1], m[2])
	}

	return calendar.Date{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

func shift(today calendar.Date, amount, unit string, sign int) (calendar.Date, error) {
	n, err := strconv.Atoi(amount)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%w: %q", ErrUnrecognized, amount)
	}
	n *= sign

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDays(n), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDays(7 * n), nil
	default:
		return addMonths(today, n), nil
	}
}

// addMonths moves by whole months and clamps the day to the target month's
// length: 2024-01-31 plus one month is 2024-02-29.
func addMonths(d calendar.Date, n int) calendar.Date {
	target := calendar.NewMonthCursor(d.Year, d.Month+time.Month(n))
	day := d.Day
	if last := target.DaysIn(); day > last {
		day = last
	}
	return calendar.NewDate(target.Year, target.Month, day)
}

func relativeTo(today calendar.Date, which, what string) (calendar.Date, error) {
	step := map[string]int{"next": 1, "last": -1, "this": 0}[which]

	switch what {
	case "week":
		sunday := today.AddDays(-int(today.Weekday()))
		return sunday.AddDays(7 * step), nil
	case "month":
		c := calendar.NewMonthCursor(today.Year, today.Month+time.Month(step))
		return c.FirstDay(), nil
	case "year":
		return calendar.NewDate(today.Year+step, time.January, 1), nil
	}

	wd, ok := weekdays[what]
	if !ok {
		return calendar.Date{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, what)
	}

	diff := int(wd - today.Weekday())
	switch which {
	case "next":
		if diff <= 0 {
			diff += 7
		}
	case "last":
		if diff >= 0 {
			diff -= 7
		}
	}
	// "this <weekday>" stays inside the current Sunday-first week.
	return today.AddDays(diff), nil
}
