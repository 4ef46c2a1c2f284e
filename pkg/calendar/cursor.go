package calendar

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// MonthCursor identifies the month a calendar view is showing.
type MonthCursor struct {
	Year  int
	Month time.Month
}

// NewMonthCursor normalizes out-of-range months into the year:
// month 13 is January of the next year, month 0 is December of the previous one.
func NewMonthCursor(year int, month time.Month) MonthCursor {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// CursorFromZeroBased builds a cursor from a 0..11 month index.
func CursorFromZeroBased(year, month int) MonthCursor {
	return NewMonthCursor(year, time.Month(month+1))
}

// ParseMonth parses "2006-01".
func ParseMonth(s string) (MonthCursor, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return MonthCursor{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthCursor{Year: t.Year(), Month: t.Month()}, nil
}

// ZeroBasedMonth returns the month as 0..11.
func (c MonthCursor) ZeroBasedMonth() int {
	return int(c.Month) - 1
}

// FirstDay returns day 1 of the month.
func (c MonthCursor) FirstDay() Date {
	return NewDate(c.Year, c.Month, 1)
}

// LastDay returns the last day of the month.
func (c MonthCursor) LastDay() Date {
	return NewDate(c.Year, c.Month+1, 0)
}

// DaysIn returns the number of days in the month.
func (c MonthCursor) DaysIn() int {
	return c.LastDay().Day
}

// Contains reports whether d falls inside the month.
func (c MonthCursor) Contains(d Date) bool {
	return d.Year == c.Year && d.Month == c.Month
}

func (c MonthCursor) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}
