package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Direction is a month navigation step.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// ParseDirection accepts "previous", "prev" and "next".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "previous", "prev":
		return Previous, nil
	case "next":
		return Next, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "none"
	}
}

// Navigate returns the month adjacent to c, wrapping year boundaries.
// Any other Direction value leaves c unchanged.
func Navigate(c MonthCursor, dir Direction) MonthCursor {
	switch dir {
	case Previous, Next:
		return NewMonthCursor(c.Year, c.Month+time.Month(dir))
	default:
		return c
	}
}

// JumpToToday returns the current month, reading clock once.
func JumpToToday(clock Clock) MonthCursor {
	return JumpToDate(Today(clock))
}

// JumpToDate returns the month containing d.
func JumpToDate(d Date) MonthCursor {
	return NewMonthCursor(d.Year, d.Month)
}
