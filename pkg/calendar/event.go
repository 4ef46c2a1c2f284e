package calendar

import "time"

// Category is a closed, page-specific tag controlling color and legend grouping.
type Category string

// Color is a display color, usually a hex string such as "#AECBFA".
type Color string

// ClockLayout is the wall-clock form of Event.At.
const ClockLayout = "15:04"

// Event is a dated item placed on the grid. Only Date drives placement;
// At is an optional start time carried for display.
type Event struct {
	ID          string
	Date        Date
	At          time.Time
	Category    Category
	Title       string
	Color       Color
	Description string
}

// EventsOn returns the events dated d, in input order. Events with an
// invalid date never match.
func EventsOn(events []Event, d Date) []Event {
	var out []Event
	for _, e := range events {
		if e.Date == d && e.Date.Valid() {
			out = append(out, e)
		}
	}
	return out
}
