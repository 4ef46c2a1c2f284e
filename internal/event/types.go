package event

import (
	"time"

	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/datemath"
)

// --- Event Domain Model ---

// Event is a stored calendar entry belonging to one dashboard page.
type Event struct {
	ID          string
	Page        model.Page
	Title       string
	Description string
	Venue       string
	Category    calendar.Category
	Color       calendar.Color
	Date        calendar.Date
	Time        string // optional "15:04", display only
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CalendarEvent projects e onto the grid model. Time, when present, becomes
// a wall-clock At on the event's date.
func (e Event) CalendarEvent() calendar.Event {
	ce := calendar.Event{
		ID:          e.ID,
		Date:        e.Date,
		Category:    e.Category,
		Title:       e.Title,
		Color:       e.Color,
		Description: e.Description,
	}
	if t, err := time.Parse(calendar.ClockLayout, e.Time); err == nil {
		ce.At = time.Date(e.Date.Year, e.Date.Month, e.Date.Day, t.Hour(), t.Minute(), 0, 0, time.UTC)
	}
	return ce
}

// --- UseCase Inputs ---

type CreateEventInput struct {
	Page        model.Page
	Title       string
	Description string
	Venue       string
	Category    string
	Color       string
	Date        string
	Time        string
}

type ListEventsInput struct {
	Page   model.Page
	From   calendar.Date
	To     calendar.Date
	Limit  int
	Offset int
}

type UpdateEventInput struct {
	ID          string
	Page        model.Page
	Title       string
	Description string
	Venue       string
	Category    string
	Color       string
	Date        string
	Time        string
}

type MonthGridInput struct {
	Page   model.Page
	Cursor calendar.MonthCursor
}

type NavigateInput struct {
	Page      model.Page
	Cursor    calendar.MonthCursor
	Direction calendar.Direction
}

type JumpInput struct {
	Page model.Page
	// Expr is an ISO date or a relative phrase such as "next friday".
	Expr string
}

// DayDetailInput selects a date. A set Policy also reports the date's
// weekend/holiday conflict.
type DayDetailInput struct {
	Page   model.Page
	Date   string
	Policy datemath.Policy
}

type WorkingDaysInput struct {
	Page   model.Page
	From   string
	To     string
	Policy datemath.Policy
}

type TimelineInput struct {
	Page  model.Page
	Limit int
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event Event
}

type ListEventsOutput struct {
	Events []Event
	Total  int
	Limit  int
	Offset int
}

type DetailEventOutput struct {
	Event Event
}

type UpdateEventOutput struct {
	Event Event
}

// MonthGridOutput is a rendered month for one page.
type MonthGridOutput struct {
	Page   model.Page
	Grid   calendar.Grid
	Legend []calendar.LegendEntry
	Today  calendar.Date
	// Selected is the date a jump resolved to, zero otherwise.
	Selected calendar.Date
}

type DayDetailOutput struct {
	Page     model.Page
	Clicked  calendar.DateClicked
	Conflict *datemath.Conflict
}

type WorkingDaysOutput struct {
	Page        model.Page
	From        calendar.Date
	To          calendar.Date
	Policy      datemath.Policy
	WorkingDays int
	Holidays    []calendar.Date
}

type LegendOutput struct {
	Page     model.Page
	Legend   []calendar.LegendEntry
	Fallback calendar.Color
}

type TimelineOutput struct {
	Page   model.Page
	Events []calendar.Event
}
