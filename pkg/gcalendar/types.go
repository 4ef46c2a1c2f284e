package gcalendar

import "time"

// Event is a simplified read-only view of a Google Calendar event.
// All-day events carry AllDay and a StartTime at midnight in the request timezone.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	AllDay      bool
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
// Recurring events are expanded into single instances.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	Location   *time.Location
}
