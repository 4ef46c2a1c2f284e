package repository

import (
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
)

// Order is the sort order of ListEvents. Co-dated events always keep their
// insertion order relative to each other in ascending listings.
type Order int

const (
	// OrderDateAsc sorts by event_date ASC, created_at ASC.
	OrderDateAsc Order = iota
	// OrderDateDesc sorts by event_date DESC, created_at DESC.
	OrderDateDesc
)

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	ID          string
	Page        model.Page
	Title       string
	Description string
	Venue       string
	Category    calendar.Category
	Color       calendar.Color
	Date        calendar.Date
	Time        string
}

// GetOneEventOptions holds filter parameters for fetching a single Event.
// All non-empty fields are applied as AND conditions.
type GetOneEventOptions struct {
	ID   string
	Page model.Page
}

// ListEventsOptions holds filter and pagination parameters for listing Events.
// Zero From/To leave that side of the date range open.
type ListEventsOptions struct {
	Page    model.Page
	From    calendar.Date
	To      calendar.Date
	Limit   int
	Offset  int
	OrderBy Order
}

// UpdateEventOptions holds the full replacement values for an existing Event.
type UpdateEventOptions struct {
	ID          string
	Page        model.Page
	Title       string
	Description string
	Venue       string
	Category    calendar.Category
	Color       calendar.Color
	Date        calendar.Date
	Time        string
}

// DeleteEventOptions identifies the Event to delete.
type DeleteEventOptions struct {
	ID   string
	Page model.Page
}
