package supabase

import (
	"time"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
)

// eventRow mirrors the events table.
type eventRow struct {
	ID          string     `json:"id,omitempty"`
	Page        string     `json:"page"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Venue       *string    `json:"venue"`
	EventType   string     `json:"event_type"`
	Color       string     `json:"color"`
	EventDate   string     `json:"event_date"`
	EventTime   *string    `json:"event_time"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (row eventRow) toEvent() (event.Event, error) {
	date, err := calendar.ParseDate(row.EventDate)
	if err != nil {
		return event.Event{}, err
	}
	e := event.Event{
		ID:          row.ID,
		Page:        model.Page(row.Page),
		Title:       row.Title,
		Description: deref(row.Description),
		Venue:       deref(row.Venue),
		Category:    model.StoredCategory(model.Page(row.Page), row.EventType),
		Color:       calendar.Color(row.Color),
		Date:        date,
		Time:        deref(row.EventTime),
	}
	if row.CreatedAt != nil {
		e.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		e.UpdatedAt = *row.UpdatedAt
	}
	return e, nil
}
