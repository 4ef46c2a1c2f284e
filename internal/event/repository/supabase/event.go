package supabase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cie-dashboard/internal/event"
	repo "cie-dashboard/internal/event/repository"
	pkgSupabase "cie-dashboard/pkg/supabase"
)

const uniqueViolation = "23505"

// CreateEvent inserts a new Event row and returns the stored representation.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (event.Event, error) {
	row := eventRow{
		ID:          opt.ID,
		Page:        string(opt.Page),
		Title:       opt.Title,
		Description: optional(opt.Description),
		Venue:       optional(opt.Venue),
		EventType:   string(opt.Category),
		Color:       string(opt.Color),
		EventDate:   opt.Date.String(),
		EventTime:   optional(opt.Time),
	}

	var out []eventRow
	if err := r.client.Insert(ctx, table, row, &out); err != nil {
		var apiErr *pkgSupabase.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == uniqueViolation || apiErr.StatusCode == http.StatusConflict) {
			return event.Event{}, repo.ErrDuplicateID
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return event.Event{}, repo.ErrFailedToInsert
	}
	if len(out) == 0 {
		r.l.Errorf(ctx, "%s: empty representation", r.dsn("CreateEvent"))
		return event.Event{}, repo.ErrFailedToInsert
	}
	e, err := out[0].toEvent()
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("CreateEvent"), err)
		return event.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetOneEvent returns the matching Event or a zero value.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (event.Event, error) {
	q := pkgSupabase.NewQuery().Order("event_date", true).Order("created_at", true).Limit(1)
	if opt.ID != "" {
		q.Eq("id", opt.ID)
	}
	if opt.Page != "" {
		q.Eq("page", string(opt.Page))
	}

	var rows []eventRow
	if err := r.client.Select(ctx, table, q, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return event.Event{}, repo.ErrFailedToGet
	}
	if len(rows) == 0 {
		return event.Event{}, nil
	}
	e, err := rows[0].toEvent()
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetOneEvent"), err)
		return event.Event{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListEvents returns matching Events. Paging is applied after the select so
// total counts every match.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]event.Event, int, error) {
	asc := opt.OrderBy != repo.OrderDateDesc
	q := pkgSupabase.NewQuery().Order("event_date", asc).Order("created_at", asc)
	if opt.Page != "" {
		q.Eq("page", string(opt.Page))
	}
	if !opt.From.IsZero() {
		q.Gte("event_date", opt.From.String())
	}
	if !opt.To.IsZero() {
		q.Lte("event_date", opt.To.String())
	}

	var rows []eventRow
	if err := r.client.Select(ctx, table, q, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}

	events := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		e, err := row.toEvent()
		if err != nil {
			r.l.Warnf(ctx, "%s: skipping row %s: %v", r.dsn("ListEvents"), row.ID, err)
			continue
		}
		events = append(events, e)
	}
	total := len(events)

	if opt.Offset > 0 {
		if opt.Offset >= len(events) {
			events = events[:0]
		} else {
			events = events[opt.Offset:]
		}
	}
	if opt.Limit > 0 && len(events) > opt.Limit {
		events = events[:opt.Limit]
	}
	return events, total, nil
}

// UpdateEvent patches an Event by ID within its page.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (event.Event, error) {
	now := time.Now().UTC()
	patch := eventRow{
		Page:        string(opt.Page),
		Title:       opt.Title,
		Description: optional(opt.Description),
		Venue:       optional(opt.Venue),
		EventType:   string(opt.Category),
		Color:       string(opt.Color),
		EventDate:   opt.Date.String(),
		EventTime:   optional(opt.Time),
		UpdatedAt:   &now,
	}
	q := pkgSupabase.NewQuery().Eq("id", opt.ID).Eq("page", string(opt.Page))

	var out []eventRow
	if err := r.client.Update(ctx, table, q, patch, &out); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return event.Event{}, repo.ErrFailedToUpdate
	}
	if len(out) == 0 {
		return event.Event{}, nil
	}
	e, err := out[0].toEvent()
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("UpdateEvent"), err)
		return event.Event{}, repo.ErrFailedToUpdate
	}
	return e, nil
}

// DeleteEvent removes an Event by ID within its page.
func (r *implRepository) DeleteEvent(ctx context.Context, opt repo.DeleteEventOptions) error {
	q := pkgSupabase.NewQuery().Eq("id", opt.ID).Eq("page", string(opt.Page))
	if err := r.client.Delete(ctx, table, q); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
