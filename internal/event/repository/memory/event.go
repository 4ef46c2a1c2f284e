package memory

import (
	"context"
	"sort"

	"cie-dashboard/internal/event"
	repo "cie-dashboard/internal/event/repository"
)

// CreateEvent stores a new Event. The caller supplies the ID.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[opt.ID]; exists || opt.ID == "" {
		r.l.Errorf(ctx, "event/repository/memory.CreateEvent: id %q rejected", opt.ID)
		return event.Event{}, repo.ErrDuplicateID
	}

	now := r.now()
	e := event.Event{
		ID:          opt.ID,
		Page:        opt.Page,
		Title:       opt.Title,
		Description: opt.Description,
		Venue:       opt.Venue,
		Category:    opt.Category,
		Color:       opt.Color,
		Date:        opt.Date,
		Time:        opt.Time,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.seq++
	r.records[e.ID] = record{seq: r.seq, event: e}
	return e, nil
}

// GetOneEvent returns the matching Event or a zero value.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if opt.ID != "" {
		rec, ok := r.records[opt.ID]
		if !ok || (opt.Page != "" && rec.event.Page != opt.Page) {
			return event.Event{}, nil
		}
		return rec.event, nil
	}
	for _, rec := range r.sorted(repo.ListEventsOptions{Page: opt.Page}) {
		return rec.event, nil
	}
	return event.Event{}, nil
}

// ListEvents returns a page of matching Events and the total match count.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]event.Event, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.sorted(opt)
	total := len(matched)

	if opt.Offset > 0 {
		if opt.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[opt.Offset:]
		}
	}
	if opt.Limit > 0 && len(matched) > opt.Limit {
		matched = matched[:opt.Limit]
	}

	events := make([]event.Event, len(matched))
	for i, rec := range matched {
		events[i] = rec.event
	}
	return events, total, nil
}

// UpdateEvent replaces the stored fields of an Event.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[opt.ID]
	if !ok || (opt.Page != "" && rec.event.Page != opt.Page) {
		return event.Event{}, nil
	}

	e := rec.event
	e.Title = opt.Title
	e.Description = opt.Description
	e.Venue = opt.Venue
	e.Category = opt.Category
	e.Color = opt.Color
	e.Date = opt.Date
	e.Time = opt.Time
	e.UpdatedAt = r.now()

	rec.event = e
	r.records[e.ID] = rec
	return e, nil
}

// DeleteEvent removes an Event. Deleting a missing Event is not an error.
func (r *implRepository) DeleteEvent(ctx context.Context, opt repo.DeleteEventOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[opt.ID]
	if ok && (opt.Page == "" || rec.event.Page == opt.Page) {
		delete(r.records, opt.ID)
	}
	return nil
}

// sorted filters and orders records. Caller holds the lock.
func (r *implRepository) sorted(opt repo.ListEventsOptions) []record {
	var out []record
	for _, rec := range r.records {
		e := rec.event
		if opt.Page != "" && e.Page != opt.Page {
			continue
		}
		if !opt.From.IsZero() && e.Date.Before(opt.From) {
			continue
		}
		if !opt.To.IsZero() && e.Date.After(opt.To) {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		c := a.event.Date.Compare(b.event.Date)
		if opt.OrderBy == repo.OrderDateDesc {
			if c != 0 {
				return c > 0
			}
			return a.seq > b.seq
		}
		if c != 0 {
			return c < 0
		}
		return a.seq < b.seq
	})
	return out
}
