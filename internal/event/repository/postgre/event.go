package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"cie-dashboard/internal/event"
	repo "cie-dashboard/internal/event/repository"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
)

// uniqueViolation is the SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (event.Event, error) {
	var (
		e                         event.Event
		page, category, color     string
		description, venue, evTim sql.NullString
		date                      time.Time
	)
	err := s.Scan(&e.ID, &page, &e.Title, &description, &venue, &category, &color, &date, &evTim, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return event.Event{}, err
	}
	e.Page = model.Page(page)
	e.Category = model.StoredCategory(e.Page, category)
	e.Color = calendar.Color(color)
	e.Description = description.String
	e.Venue = venue.String
	e.Time = evTim.String
	// DATE columns come back as midnight UTC.
	e.Date = calendar.DateOf(date.UTC())
	return e, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (event.Event, error) {
	query := `
		INSERT INTO events (id, page, title, description, venue, event_type, color, event_date, event_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9, NOW(), NOW())
		RETURNING ` + eventColumns

	e, err := scanEvent(r.db.QueryRowContext(ctx, query,
		opt.ID, string(opt.Page), opt.Title, nullable(opt.Description), nullable(opt.Venue),
		string(opt.Category), string(opt.Color), opt.Date.String(), nullable(opt.Time),
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			r.l.Warnf(ctx, "%s: duplicate id %s (%s)", r.dsn("CreateEvent"), opt.ID, pqErr.Constraint)
			return event.Event{}, repo.ErrDuplicateID
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return event.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetOneEvent retrieves a single Event by the provided filters (AND condition).
// Returns zero-value Event (ID == "") when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (event.Event, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM events WHERE %s ORDER BY event_date ASC, created_at ASC LIMIT 1", eventColumns, mods)

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return event.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return event.Event{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListEvents returns a paginated list of Events and the total count.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]event.Event, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM events %s", eventColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, 0, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return events, total, nil
}

// UpdateEvent updates an Event by ID and returns the updated entity.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (event.Event, error) {
	query := `
		UPDATE events
		SET title = $1, description = $2, venue = $3, event_type = $4, color = $5,
		    event_date = $6::date, event_time = $7, updated_at = NOW()
		WHERE id = $8 AND page = $9
		RETURNING ` + eventColumns

	e, err := scanEvent(r.db.QueryRowContext(ctx, query,
		opt.Title, nullable(opt.Description), nullable(opt.Venue), string(opt.Category),
		string(opt.Color), opt.Date.String(), nullable(opt.Time), opt.ID, string(opt.Page),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return event.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return event.Event{}, repo.ErrFailedToUpdate
	}
	return e, nil
}

// DeleteEvent removes an Event by ID within its page.
func (r *implRepository) DeleteEvent(ctx context.Context, opt repo.DeleteEventOptions) error {
	const query = `DELETE FROM events WHERE id = $1 AND page = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, string(opt.Page)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
