package usecase

import (
	"context"
	"strings"

	"cie-dashboard/internal/event"
	repo "cie-dashboard/internal/event/repository"
	"cie-dashboard/pkg/calendar"
)

// Create validates and stores a new Event.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateEventInput) (event.CreateEventOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.CreateEventOutput{}, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return event.CreateEventOutput{}, event.ErrEmptyTitle
	}
	date, err := uc.parseDate(input.Date)
	if err != nil {
		return event.CreateEventOutput{}, err
	}
	category, err := uc.resolveCategory(input.Page, input.Category)
	if err != nil {
		return event.CreateEventOutput{}, err
	}

	e, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		ID:          uc.ids.NewID(),
		Page:        input.Page,
		Title:       title,
		Description: input.Description,
		Venue:       input.Venue,
		Category:    category,
		Color:       calendar.Color(input.Color),
		Date:        date,
		Time:        input.Time,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateEventOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: event %s on %s for page %s", e.ID, e.Date, e.Page)
	return event.CreateEventOutput{Event: e}, nil
}
