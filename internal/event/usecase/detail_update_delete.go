package usecase

import (
	"context"
	"strings"

	"cie-dashboard/internal/event"
	repo "cie-dashboard/internal/event/repository"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
)

// Detail retrieves a single Event. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, page model.Page, id string) (event.DetailEventOutput, error) {
	if err := uc.validatePage(page); err != nil {
		return event.DetailEventOutput{}, err
	}
	e, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id, Page: page})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEvent: %v", err)
		return event.DetailEventOutput{}, err
	}
	if e.ID == "" {
		return event.DetailEventOutput{}, event.ErrEventNotFound
	}
	return event.DetailEventOutput{Event: e}, nil
}

// Update modifies an existing Event. Empty fields keep their stored value.
func (uc *implUseCase) Update(ctx context.Context, input event.UpdateEventInput) (event.UpdateEventOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.UpdateEventOutput{}, err
	}

	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: input.ID, Page: input.Page})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneEvent: %v", err)
		return event.UpdateEventOutput{}, err
	}
	if existing.ID == "" {
		return event.UpdateEventOutput{}, event.ErrEventNotFound
	}

	date := existing.Date
	if input.Date != "" {
		if date, err = uc.parseDate(input.Date); err != nil {
			return event.UpdateEventOutput{}, err
		}
	}
	category := existing.Category
	if input.Category != "" {
		if category, err = uc.resolveCategory(input.Page, input.Category); err != nil {
			return event.UpdateEventOutput{}, err
		}
	}

	e, err := uc.repo.UpdateEvent(ctx, repo.UpdateEventOptions{
		ID:          input.ID,
		Page:        input.Page,
		Title:       uc.coalesce(strings.TrimSpace(input.Title), existing.Title),
		Description: uc.coalesce(input.Description, existing.Description),
		Venue:       uc.coalesce(input.Venue, existing.Venue),
		Category:    category,
		Color:       calendar.Color(uc.coalesce(input.Color, string(existing.Color))),
		Date:        date,
		Time:        uc.coalesce(input.Time, existing.Time),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEvent: %v", err)
		return event.UpdateEventOutput{}, err
	}
	if e.ID == "" {
		return event.UpdateEventOutput{}, event.ErrEventNotFound
	}
	return event.UpdateEventOutput{Event: e}, nil
}

// Delete removes an Event. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, page model.Page, id string) error {
	if err := uc.validatePage(page); err != nil {
		return err
	}
	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id, Page: page})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneEvent: %v", err)
		return err
	}
	if existing.ID == "" {
		return event.ErrEventNotFound
	}
	if err := uc.repo.DeleteEvent(ctx, repo.DeleteEventOptions{ID: id, Page: page}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}
	return nil
}
