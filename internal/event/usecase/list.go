package usecase

import (
	"context"

	"cie-dashboard/internal/event"
	repo "cie-dashboard/internal/event/repository"
)

// List returns a paginated list of a page's stored Events.
func (uc *implUseCase) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.ListEventsOutput{}, err
	}

	events, total, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		Page:   input.Page,
		From:   input.From,
		To:     input.To,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListEventsOutput{}, err
	}

	return event.ListEventsOutput{
		Events: events,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
