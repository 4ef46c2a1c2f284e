package usecase

import (
	"context"
	"strings"

	"cie-dashboard/internal/event"
	repo "cie-dashboard/internal/event/repository"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
)

// coalesce returns newVal when provided, otherwise the existing value.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

func (uc *implUseCase) validatePage(p model.Page) error {
	if _, err := model.ParsePage(string(p)); err != nil {
		return event.ErrUnknownPage
	}
	return nil
}

// resolveCategory maps raw input onto the page's closed category set.
// Empty input takes the page default; academic legacy labels are normalized.
func (uc *implUseCase) resolveCategory(p model.Page, raw string) (calendar.Category, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = p.DefaultCategory()
	}
	c := calendar.Category(raw)
	if p == model.PageAcademic {
		if legacy, ok := model.LegacyAcademicCategory(raw); ok {
			c = legacy
		}
	}
	if !model.PaletteFor(p).Has(c) {
		return "", event.ErrUnknownCategory
	}
	return c, nil
}

func (uc *implUseCase) parseDate(s string) (calendar.Date, error) {
	d, err := calendar.ParseDate(s)
	if err != nil {
		return calendar.Date{}, event.ErrInvalidDate
	}
	return d, nil
}

// collect returns the page's stored events in [from, to] followed by every
// source's events for the same window. A failing source is logged and skipped.
func (uc *implUseCase) collect(ctx context.Context, page model.Page, from, to calendar.Date) ([]calendar.Event, error) {
	stored, _, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		Page: page,
		From: from,
		To:   to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.collect ListEvents: %v", err)
		return nil, err
	}

	events := make([]calendar.Event, 0, len(stored))
	for _, e := range stored {
		events = append(events, e.CalendarEvent())
	}
	for _, src := range uc.sources {
		if src.Page() != page {
			continue
		}
		extra, err := src.Events(ctx, from, to)
		if err != nil {
			uc.l.Warnf(ctx, "event.usecase.collect source %s: %v", src.Name(), err)
			continue
		}
		events = append(events, extra...)
	}
	return model.PaletteFor(page).Apply(events), nil
}

// month renders the grid for cursor with a single today value.
func (uc *implUseCase) month(ctx context.Context, page model.Page, cursor calendar.MonthCursor, today calendar.Date) (event.MonthGridOutput, error) {
	from, to := calendar.GridWindow(cursor)
	events, err := uc.collect(ctx, page, from, to)
	if err != nil {
		return event.MonthGridOutput{}, err
	}
	return event.MonthGridOutput{
		Page:   page,
		Grid:   calendar.BuildGrid(cursor, events, today),
		Legend: model.PaletteFor(page).Legend(),
		Today:  today,
	}, nil
}
