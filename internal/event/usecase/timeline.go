package usecase

import (
	"context"
	"sort"

	"cie-dashboard/internal/event"
	"cie-dashboard/pkg/calendar"
)

const (
	defaultTimelineLimit = 5
	maxTimelineLimit     = 50
)

func timelineLimit(n int) int {
	if n <= 0 {
		return defaultTimelineLimit
	}
	if n > maxTimelineLimit {
		return maxTimelineLimit
	}
	return n
}

// Upcoming returns the next events from today on, soonest first.
func (uc *implUseCase) Upcoming(ctx context.Context, input event.TimelineInput) (event.TimelineOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.TimelineOutput{}, err
	}
	today := calendar.Today(uc.clock)

	events, err := uc.collect(ctx, input.Page, today, today.AddDays(uc.horizon))
	if err != nil {
		return event.TimelineOutput{}, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	if limit := timelineLimit(input.Limit); len(events) > limit {
		events = events[:limit]
	}
	return event.TimelineOutput{Page: input.Page, Events: events}, nil
}

// Past returns events before today, most recent first.
func (uc *implUseCase) Past(ctx context.Context, input event.TimelineInput) (event.TimelineOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.TimelineOutput{}, err
	}
	yesterday := calendar.Today(uc.clock).AddDays(-1)

	events, err := uc.collect(ctx, input.Page, yesterday.AddDays(-uc.horizon), yesterday)
	if err != nil {
		return event.TimelineOutput{}, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})

	if limit := timelineLimit(input.Limit); len(events) > limit {
		events = events[:limit]
	}
	return event.TimelineOutput{Page: input.Page, Events: events}, nil
}
