package usecase

import (
	"context"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/datemath"
)

const maxWorkingDaysSpan = 366

// WorkingDays counts the days in [From, To] that are neither weekends under
// input.Policy nor covered by a holiday event on the page.
func (uc *implUseCase) WorkingDays(ctx context.Context, input event.WorkingDaysInput) (event.WorkingDaysOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.WorkingDaysOutput{}, err
	}
	if input.Policy == datemath.PolicyUnset {
		return event.WorkingDaysOutput{}, datemath.ErrPolicyRequired
	}
	from, err := uc.parseDate(input.From)
	if err != nil {
		return event.WorkingDaysOutput{}, err
	}
	to, err := uc.parseDate(input.To)
	if err != nil {
		return event.WorkingDaysOutput{}, err
	}
	if to.Before(from) || to.DaysSince(from) >= maxWorkingDaysSpan {
		return event.WorkingDaysOutput{}, event.ErrInvalidRange
	}

	events, err := uc.collect(ctx, input.Page, from, to)
	if err != nil {
		return event.WorkingDaysOutput{}, err
	}
	holidays := holidaysIn(events)

	n, err := datemath.WorkingDaysBetween(from, to, input.Policy, holidays)
	if err != nil {
		return event.WorkingDaysOutput{}, err
	}

	return event.WorkingDaysOutput{
		Page:        input.Page,
		From:        from,
		To:          to,
		Policy:      input.Policy,
		WorkingDays: n,
		Holidays:    holidays,
	}, nil
}

// holidaysIn returns the distinct dates of holiday events, in first-seen order.
func holidaysIn(events []calendar.Event) []calendar.Date {
	seen := make(map[calendar.Date]bool)
	var out []calendar.Date
	for _, e := range events {
		if e.Category != model.CategoryHoliday || !e.Date.Valid() || seen[e.Date] {
			continue
		}
		seen[e.Date] = true
		out = append(out, e.Date)
	}
	return out
}
