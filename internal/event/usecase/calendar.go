package usecase

import (
	"context"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/datemath"
)

// MonthGrid renders the 42-cell grid of a page for input.Cursor.
func (uc *implUseCase) MonthGrid(ctx context.Context, input event.MonthGridInput) (event.MonthGridOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.MonthGridOutput{}, err
	}
	return uc.month(ctx, input.Page, input.Cursor, calendar.Today(uc.clock))
}

// Navigate moves one month from input.Cursor and renders the result.
func (uc *implUseCase) Navigate(ctx context.Context, input event.NavigateInput) (event.MonthGridOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.MonthGridOutput{}, err
	}
	if input.Direction != calendar.Previous && input.Direction != calendar.Next {
		return event.MonthGridOutput{}, event.ErrInvalidDirection
	}
	cursor := calendar.Navigate(input.Cursor, input.Direction)
	return uc.month(ctx, input.Page, cursor, calendar.Today(uc.clock))
}

// Today renders the current month.
func (uc *implUseCase) Today(ctx context.Context, page model.Page) (event.MonthGridOutput, error) {
	if err := uc.validatePage(page); err != nil {
		return event.MonthGridOutput{}, err
	}
	today := calendar.Today(uc.clock)
	return uc.month(ctx, page, calendar.JumpToDate(today), today)
}

// Jump renders the month containing the date input.Expr resolves to.
func (uc *implUseCase) Jump(ctx context.Context, input event.JumpInput) (event.MonthGridOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.MonthGridOutput{}, err
	}

	now := uc.clock.Now()
	var (
		target calendar.Date
		err    error
	)
	if uc.dateMath != nil {
		target, err = uc.dateMath.ParseDate(input.Expr, now)
	} else {
		target, err = calendar.ParseDate(input.Expr)
	}
	if err != nil {
		uc.l.Debugf(ctx, "uc.Jump: cannot resolve %q: %v", input.Expr, err)
		return event.MonthGridOutput{}, event.ErrInvalidDate
	}

	out, err := uc.month(ctx, input.Page, calendar.JumpToDate(target), calendar.DateOf(now))
	if err != nil {
		return event.MonthGridOutput{}, err
	}
	out.Selected = target
	return out, nil
}

// DayDetail returns the events resolved onto one date.
func (uc *implUseCase) DayDetail(ctx context.Context, input event.DayDetailInput) (event.DayDetailOutput, error) {
	if err := uc.validatePage(input.Page); err != nil {
		return event.DayDetailOutput{}, err
	}
	date, err := uc.parseDate(input.Date)
	if err != nil {
		return event.DayDetailOutput{}, err
	}

	events, err := uc.collect(ctx, input.Page, date, date)
	if err != nil {
		return event.DayDetailOutput{}, err
	}
	out := event.DayDetailOutput{
		Page: input.Page,
		Clicked: calendar.DateClicked{
			Date:   date,
			Events: calendar.EventsOn(events, date),
		},
	}

	if input.Policy != datemath.PolicyUnset {
		c, err := datemath.Conflicts(date, input.Policy, holidaysIn(out.Clicked.Events))
		if err != nil {
			return event.DayDetailOutput{}, err
		}
		out.Conflict = &c
	}
	return out, nil
}

// Legend returns the page's category legend.
func (uc *implUseCase) Legend(ctx context.Context, page model.Page) (event.LegendOutput, error) {
	if err := uc.validatePage(page); err != nil {
		return event.LegendOutput{}, err
	}
	p := model.PaletteFor(page)
	return event.LegendOutput{
		Page:     page,
		Legend:   p.Legend(),
		Fallback: p.Fallback(),
	}, nil
}
