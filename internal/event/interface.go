package event

import (
	"context"

	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Event CRUD
	Create(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	List(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	Detail(ctx context.Context, page model.Page, id string) (DetailEventOutput, error)
	Update(ctx context.Context, input UpdateEventInput) (UpdateEventOutput, error)
	Delete(ctx context.Context, page model.Page, id string) error

	// Calendar
	MonthGrid(ctx context.Context, input MonthGridInput) (MonthGridOutput, error)
	Navigate(ctx context.Context, input NavigateInput) (MonthGridOutput, error)
	Today(ctx context.Context, page model.Page) (MonthGridOutput, error)
	Jump(ctx context.Context, input JumpInput) (MonthGridOutput, error)
	DayDetail(ctx context.Context, input DayDetailInput) (DayDetailOutput, error)
	Legend(ctx context.Context, page model.Page) (LegendOutput, error)
	WorkingDays(ctx context.Context, input WorkingDaysInput) (WorkingDaysOutput, error)

	// Timeline
	Upcoming(ctx context.Context, input TimelineInput) (TimelineOutput, error)
	Past(ctx context.Context, input TimelineInput) (TimelineOutput, error)
}

// Source contributes read-only events to a page's calendar. Implementations
// live outside the event store: planner tables, ICS feeds, Google Calendar.
type Source interface {
	Name() string
	Page() model.Page
	Events(ctx context.Context, from, to calendar.Date) ([]calendar.Event, error)
}
