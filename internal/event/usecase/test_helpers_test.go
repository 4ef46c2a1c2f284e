package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cie-dashboard/internal/event"
	repo "cie-dashboard/internal/event/repository"
	"cie-dashboard/internal/event/repository/memory"
	"cie-dashboard/internal/event/usecase"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// seqIDs hands out e1, e2, ...
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("e%d", g.n)
}

type fakeSource struct {
	name   string
	page   model.Page
	events []calendar.Event
	err    error
	calls  int
}

func (s *fakeSource) Name() string     { return s.name }
func (s *fakeSource) Page() model.Page { return s.page }
func (s *fakeSource) Events(ctx context.Context, from, to calendar.Date) ([]calendar.Event, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	var out []calendar.Event
	for _, e := range s.events {
		if e.Date.Between(from, to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// failingRepo fails every call.
type failingRepo struct{}

var errStore = errors.New("store down")

func (failingRepo) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (event.Event, error) {
	return event.Event{}, errStore
}
func (failingRepo) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (event.Event, error) {
	return event.Event{}, errStore
}
func (failingRepo) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]event.Event, int, error) {
	return nil, 0, errStore
}
func (failingRepo) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (event.Event, error) {
	return event.Event{}, errStore
}
func (failingRepo) DeleteEvent(ctx context.Context, opt repo.DeleteEventOptions) error {
	return errStore
}

// march10 is Sunday 2024-03-10, 10:00 UTC.
var march10 = calendar.FixedClock{T: time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)}

func newUseCase(sources ...event.Source) event.UseCase {
	parser, _ := datemath.NewParser("UTC")
	return usecase.New(&mockLogger{}, memory.New(&mockLogger{}), &seqIDs{}, march10, parser, sources...)
}
