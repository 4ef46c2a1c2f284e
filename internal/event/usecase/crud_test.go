package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/event/usecase"
	"cie-dashboard/internal/model"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   event.CreateEventInput
		wantErr error
		wantCat string
	}{
		{
			name:    "valid exam",
			input:   event.CreateEventInput{Page: model.PageAcademic, Title: "Mid-sem", Date: "2024-03-15", Category: "exam"},
			wantCat: "exam",
		},
		{
			name:    "legacy label",
			input:   event.CreateEventInput{Page: model.PageAcademic, Title: "Holi", Date: "2024-03-25", Category: "Holidays"},
			wantCat: "holiday",
		},
		{
			name:    "default category",
			input:   event.CreateEventInput{Page: model.PageEvents, Title: "Demo day", Date: "2024-03-28"},
			wantCat: "event",
		},
		{
			name:    "empty title",
			input:   event.CreateEventInput{Page: model.PageAcademic, Title: "  ", Date: "2024-03-15"},
			wantErr: event.ErrEmptyTitle,
		},
		{
			name:    "bad date",
			input:   event.CreateEventInput{Page: model.PageAcademic, Title: "x", Date: "2024-02-30"},
			wantErr: event.ErrInvalidDate,
		},
		{
			name:    "category outside page",
			input:   event.CreateEventInput{Page: model.PageMentoring, Title: "x", Date: "2024-03-15", Category: "exam"},
			wantErr: event.ErrUnknownCategory,
		},
		{
			name:    "category case sensitive",
			input:   event.CreateEventInput{Page: model.PageAcademic, Title: "x", Date: "2024-03-15", Category: "Exam"},
			wantErr: event.ErrUnknownCategory,
		},
		{
			name:    "unknown page",
			input:   event.CreateEventInput{Page: "admin", Title: "x", Date: "2024-03-15"},
			wantErr: event.ErrUnknownPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase()
			out, err := uc.Create(ctx, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Event.ID != "e1" {
				t.Errorf("expected injected id e1, got %s", out.Event.ID)
			}
			if string(out.Event.Category) != tt.wantCat {
				t.Errorf("category = %s, want %s", out.Event.Category, tt.wantCat)
			}
		})
	}
}

func TestDetailUpdateDelete(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.Create(ctx, event.CreateEventInput{Page: model.PageAcademic, Title: "Mid-sem", Date: "2024-03-15", Category: "exam", Venue: "Hall A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Event.ID

	if _, err := uc.Detail(ctx, model.PageEvents, id); !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("event leaked across pages: %v", err)
	}

	updated, err := uc.Update(ctx, event.UpdateEventInput{ID: id, Page: model.PageAcademic, Date: "2024-03-18"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Event.Title != "Mid-sem" || updated.Event.Venue != "Hall A" || updated.Event.Date.String() != "2024-03-18" {
		t.Errorf("partial update lost fields: %+v", updated.Event)
	}

	if _, err := uc.Update(ctx, event.UpdateEventInput{ID: id, Page: model.PageAcademic, Category: "party"}); !errors.Is(err, event.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
	if _, err := uc.Update(ctx, event.UpdateEventInput{ID: "missing", Page: model.PageAcademic}); !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}

	if err := uc.Delete(ctx, model.PageAcademic, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(ctx, model.PageAcademic, id); !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("second delete should be not found, got %v", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	for _, d := range []string{"2024-03-20", "2024-03-01", "2024-04-02"} {
		if _, err := uc.Create(ctx, event.CreateEventInput{Page: model.PageEvents, Title: d, Date: d}); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}

	out, err := uc.List(ctx, event.ListEventsInput{Page: model.PageEvents, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Total != 3 || len(out.Events) != 2 || out.Events[0].Title != "2024-03-01" {
		t.Errorf("unexpected list: total=%d events=%+v", out.Total, out.Events)
	}
}

func TestStoreFailure(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, failingRepo{}, &seqIDs{}, march10, nil)

	if _, err := uc.Create(ctx, event.CreateEventInput{Page: model.PageAcademic, Title: "x", Date: "2024-03-15"}); !errors.Is(err, errStore) {
		t.Errorf("expected store error, got %v", err)
	}
	if _, err := uc.Today(ctx, model.PageAcademic); !errors.Is(err, errStore) {
		t.Errorf("expected store error, got %v", err)
	}
}
