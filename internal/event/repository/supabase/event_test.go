package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	repo "cie-dashboard/internal/event/repository"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/log"
	pkgSupabase "cie-dashboard/pkg/supabase"
)

func newTestRepo(t *testing.T, h http.HandlerFunc) repo.Repository {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return New(pkgSupabase.NewClient(pkgSupabase.Config{URL: ts.URL, APIKey: "anon"}), log.NewNop())
}

func TestListEvents(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if q.Get("page") != "eq.academic" || q.Get("order") != "event_date.asc,created_at.asc" {
			t.Errorf("unexpected query: %s", req.URL.RawQuery)
		}
		w.Write([]byte(`[
			{"id":"1","page":"academic","title":"Republic Day","description":null,"venue":null,"event_type":"Holidays","color":"","event_date":"2024-01-26","event_time":null},
			{"id":"2","page":"academic","title":"Broken","event_type":"exam","color":"","event_date":"not-a-date"},
			{"id":"3","page":"academic","title":"Mid-sem","description":"Block A","venue":"Hall","event_type":"exam","color":"#F28B82","event_date":"2024-03-15","event_time":"09:30"}
		]`))
	})

	events, total, err := r.ListEvents(context.Background(), repo.ListEventsOptions{
		Page:  model.PageAcademic,
		Limit: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2 (bad row skipped)", total)
	}
	if len(events) != 1 || events[0].ID != "1" || events[0].Date != calendar.MustParseDate("2024-01-26") {
		t.Fatalf("unexpected events: %+v", events)
	}
	if events[0].Category != model.CategoryHoliday {
		t.Errorf("legacy label mapped to %q, want holiday", events[0].Category)
	}
}

func TestCreateEvent(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		var row eventRow
		if err := json.Unmarshal(body, &row); err != nil {
			t.Errorf("bad body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if row.Description != nil {
			t.Errorf("empty description should be null")
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode([]eventRow{row})
	})

	e, err := r.CreateEvent(context.Background(), repo.CreateEventOptions{
		ID:       "abc",
		Page:     model.PageEvents,
		Title:    "Hackathon",
		Category: "event",
		Date:     calendar.MustParseDate("2024-04-12"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != "abc" || e.Page != model.PageEvents || e.Date.String() != "2024-04-12" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestCreateEventDuplicate(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
	})

	_, err := r.CreateEvent(context.Background(), repo.CreateEventOptions{ID: "abc", Date: calendar.MustParseDate("2024-04-12")})
	if !errors.Is(err, repo.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestGetOneEventNotFound(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[]`))
	})

	e, err := r.GetOneEvent(context.Background(), repo.GetOneEventOptions{ID: "missing"})
	if err != nil || e.ID != "" {
		t.Fatalf("expected zero value, got %+v, %v", e, err)
	}
}

func TestDeleteEventFailure(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := r.DeleteEvent(context.Background(), repo.DeleteEventOptions{ID: "x", Page: model.PageAcademic})
	if !errors.Is(err, repo.ErrFailedToDelete) {
		t.Fatalf("expected ErrFailedToDelete, got %v", err)
	}
}
