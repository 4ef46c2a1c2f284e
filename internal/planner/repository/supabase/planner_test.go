package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	repo "cie-dashboard/internal/planner/repository"
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

var march = repo.ListOptions{
	From: calendar.MustParseDate("2024-03-01"),
	To:   calendar.MustParseDate("2024-03-31"),
}

func TestListContentPlans(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/rest/v1/content_plans" {
			t.Errorf("path = %s", req.URL.Path)
		}
		w.Write([]byte(`[
			{"id":"p1","title":"Alumni reel","type":"video","status":"shoot","team_member":null,"shoot_date":"2024-02-20","edit_date":"2024-03-05","post_date":""},
			{"id":"p2","title":"Old","type":"video","status":"completed","shoot_date":"2024-01-02","edit_date":null,"post_date":null},
			{"id":"p3","title":"Broken","type":"video","status":"planning","shoot_date":"soon"}
		]`))
	})

	plans, err := r.ListContentPlans(context.Background(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != "p1" {
		t.Fatalf("plans = %+v, want only p1", plans)
	}
	if !plans[0].PostDate.IsZero() || plans[0].EditDate != calendar.MustParseDate("2024-03-05") {
		t.Fatalf("dates = %+v", plans[0])
	}
}

func TestListMentoringSessions(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if q.Get("start_date") != "lte.2024-03-31" || q.Get("end_date") != "gte.2024-03-01" {
			t.Errorf("unexpected query: %s", req.URL.RawQuery)
		}
		if q.Get("order") != "week_number.asc" {
			t.Errorf("order = %s", q.Get("order"))
		}
		w.Write([]byte(`[
			{"id":"s1","title":"Kickoff","topic":"Goals","mentor":"Asha","week_number":1,"start_date":"2024-03-04","end_date":"2024-03-08","is_holiday":false},
			{"id":"s2","title":"Break","week_number":2,"start_date":"2024-03-11","end_date":"2024-03-15","is_holiday":true}
		]`))
	})

	sessions, err := r.ListMentoringSessions(context.Background(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 || sessions[0].Mentor != "Asha" || !sessions[1].IsHoliday {
		t.Fatalf("sessions = %+v", sessions)
	}
}

func TestListCohortProjects(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[
			{"id":"c1","project_name":"Robotics","status":"active","start_date":"2024-02-01","end_date":"2024-04-30","active_days":["monday","Wed","funday"],"participants":12,"progress":40}
		]`))
	})

	cohorts, err := r.ListCohortProjects(context.Background(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cohorts) != 1 {
		t.Fatalf("cohorts = %+v", cohorts)
	}
	c := cohorts[0]
	if len(c.ActiveDays) != 2 || c.ActiveDays[0] != time.Monday || c.ActiveDays[1] != time.Wednesday {
		t.Fatalf("active days = %v", c.ActiveDays)
	}
	if c.Participants != 12 || c.Status != "active" {
		t.Fatalf("cohort = %+v", c)
	}
}

func TestListFailure(t *testing.T) {
	r := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"down"}`))
	})

	if _, err := r.ListCohortProjects(context.Background(), march); !errors.Is(err, repo.ErrFailedToList) {
		t.Fatalf("err = %v, want ErrFailedToList", err)
	}
}
