package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cie-dashboard/internal/planner"
	"cie-dashboard/internal/planner/repository"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/log"
)

type fakeRepo struct {
	plans    []planner.ContentPlan
	sessions []planner.MentoringSession
	cohorts  []planner.CohortProject
	err      error
	lastOpt  repository.ListOptions
}

func (f *fakeRepo) ListContentPlans(ctx context.Context, opt repository.ListOptions) ([]planner.ContentPlan, error) {
	f.lastOpt = opt
	return f.plans, f.err
}
func (f *fakeRepo) ListMentoringSessions(ctx context.Context, opt repository.ListOptions) ([]planner.MentoringSession, error) {
	f.lastOpt = opt
	return f.sessions, f.err
}
func (f *fakeRepo) ListCohortProjects(ctx context.Context, opt repository.ListOptions) ([]planner.CohortProject, error) {
	f.lastOpt = opt
	return f.cohorts, f.err
}

// Sunday 2024-03-10.
var clock = calendar.FixedClock{T: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)}

func TestUpcomingContent(t *testing.T) {
	repo := &fakeRepo{plans: []planner.ContentPlan{
		{ID: "late", ShootDate: calendar.MustParseDate("2024-03-20")},
		{ID: "editing", ShootDate: calendar.MustParseDate("2024-03-01"), EditDate: calendar.MustParseDate("2024-03-12")},
		{ID: "done", ShootDate: calendar.MustParseDate("2024-02-01")},
		{ID: "today", ShootDate: calendar.MustParseDate("2024-03-10")},
	}}
	uc := New(log.NewNop(), repo, clock)

	out, err := uc.UpcomingContent(context.Background(), planner.UpcomingContentInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastOpt.From != calendar.MustParseDate("2024-03-10") {
		t.Errorf("listed from %s, want today", repo.lastOpt.From)
	}

	want := []string{"today", "editing", "late"}
	if len(out.Items) != len(want) {
		t.Fatalf("items = %+v", out.Items)
	}
	for i, id := range want {
		if out.Items[i].Plan.ID != id {
			t.Errorf("item %d = %s, want %s", i, out.Items[i].Plan.ID, id)
		}
	}
	if out.Items[1].Next.Phase != "edit" {
		t.Errorf("editing next phase = %s", out.Items[1].Next.Phase)
	}

	limited, _ := uc.UpcomingContent(context.Background(), planner.UpcomingContentInput{Limit: 1})
	if len(limited.Items) != 1 {
		t.Errorf("limit ignored: %d items", len(limited.Items))
	}
}

func TestMentoringSummary(t *testing.T) {
	repo := &fakeRepo{sessions: []planner.MentoringSession{
		{WeekNumber: 1}, {WeekNumber: 2, IsHoliday: true}, {WeekNumber: 3},
	}}
	out, err := New(log.NewNop(), repo, clock).MentoringSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalWeeks != 3 || out.WorkingWeeks != 2 {
		t.Fatalf("summary = %d/%d, want 3/2", out.WorkingWeeks, out.TotalWeeks)
	}
}

func TestCohorts(t *testing.T) {
	repo := &fakeRepo{cohorts: []planner.CohortProject{{
		ID:         "c1",
		StartDate:  calendar.MustParseDate("2024-03-01"),
		EndDate:    calendar.MustParseDate("2024-03-22"),
		ActiveDays: []time.Weekday{time.Friday},
	}}}
	out, err := New(log.NewNop(), repo, clock).Cohorts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := out.Cohorts[0]
	// Fridays left from 03-10: 03-15 and 03-22.
	if c.DurationWeeks != 3 || c.ActiveDaysLeft != 2 {
		t.Fatalf("cohort = %+v", c)
	}
}

func TestPlannerUnavailable(t *testing.T) {
	uc := New(log.NewNop(), &fakeRepo{err: errors.New("down")}, clock)
	if _, err := uc.Cohorts(context.Background()); !errors.Is(err, planner.ErrPlannerUnavailable) {
		t.Errorf("Cohorts err = %v", err)
	}
	if _, err := uc.MentoringSummary(context.Background()); !errors.Is(err, planner.ErrPlannerUnavailable) {
		t.Errorf("MentoringSummary err = %v", err)
	}
	if _, err := uc.UpcomingContent(context.Background(), planner.UpcomingContentInput{}); !errors.Is(err, planner.ErrPlannerUnavailable) {
		t.Errorf("UpcomingContent err = %v", err)
	}
}
