package usecase

import (
	"context"
	"sort"

	"cie-dashboard/internal/planner"
	"cie-dashboard/internal/planner/repository"
	"cie-dashboard/pkg/calendar"
)

// UpcomingContent lists studio plans that still have a phase ahead, soonest first.
func (uc *implUseCase) UpcomingContent(ctx context.Context, input planner.UpcomingContentInput) (planner.UpcomingContentOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	today := calendar.Today(uc.clock)
	plans, err := uc.repo.ListContentPlans(ctx, repository.ListOptions{From: today})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpcomingContent ListContentPlans: %v", err)
		return planner.UpcomingContentOutput{}, planner.ErrPlannerUnavailable
	}

	items := make([]planner.UpcomingContent, 0, len(plans))
	for _, p := range plans {
		next, ok := p.NextPhase(today)
		if !ok {
			continue
		}
		items = append(items, planner.UpcomingContent{Plan: p, Next: next})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Next.Date.Before(items[j].Next.Date)
	})
	if len(items) > limit {
		items = items[:limit]
	}

	return planner.UpcomingContentOutput{Today: today, Items: items}, nil
}

// MentoringSummary returns every mentoring week with the working-week count.
func (uc *implUseCase) MentoringSummary(ctx context.Context) (planner.MentoringSummaryOutput, error) {
	sessions, err := uc.repo.ListMentoringSessions(ctx, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MentoringSummary ListMentoringSessions: %v", err)
		return planner.MentoringSummaryOutput{}, planner.ErrPlannerUnavailable
	}
	return planner.MentoringSummaryOutput{
		Sessions:     sessions,
		TotalWeeks:   len(sessions),
		WorkingWeeks: planner.WorkingWeeks(sessions),
	}, nil
}

// Cohorts returns every cohort with its duration and remaining meeting days.
func (uc *implUseCase) Cohorts(ctx context.Context) (planner.CohortsOutput, error) {
	projects, err := uc.repo.ListCohortProjects(ctx, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Cohorts ListCohortProjects: %v", err)
		return planner.CohortsOutput{}, planner.ErrPlannerUnavailable
	}

	today := calendar.Today(uc.clock)
	out := make([]planner.CohortSummary, len(projects))
	for i, p := range projects {
		out[i] = planner.CohortSummary{
			Project:        p,
			DurationWeeks:  p.DurationWeeks(),
			ActiveDaysLeft: activeDaysLeft(p, today),
		}
	}
	return planner.CohortsOutput{Cohorts: out}, nil
}

func activeDaysLeft(p planner.CohortProject, today calendar.Date) int {
	start := p.StartDate
	if start.Before(today) {
		start = today
	}
	n := 0
	for d := start; !d.After(p.EndDate); d = d.AddDays(1) {
		if p.IsActiveOn(d) {
			n++
		}
	}
	return n
}
