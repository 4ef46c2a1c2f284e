package supabase

import (
	"context"

	"cie-dashboard/internal/planner"
	repo "cie-dashboard/internal/planner/repository"
	pkgSupabase "cie-dashboard/pkg/supabase"
)

// ListContentPlans returns plans with at least one phase inside the window,
// ordered by shoot date. content_plans has three date columns, so the window
// is applied after the select.
func (r *implRepository) ListContentPlans(ctx context.Context, opt repo.ListOptions) ([]planner.ContentPlan, error) {
	q := pkgSupabase.NewQuery().Order("shoot_date", true).Order("created_at", true)

	var rows []contentPlanRow
	if err := r.client.Select(ctx, contentPlansTable, q, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListContentPlans"), err)
		return nil, repo.ErrFailedToList
	}

	plans := make([]planner.ContentPlan, 0, len(rows))
	for _, row := range rows {
		p, err := row.toContentPlan()
		if err != nil {
			r.l.Warnf(ctx, "%s: skipping row %s: %v", r.dsn("ListContentPlans"), row.ID, err)
			continue
		}
		if !phaseInWindow(p, opt) {
			continue
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func phaseInWindow(p planner.ContentPlan, opt repo.ListOptions) bool {
	for _, ph := range p.Phases() {
		if !opt.From.IsZero() && ph.Date.Before(opt.From) {
			continue
		}
		if !opt.To.IsZero() && ph.Date.After(opt.To) {
			continue
		}
		return true
	}
	return false
}

// ListMentoringSessions returns sessions overlapping the window by week number.
func (r *implRepository) ListMentoringSessions(ctx context.Context, opt repo.ListOptions) ([]planner.MentoringSession, error) {
	q := pkgSupabase.NewQuery().Order("week_number", true)
	overlap(q, opt)

	var rows []mentoringSessionRow
	if err := r.client.Select(ctx, mentoringSessionsTable, q, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMentoringSessions"), err)
		return nil, repo.ErrFailedToList
	}

	sessions := make([]planner.MentoringSession, 0, len(rows))
	for _, row := range rows {
		s, err := row.toMentoringSession()
		if err != nil {
			r.l.Warnf(ctx, "%s: skipping row %s: %v", r.dsn("ListMentoringSessions"), row.ID, err)
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// ListCohortProjects returns cohorts overlapping the window by start date.
func (r *implRepository) ListCohortProjects(ctx context.Context, opt repo.ListOptions) ([]planner.CohortProject, error) {
	q := pkgSupabase.NewQuery().Order("start_date", true)
	overlap(q, opt)

	var rows []cohortProjectRow
	if err := r.client.Select(ctx, cohortProjectsTable, q, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCohortProjects"), err)
		return nil, repo.ErrFailedToList
	}

	cohorts := make([]planner.CohortProject, 0, len(rows))
	for _, row := range rows {
		c, err := row.toCohortProject()
		if err != nil {
			r.l.Warnf(ctx, "%s: skipping row %s: %v", r.dsn("ListCohortProjects"), row.ID, err)
			continue
		}
		cohorts = append(cohorts, c)
	}
	return cohorts, nil
}

// overlap keeps rows whose [start_date, end_date] intersects the window.
func overlap(q *pkgSupabase.Query, opt repo.ListOptions) {
	if !opt.To.IsZero() {
		q.Lte("start_date", opt.To.String())
	}
	if !opt.From.IsZero() {
		q.Gte("end_date", opt.From.String())
	}
}
