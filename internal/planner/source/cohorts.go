package source

import (
	"context"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/model"
	"cie-dashboard/internal/planner/repository"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/log"
)

type cohorts struct{ base }

// NewCohorts emits an event on every active day of each cohort project,
// tagged with the project's status.
func NewCohorts(l log.Logger, repo repository.Repository) event.Source {
	return &cohorts{base{l: l, repo: repo}}
}

func (s *cohorts) Name() string     { return "cohort_projects" }
func (s *cohorts) Page() model.Page { return model.PageCohorts }

func (s *cohorts) Events(ctx context.Context, from, to calendar.Date) ([]calendar.Event, error) {
	if !from.Valid() || !to.Valid() {
		return nil, nil
	}
	projects, err := s.repo.ListCohortProjects(ctx, repository.ListOptions{From: from, To: to})
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("cohorts", "Events"), err)
		return nil, err
	}

	var out []calendar.Event
	for d := from; !d.After(to); d = d.AddDays(1) {
		for _, p := range projects {
			if !p.IsActiveOn(d) {
				continue
			}
			out = append(out, calendar.Event{
				ID:          p.ID + ":" + d.String(),
				Date:        d,
				Category:    p.Status,
				Title:       p.ProjectName,
				Description: string(p.Status),
			})
		}
	}
	return out, nil
}
