package source

import (
	"context"
	"strings"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/model"
	"cie-dashboard/internal/planner"
	"cie-dashboard/internal/planner/repository"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/log"
)

type studio struct{ base }

// NewStudio emits one event per dated shoot, edit and post phase of each
// content plan.
func NewStudio(l log.Logger, repo repository.Repository) event.Source {
	return &studio{base{l: l, repo: repo}}
}

func (s *studio) Name() string     { return "content_plans" }
func (s *studio) Page() model.Page { return model.PageStudio }

func (s *studio) Events(ctx context.Context, from, to calendar.Date) ([]calendar.Event, error) {
	plans, err := s.repo.ListContentPlans(ctx, repository.ListOptions{From: from, To: to})
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("studio", "Events"), err)
		return nil, err
	}

	var out []calendar.Event
	for _, p := range plans {
		for _, ph := range p.Phases() {
			if !ph.Date.Between(from, to) {
				continue
			}
			out = append(out, calendar.Event{
				ID:          p.ID + ":" + string(ph.Phase),
				Date:        ph.Date,
				Category:    ph.Phase,
				Title:       phaseLabel(ph.Phase) + ": " + p.Title,
				Description: describePlan(p),
			})
		}
	}
	return out, nil
}

func phaseLabel(c calendar.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// describePlan joins the plan's type, status and owner, skipping blanks.
func describePlan(p planner.ContentPlan) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Type, string(p.Status), p.TeamMember} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " · ")
}
