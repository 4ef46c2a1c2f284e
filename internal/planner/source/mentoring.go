package source

import (
	"context"
	"fmt"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/model"
	"cie-dashboard/internal/planner/repository"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/log"
)

type mentoring struct{ base }

// NewMentoring emits one event per mentoring week on its start date.
func NewMentoring(l log.Logger, repo repository.Repository) event.Source {
	return &mentoring{base{l: l, repo: repo}}
}

func (s *mentoring) Name() string     { return "mentoring_sessions" }
func (s *mentoring) Page() model.Page { return model.PageMentoring }

func (s *mentoring) Events(ctx context.Context, from, to calendar.Date) ([]calendar.Event, error) {
	sessions, err := s.repo.ListMentoringSessions(ctx, repository.ListOptions{From: from, To: to})
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("mentoring", "Events"), err)
		return nil, err
	}

	var out []calendar.Event
	for _, ms := range sessions {
		if !ms.StartDate.Between(from, to) {
			continue
		}
		category := model.CategorySession
		if ms.IsHoliday {
			category = model.CategoryHoliday
		}
		desc := ms.Topic
		if ms.Mentor != "" {
			desc = fmt.Sprintf("%s (mentor: %s)", ms.Topic, ms.Mentor)
		}
		out = append(out, calendar.Event{
			ID:          ms.ID,
			Date:        ms.StartDate,
			Category:    category,
			Title:       fmt.Sprintf("Week %d: %s", ms.WeekNumber, ms.Title),
			Description: desc,
		})
	}
	return out, nil
}
