package http

import (
	"cie-dashboard/internal/planner"
)

type upcomingReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

func (r upcomingReq) toInput() planner.UpcomingContentInput {
	return planner.UpcomingContentInput{Limit: r.Limit}
}

type contentPlanResp struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	TeamMember string `json:"team_member,omitempty"`
	ShootDate  string `json:"shoot_date"`
	EditDate   string `json:"edit_date,omitempty"`
	PostDate   string `json:"post_date,omitempty"`
	NextPhase  string `json:"next_phase"`
	NextDate   string `json:"next_date"`
}

type upcomingResp struct {
	Today string            `json:"today"`
	Items []contentPlanResp `json:"items"`
}

func (h *handler) newUpcomingResp(out planner.UpcomingContentOutput) upcomingResp {
	items := make([]contentPlanResp, len(out.Items))
	for i, it := range out.Items {
		p := it.Plan
		items[i] = contentPlanResp{
			ID:         p.ID,
			Title:      p.Title,
			Type:       p.Type,
			Status:     string(p.Status),
			TeamMember: p.TeamMember,
			ShootDate:  p.ShootDate.String(),
			EditDate:   p.EditDate.String(),
			PostDate:   p.PostDate.String(),
			NextPhase:  string(it.Next.Phase),
			NextDate:   it.Next.Date.String(),
		}
	}
	return upcomingResp{Today: out.Today.String(), Items: items}
}

type sessionResp struct {
	ID         string `json:"id"`
	WeekNumber int    `json:"week_number"`
	Title      string `json:"title"`
	Topic      string `json:"topic,omitempty"`
	Mentor     string `json:"mentor,omitempty"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	IsHoliday  bool   `json:"is_holiday"`
}

type mentoringResp struct {
	TotalWeeks   int           `json:"total_weeks"`
	WorkingWeeks int           `json:"working_weeks"`
	Sessions     []sessionResp `json:"sessions"`
}

func (h *handler) newMentoringResp(out planner.MentoringSummaryOutput) mentoringResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = sessionResp{
			ID:         s.ID,
			WeekNumber: s.WeekNumber,
			Title:      s.Title,
			Topic:      s.Topic,
			Mentor:     s.Mentor,
			StartDate:  s.StartDate.String(),
			EndDate:    s.EndDate.String(),
			IsHoliday:  s.IsHoliday,
		}
	}
	return mentoringResp{
		TotalWeeks:   out.TotalWeeks,
		WorkingWeeks: out.WorkingWeeks,
		Sessions:     sessions,
	}
}

type cohortResp struct {
	ID             string   `json:"id"`
	ProjectName    string   `json:"project_name"`
	Status         string   `json:"status"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	ActiveDays     []string `json:"active_days"`
	Participants   int      `json:"participants"`
	Progress       int      `json:"progress"`
	DurationWeeks  int      `json:"duration_weeks"`
	ActiveDaysLeft int      `json:"active_days_left"`
}

type cohortsResp struct {
	Cohorts []cohortResp `json:"cohorts"`
}

func (h *handler) newCohortsResp(out planner.CohortsOutput) cohortsResp {
	cohorts := make([]cohortResp, len(out.Cohorts))
	for i, c := range out.Cohorts {
		days := make([]string, len(c.Project.ActiveDays))
		for j, wd := range c.Project.ActiveDays {
			days[j] = wd.String()
		}
		cohorts[i] = cohortResp{
			ID:             c.Project.ID,
			ProjectName:    c.Project.ProjectName,
			Status:         string(c.Project.Status),
			StartDate:      c.Project.StartDate.String(),
			EndDate:        c.Project.EndDate.String(),
			ActiveDays:     days,
			Participants:   c.Project.Participants,
			Progress:       c.Project.Progress,
			DurationWeeks:  c.DurationWeeks,
			ActiveDaysLeft: c.ActiveDaysLeft,
		}
	}
	return cohortsResp{Cohorts: cohorts}
}
