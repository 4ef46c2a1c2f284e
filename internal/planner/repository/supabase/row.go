package supabase

import (
	"cie-dashboard/internal/planner"
	"cie-dashboard/pkg/calendar"
)

type contentPlanRow struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	TeamMember *string `json:"team_member"`
	ShootDate  string  `json:"shoot_date"`
	EditDate   *string `json:"edit_date"`
	PostDate   *string `json:"post_date"`
}

type mentoringSessionRow struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Topic      *string `json:"topic"`
	Mentor     *string `json:"mentor"`
	WeekNumber int     `json:"week_number"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	IsHoliday  *bool   `json:"is_holiday"`
}

type cohortProjectRow struct {
	ID           string   `json:"id"`
	ProjectName  string   `json:"project_name"`
	Status       string   `json:"status"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	ActiveDays   []string `json:"active_days"`
	Participants *int     `json:"participants"`
	Progress     *int     `json:"progress"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// optionalDate treats null and "" as no date.
func optionalDate(s *string) (calendar.Date, error) {
	if s == nil || *s == "" {
		return calendar.Date{}, nil
	}
	return calendar.ParseDate(*s)
}

func (row contentPlanRow) toContentPlan() (planner.ContentPlan, error) {
	shoot, err := calendar.ParseDate(row.ShootDate)
	if err != nil {
		return planner.ContentPlan{}, err
	}
	edit, err := optionalDate(row.EditDate)
	if err != nil {
		return planner.ContentPlan{}, err
	}
	post, err := optionalDate(row.PostDate)
	if err != nil {
		return planner.ContentPlan{}, err
	}
	return planner.ContentPlan{
		ID:         row.ID,
		Title:      row.Title,
		Type:       row.Type,
		Status:     calendar.Category(row.Status),
		TeamMember: deref(row.TeamMember),
		ShootDate:  shoot,
		EditDate:   edit,
		PostDate:   post,
	}, nil
}

func (row mentoringSessionRow) toMentoringSession() (planner.MentoringSession, error) {
	start, err := calendar.ParseDate(row.StartDate)
	if err != nil {
		return planner.MentoringSession{}, err
	}
	end, err := calendar.ParseDate(row.EndDate)
	if err != nil {
		return planner.MentoringSession{}, err
	}
	return planner.MentoringSession{
		ID:         row.ID,
		Title:      row.Title,
		Topic:      deref(row.Topic),
		Mentor:     deref(row.Mentor),
		WeekNumber: row.WeekNumber,
		StartDate:  start,
		EndDate:    end,
		IsHoliday:  deref(row.IsHoliday),
	}, nil
}

func (row cohortProjectRow) toCohortProject() (planner.CohortProject, error) {
	start, err := calendar.ParseDate(row.StartDate)
	if err != nil {
		return planner.CohortProject{}, err
	}
	end, err := calendar.ParseDate(row.EndDate)
	if err != nil {
		return planner.CohortProject{}, err
	}
	return planner.CohortProject{
		ID:           row.ID,
		ProjectName:  row.ProjectName,
		Status:       calendar.Category(row.Status),
		StartDate:    start,
		EndDate:      end,
		ActiveDays:   planner.ParseWeekdays(row.ActiveDays),
		Participants: deref(row.Participants),
		Progress:     deref(row.Progress),
	}, nil
}
