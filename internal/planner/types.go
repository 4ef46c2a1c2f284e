package planner

import (
	"math"
	"strings"
	"time"

	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
)

// --- Studio ---

// ContentPlan is a studio production item. Only ShootDate is mandatory.
type ContentPlan struct {
	ID         string
	Title      string
	Type       string
	Status     calendar.Category
	TeamMember string
	ShootDate  calendar.Date
	EditDate   calendar.Date
	PostDate   calendar.Date
}

// PhaseDate is one dated production phase of a ContentPlan.
type PhaseDate struct {
	Phase calendar.Category
	Date  calendar.Date
}

// Phases returns the plan's dated phases in production order, skipping
// phases without a date.
func (p ContentPlan) Phases() []PhaseDate {
	var out []PhaseDate
	for _, ph := range []PhaseDate{
		{Phase: model.CategoryShoot, Date: p.ShootDate},
		{Phase: model.CategoryEdit, Date: p.EditDate},
		{Phase: model.CategoryPost, Date: p.PostDate},
	} {
		if ph.Date.Valid() {
			out = append(out, ph)
		}
	}
	return out
}

// NextPhase returns the earliest phase dated on or after today.
func (p ContentPlan) NextPhase(today calendar.Date) (PhaseDate, bool) {
	var (
		best  PhaseDate
		found bool
	)
	for _, ph := range p.Phases() {
		if ph.Date.Before(today) {
			continue
		}
		if !found || ph.Date.Before(best.Date) {
			best, found = ph, true
		}
	}
	return best, found
}

// --- Mentoring ---

type MentoringSession struct {
	ID         string
	Title      string
	Topic      string
	Mentor     string
	WeekNumber int
	StartDate  calendar.Date
	EndDate    calendar.Date
	IsHoliday  bool
}

// WorkingWeeks counts the sessions not flagged as holiday weeks.
func WorkingWeeks(sessions []MentoringSession) int {
	n := 0
	for _, s := range sessions {
		if !s.IsHoliday {
			n++
		}
	}
	return n
}

// --- Cohorts ---

type CohortProject struct {
	ID           string
	ProjectName  string
	Status       calendar.Category
	StartDate    calendar.Date
	EndDate      calendar.Date
	ActiveDays   []time.Weekday
	Participants int
	Progress     int
}

// DurationWeeks is the span from start to end rounded up to whole weeks.
func (c CohortProject) DurationWeeks() int {
	days := c.EndDate.DaysSince(c.StartDate)
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(float64(days) / 7))
}

// IsActiveOn reports whether the cohort meets on d. An empty ActiveDays
// means Monday to Friday.
func (c CohortProject) IsActiveOn(d calendar.Date) bool {
	if !d.Between(c.StartDate, c.EndDate) {
		return false
	}
	wd := d.Weekday()
	if len(c.ActiveDays) == 0 {
		return wd != time.Saturday && wd != time.Sunday
	}
	for _, a := range c.ActiveDays {
		if a == wd {
			return true
		}
	}
	return false
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// ParseWeekdays maps names like "monday" or "Fri" to weekdays, dropping
// anything unrecognised.
func ParseWeekdays(names []string) []time.Weekday {
	out := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(n))]; ok {
			out = append(out, wd)
		}
	}
	return out
}

// --- UseCase Inputs / Outputs ---

type UpcomingContentInput struct {
	Limit int
}

// UpcomingContent is a plan paired with the phase that comes next.
type UpcomingContent struct {
	Plan ContentPlan
	Next PhaseDate
}

type UpcomingContentOutput struct {
	Today calendar.Date
	Items []UpcomingContent
}

type MentoringSummaryOutput struct {
	Sessions     []MentoringSession
	TotalWeeks   int
	WorkingWeeks int
}

type CohortSummary struct {
	Project       CohortProject
	DurationWeeks int
	// ActiveDaysLeft counts meeting days from today to EndDate.
	ActiveDaysLeft int
}

type CohortsOutput struct {
	Cohorts []CohortSummary
}
