package http

import (
	"fmt"
	"time"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/datemath"
	"cie-dashboard/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Page        model.Page `json:"-"` // populated from URI param
	Title       string     `json:"title"       binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	Venue       string     `json:"venue"       binding:"max=255"`
	Category    string     `json:"category"    binding:"max=64"`
	Color       string     `json:"color"       binding:"omitempty,hexcolor"`
	Date        string     `json:"date"        binding:"required,isodate"`
	Time        string     `json:"time"        binding:"omitempty,datetime=15:04"`
}

func (r createReq) toInput() event.CreateEventInput {
	return event.CreateEventInput{
		Page:        r.Page,
		Title:       r.Title,
		Description: r.Description,
		Venue:       r.Venue,
		Category:    r.Category,
		Color:       r.Color,
		Date:        r.Date,
		Time:        r.Time,
	}
}

// ---

type listReq struct {
	Page   model.Page `form:"-"`
	From   string     `form:"from"   binding:"omitempty,isodate"`
	To     string     `form:"to"     binding:"omitempty,isodate"`
	Limit  int        `form:"limit"`
	Offset int        `form:"offset"`
}

func (r listReq) toInput() event.ListEventsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	in := event.ListEventsInput{
		Page:   r.Page,
		Limit:  limit,
		Offset: r.Offset,
	}
	// Both already validated by the isodate tag.
	in.From, _ = parseOptionalDate(r.From)
	in.To, _ = parseOptionalDate(r.To)
	return in
}

func parseOptionalDate(s string) (calendar.Date, error) {
	if s == "" {
		return calendar.Date{}, nil
	}
	return calendar.ParseDate(s)
}

// ---

type updateReq struct {
	ID          string     `json:"-"`
	Page        model.Page `json:"-"`
	Title       string     `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
	Venue       string     `json:"venue"       binding:"omitempty,max=255"`
	Category    string     `json:"category"    binding:"omitempty,max=64"`
	Color       string     `json:"color"       binding:"omitempty,hexcolor"`
	Date        string     `json:"date"        binding:"omitempty,isodate"`
	Time        string     `json:"time"        binding:"omitempty,datetime=15:04"`
}

func (r updateReq) toInput() event.UpdateEventInput {
	return event.UpdateEventInput{
		ID:          r.ID,
		Page:        r.Page,
		Title:       r.Title,
		Description: r.Description,
		Venue:       r.Venue,
		Category:    r.Category,
		Color:       r.Color,
		Date:        r.Date,
		Time:        r.Time,
	}
}

// ---

// monthReq carries a 1-based month. Out-of-range months, 0 included, roll
// into the neighbouring year. Year and month come together or not at all.
type monthReq struct {
	Year  *int `form:"year"  binding:"omitempty,min=1,max=9999"`
	Month *int `form:"month" binding:"omitempty,min=-120,max=120"`
}

func (r monthReq) isSet() bool {
	return r.Year != nil && r.Month != nil
}

func (r monthReq) isPartial() bool {
	return (r.Year == nil) != (r.Month == nil)
}

func (r monthReq) cursor() calendar.MonthCursor {
	return calendar.NewMonthCursor(*r.Year, time.Month(*r.Month))
}

type navigateReq struct {
	monthReq
	Direction string `form:"direction" binding:"required,direction"`
}

type jumpReq struct {
	Date string `form:"date" binding:"required,max=64"`
}

type dayReq struct {
	Date   string `form:"date"   binding:"required,isodate"`
	Policy string `form:"policy" binding:"omitempty,oneof=sundays weekends"`
}

// policy is PolicyUnset when no policy was requested.
func (r dayReq) policy() datemath.Policy {
	p, _ := datemath.ParsePolicy(r.Policy)
	return p
}

type workdaysReq struct {
	From   string `form:"from"   binding:"required,isodate"`
	To     string `form:"to"     binding:"required,isodate"`
	Policy string `form:"policy" binding:"required,oneof=sundays weekends"`
}

func (r workdaysReq) toInput(page model.Page) event.WorkingDaysInput {
	p, _ := datemath.ParsePolicy(r.Policy)
	return event.WorkingDaysInput{Page: page, From: r.From, To: r.To, Policy: p}
}

type timelineReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// --- Response DTOs ---

type eventResp struct {
	ID          string             `json:"id"`
	Page        string             `json:"page"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Venue       string             `json:"venue,omitempty"`
	Category    string             `json:"category"`
	Color       string             `json:"color"`
	Date        string             `json:"date"`
	Time        string             `json:"time,omitempty"`
	CreatedAt   response.Timestamp `json:"created_at"`
	UpdatedAt   response.Timestamp `json:"updated_at"`
}

func newEventResp(e event.Event) eventResp {
	color := e.Color
	if color == "" {
		color = model.PaletteFor(e.Page).Color(e.Category)
	}
	return eventResp{
		ID:          e.ID,
		Page:        string(e.Page),
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		Category:    string(e.Category),
		Color:       string(color),
		Date:        e.Date.String(),
		Time:        e.Time,
		CreatedAt:   response.Timestamp(e.CreatedAt),
		UpdatedAt:   response.Timestamp(e.UpdatedAt),
	}
}

type calendarEventResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
}

func newCalendarEventResps(events []calendar.Event) []calendarEventResp {
	out := make([]calendarEventResp, len(events))
	for i, e := range events {
		out[i] = calendarEventResp{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Category:    string(e.Category),
			Color:       string(e.Color),
			Date:        e.Date.String(),
		}
		if !e.At.IsZero() {
			out[i].Time = e.At.Format(calendar.ClockLayout)
		}
	}
	return out
}

type cursorResp struct {
	Year int `json:"year"`
	// Month is 1-based; MonthIndex is the same month 0-based.
	Month      int    `json:"month"`
	MonthIndex int    `json:"month_index"`
	Label      string `json:"label"`
}

func newCursorResp(c calendar.MonthCursor) cursorResp {
	return cursorResp{
		Year:       c.Year,
		Month:      int(c.Month),
		MonthIndex: c.ZeroBasedMonth(),
		Label:      fmt.Sprintf("%s %d", c.Month, c.Year),
	}
}

type cellResp struct {
	Date           string              `json:"date"`
	Day            int                 `json:"day"`
	InCurrentMonth bool                `json:"in_current_month"`
	IsToday        bool                `json:"is_today"`
	Events         []calendarEventResp `json:"events"`
}

type legendResp struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Color    string `json:"color"`
}

func newLegendResps(entries []calendar.LegendEntry) []legendResp {
	out := make([]legendResp, len(entries))
	for i, e := range entries {
		out[i] = legendResp{Category: string(e.Category), Label: e.Label, Color: string(e.Color)}
	}
	return out
}

type monthResp struct {
	Page     string       `json:"page"`
	Cursor   cursorResp   `json:"cursor"`
	Today    string       `json:"today"`
	Selected string       `json:"selected,omitempty"`
	Weekdays []string     `json:"weekdays"`
	Weeks    [][]cellResp `json:"weeks"`
	Legend   []legendResp `json:"legend"`
}

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (h *handler) newMonthResp(out event.MonthGridOutput) monthResp {
	weeks := out.Grid.Weeks()
	rows := make([][]cellResp, len(weeks))
	for i, week := range weeks {
		row := make([]cellResp, len(week))
		for j, c := range week {
			row[j] = cellResp{
				Date:           c.Date.String(),
				Day:            c.Date.Day,
				InCurrentMonth: c.InCurrentMonth,
				IsToday:        c.IsToday,
				Events:         newCalendarEventResps(c.Events),
			}
		}
		rows[i] = row
	}
	return monthResp{
		Page:     string(out.Page),
		Cursor:   newCursorResp(out.Grid.Cursor),
		Today:    out.Today.String(),
		Selected: out.Selected.String(),
		Weekdays: weekdayLabels,
		Weeks:    rows,
		Legend:   newLegendResps(out.Legend),
	}
}

type createResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newCreateResp(out event.CreateEventOutput) createResp {
	return createResp{Event: newEventResp(out.Event)}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(out event.ListEventsOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return listResp{
		Events: events,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newDetailResp(out event.DetailEventOutput) detailResp {
	return detailResp{Event: newEventResp(out.Event)}
}

type updateResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newUpdateResp(out event.UpdateEventOutput) updateResp {
	return updateResp{Event: newEventResp(out.Event)}
}

type conflictResp struct {
	Weekend bool `json:"weekend"`
	Holiday bool `json:"holiday"`
}

type dayResp struct {
	Page     string              `json:"page"`
	Date     string              `json:"date"`
	Events   []calendarEventResp `json:"events"`
	Conflict *conflictResp       `json:"conflict,omitempty"`
}

func (h *handler) newDayResp(out event.DayDetailOutput) dayResp {
	resp := dayResp{
		Page:   string(out.Page),
		Date:   out.Clicked.Date.String(),
		Events: newCalendarEventResps(out.Clicked.Events),
	}
	if out.Conflict != nil {
		resp.Conflict = &conflictResp{Weekend: out.Conflict.Weekend, Holiday: out.Conflict.Holiday}
	}
	return resp
}

type workdaysResp struct {
	Page        string   `json:"page"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Policy      string   `json:"policy"`
	WorkingDays int      `json:"working_days"`
	Holidays    []string `json:"holidays"`
}

func (h *handler) newWorkdaysResp(out event.WorkingDaysOutput) workdaysResp {
	holidays := make([]string, 0, len(out.Holidays))
	for _, d := range out.Holidays {
		holidays = append(holidays, d.String())
	}
	return workdaysResp{
		Page:        string(out.Page),
		From:        out.From.String(),
		To:          out.To.String(),
		Policy:      out.Policy.String(),
		WorkingDays: out.WorkingDays,
		Holidays:    holidays,
	}
}

type legendListResp struct {
	Page     string       `json:"page"`
	Legend   []legendResp `json:"legend"`
	Fallback string       `json:"fallback"`
}

func (h *handler) newLegendResp(out event.LegendOutput) legendListResp {
	return legendListResp{
		Page:     string(out.Page),
		Legend:   newLegendResps(out.Legend),
		Fallback: string(out.Fallback),
	}
}

type timelineResp struct {
	Page   string              `json:"page"`
	Events []calendarEventResp `json:"events"`
}

func (h *handler) newTimelineResp(out event.TimelineOutput) timelineResp {
	return timelineResp{
		Page:   string(out.Page),
		Events: newCalendarEventResps(out.Events),
	}
}
