// Package feed imports events from outside the dashboard: subscribed ICS
// calendars and a Google Calendar. Each feed is an event.Source for one page.
package feed

import (
	"time"

	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
)

// Config describes one subscribed ICS feed.
type Config struct {
	ID       string
	URL      string
	Page     model.Page
	Category calendar.Category
}

// VEvent is a parsed VEVENT before recurrence expansion.
type VEvent struct {
	UID         string
	Summary     string
	Description string
	Location    string

	AllDay bool
	// For all-day events StartDate/EndDate hold the floating dates
	// (EndDate exclusive); Start/End are set for timed events.
	StartDate calendar.Date
	EndDate   calendar.Date
	Start     time.Time
	End       time.Time

	RRule   string
	ExDates []time.Time
	// RecurrenceID marks an override of one instance of a recurring event.
	RecurrenceID *time.Time
}

// Occurrence is one expanded instance placed on a date.
type Occurrence struct {
	UID         string
	Date        calendar.Date
	At          time.Time // zero for all-day instances
	Summary     string
	Description string
}
