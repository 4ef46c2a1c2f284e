package repository

import "cie-dashboard/pkg/calendar"

// ListOptions bounds a planner listing to rows overlapping [From, To].
// Zero bounds are open.
type ListOptions struct {
	From calendar.Date
	To   calendar.Date
}
