package event

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUnknownPage      = errors.New("unknown page")
	ErrUnknownCategory  = errors.New("unknown category for page")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidDirection = errors.New("direction must be previous or next")
	ErrInvalidRange     = errors.New("date range must run forward and span at most 366 days")
)
