package feed

import "errors"

var (
	ErrEmptyBody   = errors.New("empty ICS body")
	ErrEmptyURL    = errors.New("feed URL is empty")
	ErrUnreachable = errors.New("feed unreachable")
)
