package http

import (
	"cie-dashboard/internal/event"
	"cie-dashboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc event.UseCase
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) *handler {
	registerValidators()
	return &handler{
		l:  l,
		uc: uc,
	}
}
