package http

import (
	"cie-dashboard/internal/planner"
	"cie-dashboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
