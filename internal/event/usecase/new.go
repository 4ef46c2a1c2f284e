package usecase

import (
	"cie-dashboard/internal/event"
	"cie-dashboard/internal/event/repository"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/datemath"
	"cie-dashboard/pkg/idgen"
	pkgLog "cie-dashboard/pkg/log"
)

// defaultHorizonDays bounds how far Upcoming and Past look into external sources.
const defaultHorizonDays = 180

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	ids      idgen.Generator
	clock    calendar.Clock
	dateMath *datemath.Parser
	sources  []event.Source
	horizon  int
}

// New creates a new event UseCase implementation. Sources are merged into
// every month grid of their page, after stored events.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	ids idgen.Generator,
	clock calendar.Clock,
	dateMath *datemath.Parser,
	sources ...event.Source,
) event.UseCase {
	if ids == nil {
		ids = idgen.UUIDGenerator{}
	}
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		ids:      ids,
		clock:    clock,
		dateMath: dateMath,
		sources:  sources,
		horizon:  defaultHorizonDays,
	}
}
