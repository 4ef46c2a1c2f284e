package usecase

import (
	"cie-dashboard/internal/planner"
	"cie-dashboard/internal/planner/repository"
	"cie-dashboard/pkg/calendar"
	pkgLog "cie-dashboard/pkg/log"
)

const (
	defaultLimit = 5
	maxLimit     = 50
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	clock calendar.Clock
}

// New creates a planner UseCase over repo.
func New(l pkgLog.Logger, repo repository.Repository, clock calendar.Clock) planner.UseCase {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		clock: clock,
	}
}
