// Package source adapts the studio, mentoring and cohort planner tables into
// read-only event sources for their dashboard pages.
package source

import (
	"fmt"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/planner/repository"
	"cie-dashboard/pkg/log"
)

type base struct {
	l    log.Logger
	repo repository.Repository
}

func (b base) dsn(name, method string) string {
	return fmt.Sprintf("planner/source.%s.%s", name, method)
}

// All returns the studio, mentoring and cohort sources over one repository.
func All(l log.Logger, repo repository.Repository) []event.Source {
	return []event.Source{
		NewStudio(l, repo),
		NewMentoring(l, repo),
		NewCohorts(l, repo),
	}
}
