package repository

import (
	"context"

	"cie-dashboard/internal/planner"
)

//go:generate mockery --name Repository
type Repository interface {
	ListContentPlans(ctx context.Context, opt ListOptions) ([]planner.ContentPlan, error)
	ListMentoringSessions(ctx context.Context, opt ListOptions) ([]planner.MentoringSession, error)
	ListCohortProjects(ctx context.Context, opt ListOptions) ([]planner.CohortProject, error)
}
