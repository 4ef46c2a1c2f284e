package planner

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	UpcomingContent(ctx context.Context, input UpcomingContentInput) (UpcomingContentOutput, error)
	MentoringSummary(ctx context.Context) (MentoringSummaryOutput, error)
	Cohorts(ctx context.Context) (CohortsOutput, error)
}
