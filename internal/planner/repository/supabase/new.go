package supabase

import (
	"fmt"

	"cie-dashboard/internal/planner/repository"
	"cie-dashboard/pkg/log"
	pkgSupabase "cie-dashboard/pkg/supabase"
)

const (
	contentPlansTable      = "content_plans"
	mentoringSessionsTable = "mentoring_sessions"
	cohortProjectsTable    = "cohort_projects"
)

type implRepository struct {
	client *pkgSupabase.Client
	l      log.Logger
}

// New creates a planner Repository reading the studio, mentoring and cohort
// tables through the Supabase REST API.
func New(client *pkgSupabase.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("planner/repository/supabase: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("planner/repository/supabase.%s", method)
}
