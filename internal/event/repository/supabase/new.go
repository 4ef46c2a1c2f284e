package supabase

import (
	"fmt"

	"cie-dashboard/internal/event/repository"
	"cie-dashboard/pkg/log"
	pkgSupabase "cie-dashboard/pkg/supabase"
)

const table = "events"

type implRepository struct {
	client *pkgSupabase.Client
	l      log.Logger
}

// New creates a Repository backed by the Supabase REST API.
func New(client *pkgSupabase.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("event/repository/supabase: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/supabase.%s", method)
}
