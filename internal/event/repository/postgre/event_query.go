package postgre

import (
	"fmt"
	"strings"

	repo "cie-dashboard/internal/event/repository"
)

const eventColumns = `id, page, title, description, venue, event_type, color, event_date, event_time, created_at, updated_at`

// buildGetOneQuery builds WHERE clause + args for GetOneEvent.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEventOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Page != "" {
		conditions = append(conditions, fmt.Sprintf("page = $%d", idx))
		args = append(args, string(opt.Page))
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildFilter builds the WHERE conditions shared by count and list queries.
func (r *implRepository) buildFilter(opt repo.ListEventsOptions) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.Page != "" {
		args = append(args, string(opt.Page))
		conditions = append(conditions, fmt.Sprintf("page = $%d", len(args)))
	}
	if !opt.From.IsZero() {
		args = append(args, opt.From.String())
		conditions = append(conditions, fmt.Sprintf("event_date >= $%d::date", len(args)))
	}
	if !opt.To.IsZero() {
		args = append(args, opt.To.String())
		conditions = append(conditions, fmt.Sprintf("event_date <= $%d::date", len(args)))
	}
	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting Events (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListEventsOptions) (string, []any) {
	conditions, args := r.buildFilter(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListEvents.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var parts []string
	conditions, args := r.buildFilter(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	switch opt.OrderBy {
	case repo.OrderDateDesc:
		parts = append(parts, "ORDER BY event_date DESC, created_at DESC, id DESC")
	default:
		parts = append(parts, "ORDER BY event_date ASC, created_at ASC, id ASC")
	}

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		parts = append(parts, fmt.Sprintf("LIMIT $%d", len(args)))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		parts = append(parts, fmt.Sprintf("OFFSET $%d", len(args)))
	}

	return strings.Join(parts, " "), args
}
