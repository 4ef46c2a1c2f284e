package feed

import (
	"context"
	"time"

	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/gcalendar"
	"cie-dashboard/pkg/idgen"
	"cie-dashboard/pkg/log"
)

const googleMaxResults = 2500

// EventLister is the read side of pkg/gcalendar.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// GoogleConfig selects the calendar imported into a page.
type GoogleConfig struct {
	CalendarID string
	Page       model.Page
	Category   calendar.Category
}

// GoogleSource imports a Google Calendar into a page's calendar.
type GoogleSource struct {
	l      log.Logger
	lister EventLister
	cfg    GoogleConfig
	cache  *Cache
	loc    *time.Location
}

// NewGoogleSource creates a source over lister. loc is the display timezone.
func NewGoogleSource(l log.Logger, lister EventLister, cfg GoogleConfig, cache *Cache, loc *time.Location) *GoogleSource {
	if loc == nil {
		loc = time.UTC
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.Category == "" {
		cfg.Category = calendar.Category(cfg.Page.DefaultCategory())
	}
	return &GoogleSource{l: l, lister: lister, cfg: cfg, cache: cache, loc: loc}
}

func (s *GoogleSource) Name() string     { return "google:" + s.cfg.CalendarID }
func (s *GoogleSource) Page() model.Page { return s.cfg.Page }

// Events lists the calendar between from and to. All-day events spanning
// several days appear on each of them.
func (s *GoogleSource) Events(ctx context.Context, from, to calendar.Date) ([]calendar.Event, error) {
	key := cacheKey(s.Name(), from, to)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	items, err := s.lister.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: s.cfg.CalendarID,
		TimeMin:    from.Time(s.loc),
		TimeMax:    to.AddDays(1).Time(s.loc),
		MaxResults: googleMaxResults,
		Location:   s.loc,
	})
	if err != nil {
		s.l.Errorf(ctx, "feed.GoogleSource.Events %s: %v", s.cfg.CalendarID, err)
		return nil, err
	}

	var out []calendar.Event
	for _, it := range items {
		var at time.Time
		if !it.AllDay {
			at = it.StartTime.In(s.loc)
		}
		for _, d := range s.datesOf(it) {
			if !d.Between(from, to) {
				continue
			}
			out = append(out, calendar.Event{
				ID:          idgen.Deterministic("google", s.cfg.CalendarID, it.ID, d.String()),
				Date:        d,
				At:          at,
				Category:    s.cfg.Category,
				Title:       it.Summary,
				Description: it.Description,
			})
		}
	}
	s.cache.Add(key, out)
	return out, nil
}

func (s *GoogleSource) datesOf(e gcalendar.Event) []calendar.Date {
	start := calendar.DateOf(e.StartTime.In(s.loc))
	if !e.AllDay {
		return []calendar.Date{start}
	}
	end := calendar.DateOf(e.EndTime.In(s.loc))
	if !end.After(start) {
		return []calendar.Date{start}
	}
	var out []calendar.Date
	for d := start; d.Before(end); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

// Refresh drops cached windows so the next render lists again.
func (s *GoogleSource) Refresh(ctx context.Context) error {
	purge(s.cache, s.Name())
	return nil
}
