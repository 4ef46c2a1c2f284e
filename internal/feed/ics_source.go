package feed

import (
	"context"
	"sync"
	"time"

	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/idgen"
	"cie-dashboard/pkg/log"
)

// ICSSource serves one subscribed ICS feed to a page's calendar. The parsed
// feed is kept in memory and replaced by Refresh; expanded windows are cached.
type ICSSource struct {
	l       log.Logger
	cfg     Config
	fetcher *Fetcher
	cache   *Cache
	loc     *time.Location

	mu     sync.RWMutex
	events []VEvent
	loaded bool
	gen    uint64 // bumped by every successful Refresh
}

// NewICSSource creates a source for cfg. loc is the display timezone.
func NewICSSource(l log.Logger, cfg Config, fetcher *Fetcher, cache *Cache, loc *time.Location) *ICSSource {
	if loc == nil {
		loc = time.UTC
	}
	if cfg.Category == "" {
		cfg.Category = calendar.Category(cfg.Page.DefaultCategory())
	}
	return &ICSSource{
		l:       l,
		cfg:     cfg,
		fetcher: fetcher,
		cache:   cache,
		loc:     loc,
	}
}

func (s *ICSSource) Name() string     { return s.cfg.ID }
func (s *ICSSource) Page() model.Page { return s.cfg.Page }

// Events returns the feed's occurrences in [from, to]. The first call loads
// the feed if no refresh has happened yet.
func (s *ICSSource) Events(ctx context.Context, from, to calendar.Date) ([]calendar.Event, error) {
	key := cacheKey(s.cfg.ID, from, to)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	vevents, gen, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	occ, bad := Expand(vevents, from, to, s.loc)
	for _, err := range bad {
		s.l.Warnf(ctx, "feed.ICSSource.Events %s: %v", s.cfg.ID, err)
	}

	out := make([]calendar.Event, len(occ))
	for i, o := range occ {
		out[i] = calendar.Event{
			ID:          idgen.Deterministic(s.cfg.ID, o.UID, o.Date.String()),
			Date:        o.Date,
			At:          o.At,
			Category:    s.cfg.Category,
			Title:       o.Summary,
			Description: o.Description,
		}
	}
	s.store(key, gen, out)
	return out, nil
}

// store caches an expansion of snapshot gen unless a Refresh replaced that
// snapshot in the meantime.
func (s *ICSSource) store(key string, gen uint64, events []calendar.Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if gen != s.gen {
		return
	}
	s.cache.Add(key, events)
}

func (s *ICSSource) snapshot(ctx context.Context) ([]VEvent, uint64, error) {
	s.mu.RLock()
	events, loaded, gen := s.events, s.loaded, s.gen
	s.mu.RUnlock()
	if loaded {
		return events, gen, nil
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events, s.gen, nil
}

// Refresh re-downloads and re-parses the feed. On failure the previous
// snapshot stays in place.
func (s *ICSSource) Refresh(ctx context.Context) error {
	body, err := s.fetcher.Fetch(ctx, s.cfg.URL)
	if err != nil {
		s.l.Errorf(ctx, "feed.ICSSource.Refresh %s (%s): %v", s.cfg.ID, redactURL(s.cfg.URL), err)
		return err
	}

	events, skipped, err := ParseICS(body, s.loc)
	if err != nil {
		s.l.Errorf(ctx, "feed.ICSSource.Refresh %s parse: %v", s.cfg.ID, err)
		return err
	}
	for _, perr := range skipped {
		s.l.Warnf(ctx, "feed.ICSSource.Refresh %s: skipping VEVENT: %v", s.cfg.ID, perr)
	}

	s.mu.Lock()
	s.events, s.loaded = events, true
	s.gen++
	purge(s.cache, s.cfg.ID)
	s.mu.Unlock()

	s.l.Infof(ctx, "feed.ICSSource.Refresh %s: %d events", s.cfg.ID, len(events))
	return nil
}
