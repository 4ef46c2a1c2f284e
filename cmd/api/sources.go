package main

import (
	"context"
	"time"

	"cie-dashboard/config"
	"cie-dashboard/internal/event"
	"cie-dashboard/internal/feed"
	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/gcalendar"
	"cie-dashboard/pkg/log"
)

// sourceSet collects the read-only calendar sources and the ones that need
// periodic refreshing.
type sourceSet struct {
	all        []event.Source
	refreshers []feed.Refresher
}

func newSourceSet() *sourceSet {
	return &sourceSet{}
}

func (s *sourceSet) add(src ...event.Source) {
	s.all = append(s.all, src...)
}

func (s *sourceSet) addFeeds(ctx context.Context, l log.Logger, cfg *config.Config, cache *feed.Cache, loc *time.Location) {
	if len(cfg.Feeds) == 0 {
		return
	}

	fetcher := feed.NewFetcher(cfg.Feed.Timeout)
	for _, fc := range cfg.Feeds {
		page, err := model.ParsePage(fc.Page)
		if err != nil {
			l.Warnf(ctx, "Skipping feed %s: %v", fc.ID, err)
			continue
		}

		src := feed.NewICSSource(l, feed.Config{
			ID:       fc.ID,
			URL:      fc.URL,
			Page:     page,
			Category: calendar.Category(fc.Category),
		}, fetcher, cache, loc)
		s.add(src)
		s.refreshers = append(s.refreshers, src)
		l.Infof(ctx, "✅ Feed %s subscribed for page %s", fc.ID, page)
	}
}

func (s *sourceSet) addGoogle(ctx context.Context, l log.Logger, cfg *config.Config, cache *feed.Cache, loc *time.Location) {
	gc := cfg.GoogleCalendar
	if gc.CredentialsPath == "" {
		return
	}

	page, err := model.ParsePage(gc.Page)
	if err != nil {
		l.Warnf(ctx, "Google Calendar skipped: %v", err)
		return
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, gc.CredentialsPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return
	}

	src := feed.NewGoogleSource(l, client, feed.GoogleConfig{
		CalendarID: gc.CalendarID,
		Page:       page,
		Category:   calendar.Category(gc.Category),
	}, cache, loc)
	s.add(src)
	s.refreshers = append(s.refreshers, src)
	l.Infof(ctx, "✅ Google Calendar %s imported into page %s", gc.CalendarID, page)
}

func (s *sourceSet) scheduler(l log.Logger, cfg *config.Config, loc *time.Location) *feed.Scheduler {
	return feed.NewScheduler(l, cfg.Feed.RefreshCron, loc, s.refreshers...)
}
