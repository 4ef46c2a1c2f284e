package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"cie-dashboard/pkg/log"
)

const defaultRefreshSpec = "*/30 * * * *"

// Refresher reloads an external source.
type Refresher interface {
	Name() string
	Refresh(ctx context.Context) error
}

// Scheduler refreshes feeds on a cron schedule.
type Scheduler struct {
	l          log.Logger
	cron       *cron.Cron
	spec       string
	refreshers []Refresher
	initial    sync.WaitGroup
}

// NewScheduler creates a Scheduler running spec in loc.
func NewScheduler(l log.Logger, spec string, loc *time.Location, refreshers ...Refresher) *Scheduler {
	if spec == "" {
		spec = defaultRefreshSpec
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		l:          l,
		cron:       cron.New(cron.WithLocation(loc)),
		spec:       spec,
		refreshers: refreshers,
	}
}

// Start registers the cron job and kicks off a first refresh of every source
// in the background. Sources load lazily, so requests never wait on it.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RefreshAll(ctx) }); err != nil {
		return fmt.Errorf("feed: add refresh job %q: %w", s.spec, err)
	}

	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		s.RefreshAll(ctx)
	}()

	s.cron.Start()
	s.l.Infof(ctx, "feed.Scheduler started: %d sources, spec %q", len(s.refreshers), s.spec)
	return nil
}

// Stop waits for running refreshes, the initial one included, to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.initial.Wait()
}

// RefreshAll refreshes each source in turn. Failures are logged and do not
// stop the others.
func (s *Scheduler) RefreshAll(ctx context.Context) {
	for _, r := range s.refreshers {
		if err := r.Refresh(ctx); err != nil {
			s.l.Warnf(ctx, "feed.Scheduler refresh %s: %v", r.Name(), err)
		}
	}
}
