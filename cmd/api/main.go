package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cie-dashboard/config"
	_ "cie-dashboard/docs" // Swagger docs
	"cie-dashboard/internal/event/repository"
	"cie-dashboard/internal/event/repository/memory"
	"cie-dashboard/internal/event/repository/postgre"
	eventSupabase "cie-dashboard/internal/event/repository/supabase"
	"cie-dashboard/internal/event/usecase"
	"cie-dashboard/internal/feed"
	"cie-dashboard/internal/httpserver"
	"cie-dashboard/internal/middleware"
	"cie-dashboard/internal/planner"
	plannerSupabase "cie-dashboard/internal/planner/repository/supabase"
	plannerSource "cie-dashboard/internal/planner/source"
	plannerUC "cie-dashboard/internal/planner/usecase"
	"cie-dashboard/pkg/calendar"
	"cie-dashboard/pkg/datemath"
	"cie-dashboard/pkg/idgen"
	"cie-dashboard/pkg/log"
	pkgSupabase "cie-dashboard/pkg/supabase"
)

// @title       CIE Dashboard Calendar API
// @description Month grids, events and planner summaries for the CIE dashboard pages.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting CIE Dashboard calendar service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s, store: %s", cfg.Calendar.Timezone, cfg.Store.Driver)

	// 3. Clock & date parsing, both in the dashboard timezone
	dateMathParser, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}
	loc := dateMathParser.Location()
	clock := calendar.SystemClock{Location: loc}

	// 4. Event store (+ planner tables when on Supabase)
	var (
		repo      repository.Repository
		plannerUc planner.UseCase
		sources   = newSourceSet()
	)
	switch cfg.Store.Driver {
	case config.StoreSupabase:
		client := pkgSupabase.NewClient(pkgSupabase.Config{
			URL:     cfg.Supabase.URL,
			APIKey:  cfg.Supabase.APIKey,
			Schema:  cfg.Supabase.Schema,
			Timeout: cfg.Supabase.Timeout,
		})
		repo = eventSupabase.New(client, logger)

		plannerRepo := plannerSupabase.New(client, logger)
		plannerUc = plannerUC.New(logger, plannerRepo, clock)
		sources.add(plannerSource.All(logger, plannerRepo)...)
		logger.Info(ctx, "✅ Supabase store and planner sources initialized")

	case config.StorePostgres:
		db, dbErr := postgre.Open(ctx, cfg.Postgres.DSN)
		if dbErr != nil {
			logger.Error(ctx, "Failed to connect to Postgres: ", dbErr)
			return
		}
		defer db.Close()
		repo = postgre.New(db, logger)
		logger.Info(ctx, "✅ Postgres store initialized")

	default:
		repo = memory.New(logger)
		logger.Warn(ctx, "Using in-memory store; events are lost on restart")
	}

	// 5. External sources: ICS feeds and Google Calendar
	cache := feed.NewCache(cfg.Cache.Size, cfg.Cache.TTL)
	sources.addFeeds(ctx, logger, cfg, cache, loc)
	sources.addGoogle(ctx, logger, cfg, cache, loc)

	if len(sources.refreshers) > 0 {
		scheduler := sources.scheduler(logger, cfg, loc)
		if err := scheduler.Start(ctx); err != nil {
			logger.Error(ctx, "Failed to start feed refresh: ", err)
			return
		}
		defer scheduler.Stop()
	}

	// 6. Event UseCase
	eventUC := usecase.New(logger, repo, idgen.UUIDGenerator{}, clock, dateMathParser, sources.all...)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, cfg.RateLimit.RequestsPerMin),
		EventUseCase:   eventUC,
		PlannerUseCase: plannerUc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
