package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/middleware"
	"cie-dashboard/internal/planner"
	"cie-dashboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Calendar domain
	eventUC event.UseCase

	// Planner summaries, only when the dashboard tables are reachable
	plannerUC planner.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	EventUseCase   event.UseCase
	PlannerUseCase planner.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		eventUC:     cfg.EventUseCase,
		plannerUC:   cfg.PlannerUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventUC == nil {
		return errors.New("event usecase is required")
	}
	return nil
}
