package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	eventHTTP "cie-dashboard/internal/event/delivery/http"
	"cie-dashboard/internal/model"
	plannerHTTP "cie-dashboard/internal/planner/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.TraceID())

	ctx := context.Background()
	if model.Environment(srv.environment).IsProduction() {
		gin.DisableConsoleColor()
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())

	eventHTTP.RegisterRoutes(api, eventHTTP.New(srv.l, srv.eventUC))
	srv.l.Infof(ctx, "Calendar routes registered at /api/v1/pages/:page")

	if srv.plannerUC != nil {
		plannerHTTP.RegisterRoutes(api, plannerHTTP.New(srv.l, srv.plannerUC))
		srv.l.Infof(ctx, "Planner routes registered at /api/v1/planner")
	} else {
		srv.l.Infof(ctx, "Planner not configured, skipping planner routes")
	}

	return nil
}
