package httpserver

import (
	"github.com/gin-gonic/gin"

	"cie-dashboard/internal/model"
	"cie-dashboard/pkg/response"
)

const (
	HealthMessage = "CIE Dashboard calendar API"
	HealthVersion = "1.0.0"
	ServiceName   = "cie-dashboard"
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":      state,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports the pages served and whether planner summaries are on.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.status("ready")
	body["pages"] = model.Pages
	body["planner"] = srv.plannerUC != nil
	response.OK(c, body)
}

// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
