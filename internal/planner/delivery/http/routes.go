package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the planner read endpoints under /planner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	p := rg.Group("/planner")
	{
		p.GET("/studio/upcoming", h.UpcomingContent)
		p.GET("/mentoring", h.Mentoring)
		p.GET("/cohorts", h.Cohorts)
	}
}
