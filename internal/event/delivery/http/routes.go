package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods under /pages/:page.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	page := rg.Group("/pages/:page")
	{
		events := page.Group("/events")
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/upcoming", h.Upcoming)
		events.GET("/past", h.Past)
		events.GET("/:id", h.Detail)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)

		cal := page.Group("/calendar")
		cal.GET("", h.Month)
		cal.GET("/navigate", h.Navigate)
		cal.GET("/today", h.Today)
		cal.GET("/jump", h.Jump)
		cal.GET("/day", h.Day)
		cal.GET("/workdays", h.WorkingDays)

		page.GET("/legend", h.Legend)
	}
}
