package http

import (
	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route requires a caller scope; scheduling is also rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedule := rg.Group("/schedule", mw.Auth())
	{
		schedule.POST("", mw.RateLimit(), h.Schedule)
		schedule.GET("/outcomes/:task_id", h.GetOutcome)
	}

	settings := rg.Group("/settings", mw.Auth())
	{
		settings.GET("", h.GetSettings)
		settings.PATCH("", h.UpdateSettings)
	}
}
