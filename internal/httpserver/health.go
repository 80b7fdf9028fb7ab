package httpserver

import (
	"github.com/gin-gonic/gin"

	"meeting-scheduler/pkg/response"
)

const (
	ServiceName    = "meeting-scheduler"
	ServiceVersion = "1.0.0"
)

// Calendar modes reported by /ready.
const (
	CalendarModeService = "service_calendar" // events go to the service account's calendar
	CalendarModeUser    = "user_token"       // every run needs the caller's bearer token
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":      state,
		"service":     ServiceName,
		"version":     ServiceVersion,
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

// readyCheck reports how scheduling runs will reach a calendar and whether Slack
// summaries are sent.
// @Summary Readiness Check
// @Description Report the calendar mode, Slack notifications and rate limit the API serves with
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.status("ready")
	body["calendar_mode"] = CalendarModeUser
	if srv.serviceCalendar {
		body["calendar_mode"] = CalendarModeService
	}
	body["slack_notifications"] = srv.slackEnabled
	body["rate_limit_per_min"] = srv.rateLimitPerMin
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	body := srv.status("alive")
	body["uptime_seconds"] = int64(srv.clock.Now().Sub(srv.startedAt).Seconds())
	response.OK(c, body)
}
