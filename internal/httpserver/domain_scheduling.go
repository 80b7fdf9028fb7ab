package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	schedulingHTTP "meeting-scheduler/internal/scheduling/delivery/http"
)

// setupSchedulingDomain registers the scheduling routes:
// /api/v1/schedule, /api/v1/schedule/outcomes/:task_id and /api/v1/settings.
func (srv HTTPServer) setupSchedulingDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := schedulingHTTP.New(srv.l, srv.schedulingUC, srv.clock)
	schedulingHTTP.RegisterRoutes(api, h, srv.middleware)

	srv.l.Infof(ctx, "Scheduling domain registered")
	return nil
}
