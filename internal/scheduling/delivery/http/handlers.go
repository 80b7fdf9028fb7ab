package http

import (
	"github.com/gin-gonic/gin"

	"meeting-scheduler/pkg/response"
)

// Schedule godoc
// @Summary     Schedule tasks into the calendar
// @Description Finds free time inside working hours and books one event per task, most urgent first.
// @Description Tasks that cannot be placed before their deadline are reported, not failed.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       Authorization header string      true "Bearer <Google OAuth access token>"
// @Param       X-User-ID     header string      true "Caller identity"
// @Param       body          body   scheduleReq true "Tasks to schedule"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request - no tasks or calendar not connected"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Calendar free/busy lookup failed"
// @Router      /api/v1/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	settings, err := h.uc.GetSettings(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSettings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	input, err := req.toInput(settings, h.clock.Now())
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// GetOutcome godoc
// @Summary     Get the last outcome of a task
// @Tags        Scheduling
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       task_id   path   string true "Task ID"
// @Success     200 {object} taskOutcomeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/outcomes/{task_id} [GET]
func (h *handler) GetOutcome(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	taskID, err := h.processTaskID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetOutcome(ctx, sc, taskID)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetOutcome: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskOutcomeResp(output))
}

// GetSettings godoc
// @Summary     Get scheduling settings
// @Description Returns the caller's time zone and working hours, or the service defaults.
// @Tags        Settings
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Success     200 {object} settingsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/settings [GET]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetSettings(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSettings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSettingsResp(output))
}

// UpdateSettings godoc
// @Summary     Update scheduling settings
// @Description Partial update. Omitted fields are left unchanged.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string            true "Caller identity"
// @Param       body      body   updateSettingsReq true "Fields to update"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/settings [PATCH]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processUpdateSettingsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateSettings(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSettings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSettingsResp(output))
}
