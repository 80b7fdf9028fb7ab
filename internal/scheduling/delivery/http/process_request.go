package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/model"
)

const bearerPrefix = "bearer "

// processScope reads the caller scope placed by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, errMissingUserID
	}
	return sc, nil
}

// processScheduleReq binds and validates the schedule request body and credential.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Credential = bearerToken(c.GetHeader("Authorization"))
	return req, req.validate()
}

// processUpdateSettingsReq binds and validates the settings patch body.
func (h *handler) processUpdateSettingsReq(c *gin.Context) (updateSettingsReq, error) {
	var req updateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processTaskID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("task_id"))
	if id == "" {
		return "", errMissingTaskID
	}
	return id, nil
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
