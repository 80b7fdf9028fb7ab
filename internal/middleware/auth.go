package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/pkg/log"
	"meeting-scheduler/pkg/response"
)

// UserIDHeader carries the caller identity set by the auth proxy in front of the service.
const UserIDHeader = "X-User-ID"

const scopeKey = "scope"

// Auth requires a caller identity and stores it as the request scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(log.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
