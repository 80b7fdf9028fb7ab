package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/pkg/log"
)

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func doGet(r *gin.Engine, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), Config{}))

	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without user id, got %d", w.Code)
	}

	w := doGet(r, "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "user-1" {
		t.Errorf("expected scope user-1, got %q", w.Body.String())
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and refills one token per second.
	r := newTestRouter(New(log.NewNop(), Config{RateLimitPerMin: 60}))

	for i := 0; i < 6; i++ {
		if w := doGet(r, "user-1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	if w := doGet(r, "user-1"); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", w.Code)
	}

	// Buckets are per user.
	if w := doGet(r, "user-2"); w.Code != http.StatusOK {
		t.Errorf("expected 200 for another user, got %d", w.Code)
	}
}

func TestRateLimiterMinimumBurst(t *testing.T) {
	rl := newRateLimiter(5)
	if rl.burst != 1 {
		t.Errorf("expected burst 1, got %d", rl.burst)
	}
	if !rl.Allow("k") {
		t.Error("first request should pass")
	}
}
