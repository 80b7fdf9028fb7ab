package middleware

import (
	"meeting-scheduler/pkg/log"
)

// Config tunes the middlewares.
type Config struct {
	RateLimitPerMin int // scheduling requests per user per minute, 0 disables the limit
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
