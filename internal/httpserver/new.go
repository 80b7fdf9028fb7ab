package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/pkg/clock"
	"meeting-scheduler/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	startedAt       time.Time

	// Readiness
	serviceCalendar bool
	slackEnabled    bool
	rateLimitPerMin int

	// Scheduling domain
	schedulingUC scheduling.UseCase
	clock        clock.Clock
	middleware   middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Scheduling domain
	SchedulingUC    scheduling.UseCase
	Clock           clock.Clock
	RateLimitPerMin int

	// Reported by /ready
	ServiceCalendar bool
	SlackEnabled    bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		startedAt:       cfg.Clock.Now(),
		serviceCalendar: cfg.ServiceCalendar,
		slackEnabled:    cfg.SlackEnabled,
		rateLimitPerMin: cfg.RateLimitPerMin,
		schedulingUC:    cfg.SchedulingUC,
		clock:           cfg.Clock,
		middleware:      middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimitPerMin}),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.schedulingUC == nil {
		return errors.New("scheduling usecase is required")
	}
	return nil
}
