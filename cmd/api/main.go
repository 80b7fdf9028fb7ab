package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/api/option"

	"meeting-scheduler/config"
	_ "meeting-scheduler/docs" // Swagger docs
	"meeting-scheduler/internal/httpserver"
	"meeting-scheduler/internal/scheduling/calendar"
	"meeting-scheduler/internal/scheduling/engine"
	"meeting-scheduler/internal/scheduling/repository/memory"
	"meeting-scheduler/internal/scheduling/usecase"
	"meeting-scheduler/pkg/clock"
	"meeting-scheduler/pkg/gcalendar"
	"meeting-scheduler/pkg/log"
	"meeting-scheduler/pkg/slack"
)

// @title       Meeting Scheduler API
// @description Places meeting action items into free Google Calendar time inside working hours.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Working hours: %02d:00-%02d:00 %s, horizon %d days, busy check %s",
		cfg.Scheduler.WorkingHoursStart, cfg.Scheduler.WorkingHoursEnd, cfg.Scheduler.TimeZone,
		cfg.Scheduler.HorizonDays, cfg.Scheduler.BusyCheck)

	clk := clock.New()

	// 3. Google Calendar
	var calendarOpts []option.ClientOption
	if cfg.GoogleCalendar.BaseURL != "" {
		calendarOpts = append(calendarOpts, option.WithEndpoint(cfg.GoogleCalendar.BaseURL))
	}

	// Service calendar (optional): serves requests without a bearer token
	var serviceCalendar *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		serviceCalendar, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Service calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "✅ Service calendar initialized")
		}
	}

	providers := calendar.NewFactory(cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.RequestTimeout, serviceCalendar, calendarOpts...)

	// 4. Scheduling domain
	repo := memory.New(logger, clk, memory.Config{
		OutcomeCapacity: cfg.Storage.OutcomeCapacity,
		OutcomeTTL:      cfg.Storage.OutcomeTTL,
	})

	scheduler := engine.NewScheduler(logger, clk, cfg.Scheduler.Options())

	schedulingUC := usecase.New(logger, repo, providers, slack.NewClient(cfg.Slack.Timeout), scheduler, usecase.Config{
		Defaults:        cfg.Scheduler.WorkingHours(),
		SlackWebhookURL: cfg.Slack.WebhookURL,
		SlackEnabled:    cfg.Slack.Enabled,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		SchedulingUC:    schedulingUC,
		Clock:           clk,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		ServiceCalendar: serviceCalendar != nil,
		SlackEnabled:    cfg.Slack.Enabled,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
