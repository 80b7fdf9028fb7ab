package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"meeting-scheduler/internal/scheduling/engine"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Meeting scheduler specifics
	GoogleCalendar GoogleCalendarConfig
	Scheduler      SchedulerConfig
	RateLimit      RateLimitConfig
	Slack          SlackConfig
	Storage        StorageConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CalendarID     string
	BaseURL        string        // API endpoint override, empty for Google
	RequestTimeout time.Duration // per API call
	// CredentialsPath, when set, gives the service a calendar of its own used for
	// requests that carry no bearer token.
	CredentialsPath string
	TokenPath       string
}

type SchedulerConfig struct {
	TimeZone          string
	WorkingHoursStart int
	WorkingHoursEnd   int
	HorizonDays       int
	ProbeMinutes      int
	BusyCheck         string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type SlackConfig struct {
	WebhookURL string
	Enabled    bool
	Timeout    time.Duration
}

type StorageConfig struct {
	OutcomeCapacity int
	OutcomeTTL      time.Duration
}

// WorkingHours returns the service-wide default working hours.
func (c SchedulerConfig) WorkingHours() engine.WorkingHours {
	return engine.WorkingHours{
		TimeZone: c.TimeZone,
		Start:    c.WorkingHoursStart,
		End:      c.WorkingHoursEnd,
	}
}

// Options returns the free-slot extractor options.
func (c SchedulerConfig) Options() engine.Options {
	return engine.Options{
		HorizonDays: c.HorizonDays,
		Probe:       time.Duration(c.ProbeMinutes) * time.Minute,
		BusyCheck:   engine.BusyCheck(c.BusyCheck),
	}
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.BaseURL = v.GetString("google_calendar.base_url")
	cfg.GoogleCalendar.RequestTimeout = v.GetDuration("google_calendar.request_timeout")
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Scheduler
	cfg.Scheduler.TimeZone = v.GetString("scheduler.time_zone")
	cfg.Scheduler.WorkingHoursStart = v.GetInt("scheduler.working_hours_start")
	cfg.Scheduler.WorkingHoursEnd = v.GetInt("scheduler.working_hours_end")
	cfg.Scheduler.HorizonDays = v.GetInt("scheduler.horizon_days")
	cfg.Scheduler.ProbeMinutes = v.GetInt("scheduler.probe_minutes")
	cfg.Scheduler.BusyCheck = v.GetString("scheduler.busy_check")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Slack
	cfg.Slack.WebhookURL = v.GetString("slack.webhook_url")
	cfg.Slack.Enabled = v.GetBool("slack.enabled")
	cfg.Slack.Timeout = v.GetDuration("slack.timeout")
	if slackURL := v.GetString("slack_webhook_url"); slackURL != "" {
		cfg.Slack.WebhookURL = slackURL
	}

	// Storage
	cfg.Storage.OutcomeCapacity = v.GetInt("storage.outcome_capacity")
	cfg.Storage.OutcomeTTL = v.GetDuration("storage.outcome_ttl")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the scheduler cannot run with.
func (c *Config) Validate() error {
	if err := c.Scheduler.WorkingHours().Validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	if c.Scheduler.HorizonDays <= 0 {
		return fmt.Errorf("scheduler: horizon_days must be positive, got %d", c.Scheduler.HorizonDays)
	}
	if err := c.Scheduler.Options().Validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	if c.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit: requests_per_min must not be negative")
	}
	if c.Slack.Enabled && c.Slack.WebhookURL == "" {
		return fmt.Errorf("slack: enabled without webhook_url")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.request_timeout", "15s")
	v.SetDefault("google_calendar.token_path", "token.json")

	v.SetDefault("scheduler.time_zone", engine.DefaultTimeZone)
	v.SetDefault("scheduler.working_hours_start", engine.DefaultWorkingHoursStart)
	v.SetDefault("scheduler.working_hours_end", engine.DefaultWorkingHoursEnd)
	v.SetDefault("scheduler.horizon_days", engine.DefaultHorizonDays)
	v.SetDefault("scheduler.probe_minutes", int(engine.DefaultProbe/time.Minute))
	v.SetDefault("scheduler.busy_check", string(engine.BusyCheckProbeStart))

	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("slack.enabled", false)
	v.SetDefault("slack.timeout", "10s")

	v.SetDefault("storage.outcome_capacity", 10000)
	v.SetDefault("storage.outcome_ttl", "720h")
}
