package usecase

import (
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/scheduling/engine"
	"meeting-scheduler/internal/scheduling/repository"
	pkgLog "meeting-scheduler/pkg/log"
)

// Config holds the service-wide settings of the scheduling usecase.
type Config struct {
	Defaults        engine.WorkingHours // used when a user has stored no settings
	SlackWebhookURL string              // global channel, used when a user has none
	SlackEnabled    bool
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	providers scheduling.ProviderFactory
	notifier  scheduling.Notifier
	scheduler *engine.Scheduler
	cfg       Config
}

// New creates a new scheduling UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	providers scheduling.ProviderFactory,
	notifier scheduling.Notifier,
	scheduler *engine.Scheduler,
	cfg Config,
) scheduling.UseCase {
	cfg.Defaults = cfg.Defaults.WithDefaults()
	return &implUseCase{
		l:         l,
		repo:      repo,
		providers: providers,
		notifier:  notifier,
		scheduler: scheduler,
		cfg:       cfg,
	}
}
