package repository

import (
	"context"
	"errors"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Repository is the composed interface for the scheduling data store.
type Repository interface {
	OutcomeRepository
	SettingsRepository
}

// OutcomeRepository stores the per-task result of scheduling runs.
type OutcomeRepository interface {
	SaveOutcomes(ctx context.Context, opts []SaveOutcomeOptions) error
	GetOutcome(ctx context.Context, opt GetOutcomeOptions) (scheduling.TaskOutcome, error)
}

// SettingsRepository stores per-user scheduling settings.
type SettingsRepository interface {
	GetSettings(ctx context.Context, userID string) (model.Settings, error)
	UpsertSettings(ctx context.Context, opt UpsertSettingsOptions) (model.Settings, error)
}
