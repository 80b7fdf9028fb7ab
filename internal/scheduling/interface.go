package scheduling

import (
	"context"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling/engine"
	"meeting-scheduler/pkg/slack"
)

// UseCase defines the business logic interface for the scheduling domain.
type UseCase interface {
	// Schedule places the given tasks into the caller's calendar and returns one outcome per task.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)

	// GetOutcome returns the last persisted outcome of a task.
	GetOutcome(ctx context.Context, sc model.Scope, taskID string) (TaskOutcome, error)

	GetSettings(ctx context.Context, sc model.Scope) (model.Settings, error)
	UpdateSettings(ctx context.Context, sc model.Scope, input UpdateSettingsInput) (model.Settings, error)
}

// ProviderFactory opens the calendar behind a user credential.
type ProviderFactory interface {
	New(ctx context.Context, credential string) (engine.CalendarProvider, error)
}

// Notifier announces scheduled tasks.
type Notifier interface {
	SendTaskNotification(ctx context.Context, webhookURL string, tasks []slack.TaskNotice) error
}
