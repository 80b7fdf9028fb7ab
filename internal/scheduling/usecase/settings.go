package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/scheduling/engine"
	"meeting-scheduler/internal/scheduling/repository"
)

// GetSettings returns the stored settings of the caller, or the service defaults.
func (uc *implUseCase) GetSettings(ctx context.Context, sc model.Scope) (model.Settings, error) {
	return uc.loadSettings(ctx, sc.UserID)
}

// UpdateSettings applies a partial update to the caller's settings.
func (uc *implUseCase) UpdateSettings(ctx context.Context, sc model.Scope, input scheduling.UpdateSettingsInput) (model.Settings, error) {
	current, err := uc.loadSettings(ctx, sc.UserID)
	if err != nil {
		return model.Settings{}, err
	}

	if input.TimeZone != nil {
		current.TimeZone = strings.TrimSpace(*input.TimeZone)
	}
	if input.WorkingHoursStart != nil {
		current.WorkingHoursStart = *input.WorkingHoursStart
	}
	if input.WorkingHoursEnd != nil {
		current.WorkingHoursEnd = *input.WorkingHoursEnd
	}
	if input.SlackWebhookURL != nil {
		current.SlackWebhookURL = strings.TrimSpace(*input.SlackWebhookURL)
	}

	if err := hoursFromSettings(current).Validate(); err != nil {
		return model.Settings{}, fmt.Errorf("%w: %w", scheduling.ErrInvalidSettings, err)
	}

	saved, err := uc.repo.UpsertSettings(ctx, repository.UpsertSettingsOptions{
		UserID:            sc.UserID,
		TimeZone:          current.TimeZone,
		WorkingHoursStart: current.WorkingHoursStart,
		WorkingHoursEnd:   current.WorkingHoursEnd,
		SlackWebhookURL:   current.SlackWebhookURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "UpdateSettings: repo.UpsertSettings: %v", err)
		return model.Settings{}, err
	}

	uc.l.Infof(ctx, "UpdateSettings: user=%s hours=%d-%d tz=%s", sc.UserID, saved.WorkingHoursStart, saved.WorkingHoursEnd, saved.TimeZone)
	return saved, nil
}

func (uc *implUseCase) loadSettings(ctx context.Context, userID string) (model.Settings, error) {
	s, err := uc.repo.GetSettings(ctx, userID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "loadSettings: repo.GetSettings: %v", err)
		return model.Settings{}, err
	}

	return model.Settings{
		UserID:            userID,
		TimeZone:          uc.cfg.Defaults.TimeZone,
		WorkingHoursStart: uc.cfg.Defaults.Start,
		WorkingHoursEnd:   uc.cfg.Defaults.End,
	}, nil
}

func hoursFromSettings(s model.Settings) engine.WorkingHours {
	return engine.WorkingHours{
		TimeZone: s.TimeZone,
		Start:    s.WorkingHoursStart,
		End:      s.WorkingHoursEnd,
	}
}
