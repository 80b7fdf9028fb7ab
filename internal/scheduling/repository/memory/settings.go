package memory

import (
	"context"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling/repository"
)

func (r *implRepository) GetSettings(ctx context.Context, userID string) (model.Settings, error) {
	s, ok := r.settings.Get(userID)
	if !ok {
		return model.Settings{}, repository.ErrNotFound
	}
	return s, nil
}

func (r *implRepository) UpsertSettings(ctx context.Context, opt repository.UpsertSettingsOptions) (model.Settings, error) {
	s := model.Settings{
		UserID:            opt.UserID,
		TimeZone:          opt.TimeZone,
		WorkingHoursStart: opt.WorkingHoursStart,
		WorkingHoursEnd:   opt.WorkingHoursEnd,
		SlackWebhookURL:   opt.SlackWebhookURL,
		UpdatedAt:         r.clock.Now(),
	}
	r.settings.Add(opt.UserID, s)
	return s, nil
}
