package usecase

import (
	"context"
	"errors"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/scheduling/repository"
)

func (uc *implUseCase) GetOutcome(ctx context.Context, sc model.Scope, taskID string) (scheduling.TaskOutcome, error) {
	o, err := uc.repo.GetOutcome(ctx, repository.GetOutcomeOptions{
		UserID: sc.UserID,
		TaskID: taskID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return scheduling.TaskOutcome{}, scheduling.ErrOutcomeNotFound
		}
		uc.l.Errorf(ctx, "GetOutcome: repo.GetOutcome: %v", err)
		return scheduling.TaskOutcome{}, err
	}
	return o, nil
}
