package memory

import (
	"context"

	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/scheduling/repository"
)

func (r *implRepository) SaveOutcomes(ctx context.Context, opts []repository.SaveOutcomeOptions) error {
	now := r.clock.Now()
	for _, opt := range opts {
		r.outcomes.Add(outcomeKey{userID: opt.UserID, taskID: opt.TaskID}, scheduling.TaskOutcome{
			TaskID:          opt.TaskID,
			UserID:          opt.UserID,
			RunID:           opt.RunID,
			Status:          opt.Status,
			ScheduledStart:  opt.ScheduledStart,
			ScheduledEnd:    opt.ScheduledEnd,
			ExternalEventID: opt.ExternalEventID,
			Reason:          opt.Reason,
			UpdatedAt:       now,
		})
	}
	r.l.Debugf(ctx, "memory.SaveOutcomes: stored %d outcomes", len(opts))
	return nil
}

func (r *implRepository) GetOutcome(ctx context.Context, opt repository.GetOutcomeOptions) (scheduling.TaskOutcome, error) {
	o, ok := r.outcomes.Get(outcomeKey{userID: opt.UserID, taskID: opt.TaskID})
	if !ok {
		return scheduling.TaskOutcome{}, repository.ErrNotFound
	}
	return o, nil
}
