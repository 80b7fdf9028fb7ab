package usecase

import (
	"strings"

	"github.com/google/uuid"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/scheduling/engine"
	"meeting-scheduler/internal/scheduling/repository"
	"meeting-scheduler/pkg/slack"
)

// normalizeTasks copies tasks, fills missing ids and rejects duplicates.
func normalizeTasks(in []model.Task) ([]model.Task, error) {
	out := make([]model.Task, len(in))
	seen := make(map[string]struct{}, len(in))
	for i, t := range in {
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if _, dup := seen[t.ID]; dup {
			return nil, scheduling.ErrDuplicateTaskID
		}
		seen[t.ID] = struct{}{}
		out[i] = t
	}
	return out, nil
}

func buildSaveOptions(userID, runID string, outcomes []engine.Outcome) []repository.SaveOutcomeOptions {
	opts := make([]repository.SaveOutcomeOptions, 0, len(outcomes))
	for _, o := range outcomes {
		opt := repository.SaveOutcomeOptions{
			UserID: userID,
			TaskID: o.TaskID,
			RunID:  runID,
			Status: model.TaskStatusConflict,
			Reason: o.Reason,
		}
		if o.Scheduled {
			start, end := o.Start, o.End
			opt.Status = model.TaskStatusScheduled
			opt.ScheduledStart = &start
			opt.ScheduledEnd = &end
			opt.ExternalEventID = o.ExternalEventID
		}
		opts = append(opts, opt)
	}
	return opts
}

// buildNotices lists the scheduled tasks in outcome order.
func buildNotices(tasks []model.Task, outcomes []engine.Outcome) []slack.TaskNotice {
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var notices []slack.TaskNotice
	for _, o := range outcomes {
		if !o.Scheduled {
			continue
		}
		t := byID[o.TaskID]
		start := o.Start
		notices = append(notices, slack.TaskNotice{
			Title:          o.Title,
			Owner:          t.Owner,
			DueDate:        t.DueDate,
			ScheduledStart: &start,
		})
	}
	return notices
}
