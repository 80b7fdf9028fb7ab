package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/scheduling/engine"
	pkgLog "meeting-scheduler/pkg/log"
)

// Schedule places input.Tasks into the caller's calendar.
// Only a missing credential, a free/busy failure or invalid settings fail the whole run;
// everything else is reported per task.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input scheduling.ScheduleInput) (scheduling.ScheduleOutput, error) {
	if len(input.Tasks) == 0 {
		return scheduling.ScheduleOutput{}, scheduling.ErrNoTasks
	}

	tasks, err := normalizeTasks(input.Tasks)
	if err != nil {
		return scheduling.ScheduleOutput{}, err
	}

	runID := uuid.NewString()
	ctx = pkgLog.WithRunID(ctx, runID)

	settings, err := uc.loadSettings(ctx, sc.UserID)
	if err != nil {
		return scheduling.ScheduleOutput{}, err
	}

	hours := hoursFromSettings(settings)
	if input.Hours != nil {
		hours = input.Hours.Apply(hours)
	}
	hours = hours.WithDefaults()

	uc.l.Infof(ctx, "Schedule: user=%s tasks=%d hours=%d-%d tz=%s", sc.UserID, len(tasks), hours.Start, hours.End, hours.TimeZone)

	provider, err := uc.providers.New(ctx, input.Credential)
	if err != nil {
		return scheduling.ScheduleOutput{}, err
	}

	result, err := uc.scheduler.Run(ctx, provider, tasks, hours)
	if err != nil {
		return scheduling.ScheduleOutput{}, uc.runError(ctx, err)
	}

	out := scheduling.ScheduleOutput{
		RunID:    runID,
		Hours:    hours,
		Outcomes: result.Outcomes,
	}
	for _, o := range result.Outcomes {
		if o.Scheduled {
			out.ScheduledCount++
			uc.l.Infof(ctx, "Schedule: task %s placed %s - %s event=%s", o.TaskID, o.Start.Format("2006-01-02 15:04"), o.End.Format("15:04"), o.ExternalEventID)
			continue
		}
		out.UnscheduledCount++
		uc.l.Warnf(ctx, "Schedule: task %s not placed: %s", o.TaskID, o.Reason)
	}

	if err := uc.repo.SaveOutcomes(ctx, buildSaveOptions(sc.UserID, runID, result.Outcomes)); err != nil {
		uc.l.Errorf(ctx, "Schedule: failed to persist outcomes (non-fatal): %v", err)
	}

	uc.notify(ctx, settings, tasks, result.Outcomes)

	uc.l.Infof(ctx, "Schedule: done scheduled=%d unscheduled=%d free_slots_left=%d", out.ScheduledCount, out.UnscheduledCount, len(result.FreeSlots))
	return out, nil
}

func (uc *implUseCase) runError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, engine.ErrFreeBusyUnavailable):
		uc.l.Errorf(ctx, "Schedule: free/busy lookup failed: %v", err)
		return fmt.Errorf("%w: %w", scheduling.ErrCalendarUnavailable, err)
	case errors.Is(err, engine.ErrInvalidWorkingHours), errors.Is(err, engine.ErrInvalidTimeZone):
		return fmt.Errorf("%w: %w", scheduling.ErrInvalidSettings, err)
	default:
		uc.l.Errorf(ctx, "Schedule: run failed: %v", err)
		return err
	}
}

// notify posts the scheduled subset to the user's channel, or the global one.
func (uc *implUseCase) notify(ctx context.Context, settings model.Settings, tasks []model.Task, outcomes []engine.Outcome) {
	if uc.notifier == nil {
		return
	}

	webhookURL := strings.TrimSpace(settings.SlackWebhookURL)
	if webhookURL == "" && uc.cfg.SlackEnabled {
		webhookURL = uc.cfg.SlackWebhookURL
	}
	if webhookURL == "" {
		return
	}

	notices := buildNotices(tasks, outcomes)
	if len(notices) == 0 {
		return
	}

	if err := uc.notifier.SendTaskNotification(ctx, webhookURL, notices); err != nil {
		uc.l.Warnf(ctx, "Schedule: slack notification failed (non-fatal): %v", err)
		return
	}
	uc.l.Debugf(ctx, "Schedule: notified %d tasks to slack", len(notices))
}
