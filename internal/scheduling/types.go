package scheduling

import (
	"time"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling/engine"
)

// ScheduleInput is the input of one scheduling run.
type ScheduleInput struct {
	Tasks      []model.Task
	Credential string                 // OAuth access token of the user's calendar
	Hours      *WorkingHoursOverride // per-run override of the stored settings
}

// WorkingHoursOverride replaces single fields of the stored working hours for one run.
// Nil fields keep the stored value.
type WorkingHoursOverride struct {
	TimeZone *string
	Start    *int
	End      *int
}

// Apply returns base with every set field of o replaced.
func (o WorkingHoursOverride) Apply(base engine.WorkingHours) engine.WorkingHours {
	if o.TimeZone != nil {
		base.TimeZone = *o.TimeZone
	}
	if o.Start != nil {
		base.Start = *o.Start
	}
	if o.End != nil {
		base.End = *o.End
	}
	return base
}

// ScheduleOutput is the result of one scheduling run.
type ScheduleOutput struct {
	RunID            string
	Hours            engine.WorkingHours
	Outcomes         []engine.Outcome
	ScheduledCount   int
	UnscheduledCount int
}

// TaskOutcome is the persisted record of a task after a run.
type TaskOutcome struct {
	TaskID          string
	UserID          string
	RunID           string
	Status          string // model.TaskStatusScheduled or model.TaskStatusConflict
	ScheduledStart  *time.Time
	ScheduledEnd    *time.Time
	ExternalEventID string
	Reason          string
	UpdatedAt       time.Time
}

// UpdateSettingsInput is a partial settings update. Nil fields are left unchanged.
type UpdateSettingsInput struct {
	TimeZone          *string
	WorkingHoursStart *int
	WorkingHoursEnd   *int
	SlackWebhookURL   *string
}
