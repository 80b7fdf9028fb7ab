package http

import (
	"fmt"
	"strings"
	"time"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/scheduling/engine"
	"meeting-scheduler/pkg/datemath"
	"meeting-scheduler/pkg/response"
)

// --- Request DTOs ---

type taskReq struct {
	ID              string `json:"id"`
	Title           string `json:"title"            binding:"required,max=500"`
	Description     string `json:"description"      binding:"max=5000"`
	Owner           string `json:"owner"`
	DueDate         string `json:"due_date"`                       // RFC3339
	Due             string `json:"due"`                            // relative: "tomorrow", "next friday", ...
	DurationMinutes int    `json:"duration_minutes" binding:"gte=0,lte=1440"`
}

type hoursReq struct {
	TimeZone          *string `json:"time_zone"`
	WorkingHoursStart *int    `json:"working_hours_start" binding:"omitempty,gte=0,lte=23"`
	WorkingHoursEnd   *int    `json:"working_hours_end"   binding:"omitempty,gte=0,lte=23"`
}

type scheduleReq struct {
	Tasks      []taskReq `json:"tasks"  binding:"required,dive"`
	Config     *hoursReq `json:"config"`
	Credential string    `json:"-"` // from the Authorization header
}

func (r scheduleReq) validate() error {
	for i, t := range r.Tasks {
		if t.DueDate != "" && t.Due != "" {
			return fmt.Errorf("tasks[%d]: set either due_date or due, not both", i)
		}
	}
	return nil
}

// toInput resolves due strings in the zone the run will use: the request override,
// else the caller's stored settings.
func (r scheduleReq) toInput(settings model.Settings, now time.Time) (scheduling.ScheduleInput, error) {
	input := scheduling.ScheduleInput{
		Credential: r.Credential,
		Tasks:      make([]model.Task, 0, len(r.Tasks)),
	}

	zone := settings.TimeZone
	if r.Config != nil {
		input.Hours = &scheduling.WorkingHoursOverride{
			TimeZone: r.Config.TimeZone,
			Start:    r.Config.WorkingHoursStart,
			End:      r.Config.WorkingHoursEnd,
		}
		if r.Config.TimeZone != nil && strings.TrimSpace(*r.Config.TimeZone) != "" {
			zone = strings.TrimSpace(*r.Config.TimeZone)
		}
	}
	if zone == "" {
		zone = engine.DefaultTimeZone
	}

	parser, err := datemath.NewParser(zone)
	if err != nil {
		return input, err
	}

	for i, t := range r.Tasks {
		task := model.Task{
			ID:              t.ID,
			Title:           strings.TrimSpace(t.Title),
			Description:     t.Description,
			Owner:           t.Owner,
			DurationMinutes: t.DurationMinutes,
		}

		dueStr := t.DueDate
		if dueStr == "" {
			dueStr = t.Due
		}
		if dueStr != "" {
			deadline, err := parser.Deadline(dueStr, now)
			if err != nil {
				return input, fmt.Errorf("tasks[%d]: %w", i, err)
			}
			task.DueDate = &deadline
		}
		input.Tasks = append(input.Tasks, task)
	}
	return input, nil
}

type updateSettingsReq struct {
	TimeZone          *string `json:"time_zone"`
	WorkingHoursStart *int    `json:"working_hours_start" binding:"omitempty,gte=0,lte=23"`
	WorkingHoursEnd   *int    `json:"working_hours_end"   binding:"omitempty,gte=0,lte=23"`
	SlackWebhookURL   *string `json:"slack_webhook_url"   binding:"omitempty,url"`
}

func (r updateSettingsReq) validate() error {
	if r.TimeZone == nil && r.WorkingHoursStart == nil && r.WorkingHoursEnd == nil && r.SlackWebhookURL == nil {
		return fmt.Errorf("nothing to update")
	}
	return nil
}

func (r updateSettingsReq) toInput() scheduling.UpdateSettingsInput {
	return scheduling.UpdateSettingsInput{
		TimeZone:          r.TimeZone,
		WorkingHoursStart: r.WorkingHoursStart,
		WorkingHoursEnd:   r.WorkingHoursEnd,
		SlackWebhookURL:   r.SlackWebhookURL,
	}
}

// --- Response DTOs ---

type outcomeResp struct {
	TaskID          string             `json:"task_id"`
	Title           string             `json:"title"`
	Scheduled       bool               `json:"scheduled"`
	Start           *response.DateTime `json:"start,omitempty"`
	End             *response.DateTime `json:"end,omitempty"`
	ExternalEventID string             `json:"external_event_id,omitempty"`
	Reason          string             `json:"reason,omitempty"`
}

type scheduleResp struct {
	RunID            string        `json:"run_id"`
	TimeZone         string        `json:"time_zone"`
	WorkingHours     string        `json:"working_hours"`
	Outcomes         []outcomeResp `json:"outcomes"`
	ScheduledCount   int           `json:"scheduled_count"`
	UnscheduledCount int           `json:"unscheduled_count"`
}

func (h *handler) newScheduleResp(out scheduling.ScheduleOutput) scheduleResp {
	loc, err := out.Hours.Location()
	if err != nil {
		loc = time.UTC
	}

	outcomes := make([]outcomeResp, len(out.Outcomes))
	for i, o := range out.Outcomes {
		r := outcomeResp{
			TaskID:    o.TaskID,
			Title:     o.Title,
			Scheduled: o.Scheduled,
			Reason:    o.Reason,
		}
		if o.Scheduled {
			start := response.DateTime(o.Start.In(loc))
			end := response.DateTime(o.End.In(loc))
			r.Start, r.End = &start, &end
			r.ExternalEventID = o.ExternalEventID
		}
		outcomes[i] = r
	}

	return scheduleResp{
		RunID:            out.RunID,
		TimeZone:         out.Hours.TimeZone,
		WorkingHours:     fmt.Sprintf("%02d:00-%02d:00", out.Hours.Start, out.Hours.End),
		Outcomes:         outcomes,
		ScheduledCount:   out.ScheduledCount,
		UnscheduledCount: out.UnscheduledCount,
	}
}

type settingsResp struct {
	TimeZone          string `json:"time_zone"`
	WorkingHoursStart int    `json:"working_hours_start"`
	WorkingHoursEnd   int    `json:"working_hours_end"`
	SlackConnected    bool   `json:"slack_connected"`
}

func (h *handler) newSettingsResp(s model.Settings) settingsResp {
	return settingsResp{
		TimeZone:          s.TimeZone,
		WorkingHoursStart: s.WorkingHoursStart,
		WorkingHoursEnd:   s.WorkingHoursEnd,
		SlackConnected:    s.SlackWebhookURL != "",
	}
}

type taskOutcomeResp struct {
	TaskID          string             `json:"task_id"`
	RunID           string             `json:"run_id"`
	Status          string             `json:"status"`
	ScheduledStart  *response.DateTime `json:"scheduled_start,omitempty"`
	ScheduledEnd    *response.DateTime `json:"scheduled_end,omitempty"`
	ExternalEventID string             `json:"external_event_id,omitempty"`
	Reason          string             `json:"reason,omitempty"`
	UpdatedAt       response.DateTime  `json:"updated_at"`
}

func (h *handler) newTaskOutcomeResp(o scheduling.TaskOutcome) taskOutcomeResp {
	r := taskOutcomeResp{
		TaskID:          o.TaskID,
		RunID:           o.RunID,
		Status:          o.Status,
		ExternalEventID: o.ExternalEventID,
		Reason:          o.Reason,
		UpdatedAt:       response.DateTime(o.UpdatedAt),
	}
	if o.ScheduledStart != nil {
		v := response.DateTime(*o.ScheduledStart)
		r.ScheduledStart = &v
	}
	if o.ScheduledEnd != nil {
		v := response.DateTime(*o.ScheduledEnd)
		r.ScheduledEnd = &v
	}
	return r
}
