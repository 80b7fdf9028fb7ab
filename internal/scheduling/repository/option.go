package repository

import "time"

// SaveOutcomeOptions holds one task outcome to persist.
type SaveOutcomeOptions struct {
	UserID          string
	TaskID          string
	RunID           string
	Status          string
	ScheduledStart  *time.Time
	ScheduledEnd    *time.Time
	ExternalEventID string
	Reason          string
}

// GetOutcomeOptions selects one task outcome.
type GetOutcomeOptions struct {
	UserID string
	TaskID string
}

// UpsertSettingsOptions replaces the settings of a user.
type UpsertSettingsOptions struct {
	UserID            string
	TimeZone          string
	WorkingHoursStart int
	WorkingHoursEnd   int
	SlackWebhookURL   string
}
