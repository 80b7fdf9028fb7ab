package model

import "time"

// Settings are the per-user scheduling preferences.
type Settings struct {
	UserID            string
	TimeZone          string
	WorkingHoursStart int
	WorkingHoursEnd   int
	SlackWebhookURL   string
	UpdatedAt         time.Time
}
