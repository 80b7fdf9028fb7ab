package model

import "time"

// Task is an action item taken from a meeting transcript.
type Task struct {
	ID              string     // Stable identifier from the task source
	Title           string     // Used as the calendar event summary
	Description     string     // Used as the calendar event body
	Owner           string     // Who the action item was assigned to (display only)
	DueDate         *time.Time // nil means no deadline
	DurationMinutes int        // <= 0 means the default of 60
}

// HasDeadline reports whether the task carries a due date.
func (t Task) HasDeadline() bool {
	return t.DueDate != nil
}
