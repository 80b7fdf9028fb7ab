package scheduling

import "errors"

// Domain-specific errors for the scheduling package.
var (
	ErrNoTasks             = errors.New("no tasks to schedule")
	ErrDuplicateTaskID     = errors.New("duplicate task id")
	ErrMissingCredential   = errors.New("Google Calendar not connected")
	ErrCalendarUnavailable = errors.New("calendar free/busy lookup failed")
	ErrInvalidSettings     = errors.New("invalid scheduling settings")
	ErrOutcomeNotFound     = errors.New("no outcome recorded for task")
)
