package engine

import (
	"time"
)

// Defaults applied when a caller leaves settings unspecified.
const (
	DefaultTimeZone          = "America/New_York"
	DefaultWorkingHoursStart = 9
	DefaultWorkingHoursEnd   = 17
	DefaultHorizonDays       = 30
	DefaultProbe             = 30 * time.Minute
	DefaultDurationMinutes   = 60
)

// ReasonNoSlot is reported for a task that no free slot can hold before its deadline.
const ReasonNoSlot = "no available slot before deadline"

// TimeSlot is a free window [Start, End).
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// BusyInterval is time the calendar reports as unavailable.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// WorkingHours says when tasks may be placed, in wall-clock hours of TimeZone.
type WorkingHours struct {
	TimeZone string
	Start    int
	End      int
}

// BusyCheck selects how a probe increment is tested against busy intervals.
type BusyCheck string

const (
	// BusyCheckProbeStart marks a probe busy only when its start instant lies inside a
	// busy interval. An interval that begins and ends strictly inside one probe is missed.
	BusyCheckProbeStart BusyCheck = "probe_start"
	// BusyCheckOverlap marks a probe busy when any part of it overlaps a busy interval.
	BusyCheckOverlap BusyCheck = "overlap"
)

// Options tunes the free-slot extractor.
type Options struct {
	HorizonDays int
	Probe       time.Duration
	BusyCheck   BusyCheck
}

// Event is the calendar entry requested for a placed task.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
}

// Outcome is the result of one task in one scheduling run.
// Scheduled outcomes carry Start, End and ExternalEventID; the rest carry Reason.
type Outcome struct {
	TaskID          string
	Title           string
	Scheduled       bool
	Start           time.Time
	End             time.Time
	ExternalEventID string
	Reason          string
}
