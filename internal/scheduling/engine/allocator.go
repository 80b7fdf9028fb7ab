package engine

import (
	"context"
	"math"
	"slices"
	"time"

	"meeting-scheduler/internal/model"
	pkgLog "meeting-scheduler/pkg/log"
)

// EventCreator books a calendar event and returns the provider's event id.
type EventCreator interface {
	CreateEvent(ctx context.Context, ev Event) (string, error)
}

// Allocator places tasks into free slots, most urgent first, one task at a time.
type Allocator struct {
	l        pkgLog.Logger
	events   EventCreator
	timeZone string
}

// NewAllocator creates an Allocator that books events through events. timeZone is
// attached to created events.
func NewAllocator(l pkgLog.Logger, events EventCreator, timeZone string) *Allocator {
	return &Allocator{
		l:        l,
		events:   events,
		timeZone: timeZone,
	}
}

// Allocate assigns every task to the first slot of slots that is long enough and ends
// by the task's deadline (horizonEnd when it has none), creating a calendar event for
// each placement. slots is consumed in place.
//
// One Outcome is returned per task, in processing order. Failures are recorded on the
// outcome and never stop the run; events already created are kept.
func (a *Allocator) Allocate(ctx context.Context, tasks []model.Task, slots *SlotList, horizonEnd time.Time) []Outcome {
	ordered := ByUrgency(tasks)
	outcomes := make([]Outcome, 0, len(ordered))

	for _, t := range ordered {
		outcomes = append(outcomes, a.place(ctx, t, slots, horizonEnd))
	}
	return outcomes
}

func (a *Allocator) place(ctx context.Context, t model.Task, slots *SlotList, horizonEnd time.Time) Outcome {
	duration := TaskDuration(t)
	deadline := horizonEnd
	if t.HasDeadline() {
		deadline = *t.DueDate
	}

	i, ok := slots.FirstFit(duration, deadline)
	if !ok {
		a.l.Infof(ctx, "engine.Allocate: task %s has no slot of %s before %s", t.ID, duration, deadline.Format(time.RFC3339))
		return Outcome{TaskID: t.ID, Title: t.Title, Reason: ReasonNoSlot}
	}

	start := slots.slots[i].Start
	end := start.Add(duration)

	eventID, err := a.events.CreateEvent(ctx, Event{
		Summary:     t.Title,
		Description: t.Description,
		Start:       start,
		End:         end,
		TimeZone:    a.timeZone,
	})
	if err != nil {
		a.l.Warnf(ctx, "engine.Allocate: event creation failed for task %s: %v", t.ID, err)
		return Outcome{TaskID: t.ID, Title: t.Title, Reason: err.Error()}
	}

	slots.Consume(i, duration)

	return Outcome{
		TaskID:          t.ID,
		Title:           t.Title,
		Scheduled:       true,
		Start:           start,
		End:             end,
		ExternalEventID: eventID,
	}
}

// maxDurationMinutes is the longest duration a time.Duration can hold, in minutes.
const maxDurationMinutes = math.MaxInt64 / int64(time.Minute)

// TaskDuration is the task's duration, defaulting to DefaultDurationMinutes. Durations
// too long for time.Duration saturate at its maximum, which no slot can hold.
func TaskDuration(t model.Task) time.Duration {
	minutes := int64(t.DurationMinutes)
	if minutes <= 0 {
		minutes = DefaultDurationMinutes
	}
	if minutes > maxDurationMinutes {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(minutes) * time.Minute
}

// ByUrgency returns a copy of tasks sorted by ascending due date. Tasks without a due
// date come last; ties keep their input order.
func ByUrgency(tasks []model.Task) []model.Task {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, func(a, b model.Task) int {
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return 0
		case a.DueDate == nil:
			return 1
		case b.DueDate == nil:
			return -1
		}
		return a.DueDate.Compare(*b.DueDate)
	})
	return ordered
}
