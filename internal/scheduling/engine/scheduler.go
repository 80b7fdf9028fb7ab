package engine

import (
	"context"
	"fmt"
	"time"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/pkg/clock"
	pkgLog "meeting-scheduler/pkg/log"
)

// CalendarProvider is the calendar a run reads free/busy data from and books into.
type CalendarProvider interface {
	EventCreator
	GetBusy(ctx context.Context, timeMin, timeMax time.Time) ([]BusyInterval, error)
}

// Result is everything one run produced.
type Result struct {
	Outcomes  []Outcome
	FreeSlots []TimeSlot // free slots left after allocation
}

// Scheduler runs the full pipeline: free/busy lookup, slot extraction and allocation.
// A Scheduler holds no per-run state and may serve concurrent runs.
type Scheduler struct {
	l     pkgLog.Logger
	clock clock.Clock
	opts  Options
}

// NewScheduler creates a Scheduler reading the current instant from clk.
func NewScheduler(l pkgLog.Logger, clk clock.Clock, opts Options) *Scheduler {
	return &Scheduler{
		l:     l,
		clock: clk,
		opts:  opts.WithDefaults(),
	}
}

// Run schedules tasks into provider's calendar. A free/busy failure aborts the run
// before any task is processed; everything after that is reported per task.
func (s *Scheduler) Run(ctx context.Context, provider CalendarProvider, tasks []model.Task, wh WorkingHours) (Result, error) {
	wh = wh.WithDefaults()
	if err := wh.Validate(); err != nil {
		return Result{}, err
	}

	now := s.clock.Now()
	horizonEnd := s.opts.HorizonEnd(now)

	busy, err := provider.GetBusy(ctx, now, horizonEnd)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrFreeBusyUnavailable, err)
	}

	free, err := ExtractFreeSlots(now, busy, wh, s.opts)
	if err != nil {
		return Result{}, err
	}
	s.l.Debugf(ctx, "engine.Run: %d busy intervals, %d free slots over %d days", len(busy), len(free), s.opts.HorizonDays)

	slots := NewSlotList(free)
	outcomes := NewAllocator(s.l, provider, wh.TimeZone).Allocate(ctx, tasks, slots, horizonEnd)

	return Result{
		Outcomes:  outcomes,
		FreeSlots: slots.Slots(),
	}, nil
}
