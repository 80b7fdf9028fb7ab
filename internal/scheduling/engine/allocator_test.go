package engine_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling/engine"
	"meeting-scheduler/pkg/clock"
	pkgLog "meeting-scheduler/pkg/log"
)

type fakeCalendar struct {
	busy     []engine.BusyInterval
	busyErr  error
	failFor  map[string]bool
	created  []engine.Event
	busyMin  time.Time
	busyMax  time.Time
	getCalls int
}

func (f *fakeCalendar) GetBusy(ctx context.Context, timeMin, timeMax time.Time) ([]engine.BusyInterval, error) {
	f.getCalls++
	f.busyMin, f.busyMax = timeMin, timeMax
	if f.busyErr != nil {
		return nil, f.busyErr
	}
	return f.busy, nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, ev engine.Event) (string, error) {
	if f.failFor[ev.Summary] {
		return "", errors.New("quota exceeded")
	}
	f.created = append(f.created, ev)
	return fmt.Sprintf("evt-%d", len(f.created)), nil
}

func due(t time.Time) *time.Time {
	return &t
}

func TestAllocateSharesOneSlot(t *testing.T) {
	loc := mustLoc(t)
	deadline := at(loc, 1, 17, 0)
	slots := engine.NewSlotList([]engine.TimeSlot{{Start: at(loc, 1, 9, 0), End: at(loc, 1, 12, 0)}})
	cal := &fakeCalendar{}

	out := engine.NewAllocator(pkgLog.NewNop(), cal, testZone).Allocate(context.Background(), []model.Task{
		{ID: "a", Title: "Write notes", DueDate: due(deadline), DurationMinutes: 60},
		{ID: "b", Title: "Send deck", DueDate: due(deadline), DurationMinutes: 90},
	}, slots, at(loc, 31, 0, 0))

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].TaskID)
	assert.True(t, out[0].Scheduled)
	assert.True(t, out[0].Start.Equal(at(loc, 1, 9, 0)))
	assert.True(t, out[0].End.Equal(at(loc, 1, 10, 0)))
	assert.Equal(t, "evt-1", out[0].ExternalEventID)

	assert.Equal(t, "b", out[1].TaskID)
	assert.True(t, out[1].Scheduled)
	assert.True(t, out[1].Start.Equal(at(loc, 1, 10, 0)))
	assert.True(t, out[1].End.Equal(at(loc, 1, 11, 30)))

	remaining := slots.Slots()
	require.Len(t, remaining, 1)
	assert.Equal(t, 30*time.Minute, remaining[0].Duration())
	assert.True(t, remaining[0].Start.Equal(at(loc, 1, 11, 30)))

	require.Len(t, cal.created, 2)
	assert.Equal(t, testZone, cal.created[0].TimeZone)
	assert.Equal(t, "Send deck", cal.created[1].Summary)
}

func TestAllocatePriorityUnderScarcity(t *testing.T) {
	loc := mustLoc(t)
	slots := engine.NewSlotList([]engine.TimeSlot{{Start: at(loc, 1, 9, 0), End: at(loc, 1, 10, 0)}})

	out := engine.NewAllocator(pkgLog.NewNop(), &fakeCalendar{}, testZone).Allocate(context.Background(), []model.Task{
		{ID: "later", DueDate: due(at(loc, 3, 17, 0))},
		{ID: "sooner", DueDate: due(at(loc, 2, 17, 0))},
	}, slots, at(loc, 31, 0, 0))

	require.Len(t, out, 2)
	assert.Equal(t, "sooner", out[0].TaskID)
	assert.True(t, out[0].Scheduled)
	assert.Equal(t, "later", out[1].TaskID)
	assert.False(t, out[1].Scheduled)
	assert.Equal(t, engine.ReasonNoSlot, out[1].Reason)
	assert.Zero(t, slots.Len())
}

func TestAllocateDeadlineBoundary(t *testing.T) {
	loc := mustLoc(t)
	slotEnd := at(loc, 1, 10, 0)
	newSlots := func() *engine.SlotList {
		return engine.NewSlotList([]engine.TimeSlot{{Start: at(loc, 1, 9, 0), End: slotEnd}})
	}
	alloc := engine.NewAllocator(pkgLog.NewNop(), &fakeCalendar{}, testZone)

	out := alloc.Allocate(context.Background(), []model.Task{{ID: "exact", DueDate: due(slotEnd)}}, newSlots(), at(loc, 31, 0, 0))
	assert.True(t, out[0].Scheduled)

	out = alloc.Allocate(context.Background(), []model.Task{{ID: "early", DueDate: due(slotEnd.Add(-time.Nanosecond))}}, newSlots(), at(loc, 31, 0, 0))
	assert.False(t, out[0].Scheduled)
	assert.Equal(t, engine.ReasonNoSlot, out[0].Reason)
}

func TestAllocateEventFailureKeepsSlot(t *testing.T) {
	loc := mustLoc(t)
	slots := engine.NewSlotList([]engine.TimeSlot{{Start: at(loc, 1, 9, 0), End: at(loc, 1, 10, 0)}})
	cal := &fakeCalendar{failFor: map[string]bool{"broken": true}}

	out := engine.NewAllocator(pkgLog.NewNop(), cal, testZone).Allocate(context.Background(), []model.Task{
		{ID: "1", Title: "broken", DueDate: due(at(loc, 1, 12, 0))},
		{ID: "2", Title: "fine", DueDate: due(at(loc, 1, 13, 0))},
	}, slots, at(loc, 31, 0, 0))

	require.Len(t, out, 2)
	assert.False(t, out[0].Scheduled)
	assert.Equal(t, "quota exceeded", out[0].Reason)
	assert.True(t, out[1].Scheduled)
	assert.True(t, out[1].Start.Equal(at(loc, 1, 9, 0)))
}

func TestAllocateUndatedTasksLast(t *testing.T) {
	loc := mustLoc(t)
	slots := engine.NewSlotList([]engine.TimeSlot{{Start: at(loc, 1, 9, 0), End: at(loc, 1, 17, 0)}})

	out := engine.NewAllocator(pkgLog.NewNop(), &fakeCalendar{}, testZone).Allocate(context.Background(), []model.Task{
		{ID: "free-1"},
		{ID: "dated", DueDate: due(at(loc, 5, 17, 0))},
		{ID: "free-2", DurationMinutes: -5},
	}, slots, at(loc, 31, 0, 0))

	require.Len(t, out, 3)
	assert.Equal(t, []string{"dated", "free-1", "free-2"}, []string{out[0].TaskID, out[1].TaskID, out[2].TaskID})
	assert.True(t, out[2].Start.Equal(at(loc, 1, 11, 0)))
	assert.Equal(t, time.Hour, out[2].End.Sub(out[2].Start))
}

func TestSlotListConsume(t *testing.T) {
	start := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	base := []engine.TimeSlot{
		{Start: start, End: start.Add(time.Hour)},
		{Start: start.Add(2 * time.Hour), End: start.Add(4 * time.Hour)},
	}

	l := engine.NewSlotList(base)
	l.Consume(0, time.Hour)
	require.Equal(t, 1, l.Len())
	assert.True(t, l.Slots()[0].Start.Equal(start.Add(2*time.Hour)))

	l = engine.NewSlotList(base)
	l.Consume(1, 30*time.Minute)
	got := l.Slots()
	require.Len(t, got, 2)
	assert.True(t, got[1].Start.Equal(start.Add(150*time.Minute)))
	assert.Equal(t, 90*time.Minute, got[1].Duration())

	// the caller's slice is never touched
	assert.True(t, base[1].Start.Equal(start.Add(2*time.Hour)))
}

func TestOversizedDurationNeverFits(t *testing.T) {
	d := engine.TaskDuration(model.Task{DurationMinutes: 200_000_000})
	assert.Positive(t, d)

	start := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	l := engine.NewSlotList([]engine.TimeSlot{{Start: start, End: start.Add(8 * time.Hour)}})
	_, ok := l.FirstFit(d, start.Add(24*time.Hour))
	assert.False(t, ok)

	_, ok = l.FirstFit(-time.Hour, start.Add(24*time.Hour))
	assert.False(t, ok)
}

func TestSchedulerRun(t *testing.T) {
	loc := mustLoc(t)

	t.Run("no slot before deadline late in the day", func(t *testing.T) {
		now := at(loc, 1, 16, 30)
		cal := &fakeCalendar{}
		s := engine.NewScheduler(pkgLog.NewNop(), clock.Fixed(now), engine.Options{HorizonDays: 30})

		res, err := s.Run(context.Background(), cal, []model.Task{
			{ID: "t1", Title: "Long review", DueDate: due(at(loc, 1, 17, 0)), DurationMinutes: 120},
		}, nineToFive())
		require.NoError(t, err)
		require.Len(t, res.Outcomes, 1)
		assert.False(t, res.Outcomes[0].Scheduled)
		assert.Equal(t, "no available slot before deadline", res.Outcomes[0].Reason)
		assert.Empty(t, cal.created)
		assert.True(t, cal.busyMin.Equal(now))
		assert.True(t, cal.busyMax.Equal(now.Add(30*24*time.Hour)))
	})

	t.Run("free/busy failure aborts the run", func(t *testing.T) {
		cal := &fakeCalendar{busyErr: errors.New("invalid credentials")}
		s := engine.NewScheduler(pkgLog.NewNop(), clock.Fixed(at(loc, 1, 8, 0)), engine.Options{HorizonDays: 30})

		_, err := s.Run(context.Background(), cal, []model.Task{{ID: "t1"}}, nineToFive())
		require.ErrorIs(t, err, engine.ErrFreeBusyUnavailable)
		assert.Empty(t, cal.created)
	})

	t.Run("invalid working hours", func(t *testing.T) {
		cal := &fakeCalendar{}
		s := engine.NewScheduler(pkgLog.NewNop(), clock.Fixed(at(loc, 1, 8, 0)), engine.Options{HorizonDays: 30})

		_, err := s.Run(context.Background(), cal, nil, engine.WorkingHours{TimeZone: testZone, Start: 12, End: 12})
		require.ErrorIs(t, err, engine.ErrInvalidWorkingHours)
		assert.Zero(t, cal.getCalls)
	})

	t.Run("no double booking and deadlines respected", func(t *testing.T) {
		now := at(loc, 1, 7, 0)
		cal := &fakeCalendar{busy: []engine.BusyInterval{
			{Start: at(loc, 1, 10, 0), End: at(loc, 1, 11, 0)},
			{Start: at(loc, 2, 9, 0), End: at(loc, 2, 13, 0)},
			{Start: at(loc, 3, 14, 0), End: at(loc, 3, 15, 0)},
		}}
		s := engine.NewScheduler(pkgLog.NewNop(), clock.Fixed(now), engine.Options{HorizonDays: 5})

		var tasks []model.Task
		for i := 0; i < 20; i++ {
			tk := model.Task{ID: fmt.Sprintf("t%d", i), Title: fmt.Sprintf("task %d", i), DurationMinutes: 30 * (1 + i%4)}
			if i%3 != 0 {
				tk.DueDate = due(at(loc, 1+i%5, 12+i%5, 0))
			}
			tasks = append(tasks, tk)
		}

		res, err := s.Run(context.Background(), cal, tasks, nineToFive())
		require.NoError(t, err)
		require.Len(t, res.Outcomes, len(tasks))

		byID := map[string]model.Task{}
		for _, tk := range tasks {
			byID[tk.ID] = tk
		}

		var placed []engine.Outcome
		for _, o := range res.Outcomes {
			if !o.Scheduled {
				continue
			}
			if d := byID[o.TaskID].DueDate; d != nil {
				assert.False(t, o.End.After(*d), "task %s ends after its deadline", o.TaskID)
			}
			local := o.Start.In(loc)
			assert.GreaterOrEqual(t, local.Hour(), 9)
			endLocal := o.End.In(loc)
			assert.True(t, endLocal.Hour() < 17 || (endLocal.Hour() == 17 && endLocal.Minute() == 0))
			for _, b := range cal.busy {
				assert.False(t, o.Start.Before(b.End) && b.Start.Before(o.End), "task %s overlaps busy time", o.TaskID)
			}
			placed = append(placed, o)
		}
		require.NotEmpty(t, placed)

		for i := range placed {
			for j := i + 1; j < len(placed); j++ {
				a, b := placed[i], placed[j]
				assert.False(t, a.Start.Before(b.End) && b.Start.Before(a.End), "%s overlaps %s", a.TaskID, b.TaskID)
			}
		}
	})
}

func TestByUrgency(t *testing.T) {
	d1 := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.Add(time.Hour)

	got := engine.ByUrgency([]model.Task{
		{ID: "none-a"},
		{ID: "d2", DueDate: &d2},
		{ID: "none-b"},
		{ID: "d1", DueDate: &d1},
		{ID: "d1-again", DueDate: &d1},
	})

	ids := make([]string, len(got))
	for i, tk := range got {
		ids[i] = tk.ID
	}
	assert.Equal(t, []string{"d1", "d1-again", "d2", "none-a", "none-b"}, ids)
}
