package engine_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-scheduler/internal/scheduling/engine"
)

const testZone = "America/New_York"

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(testZone)
	require.NoError(t, err)
	return loc
}

func at(loc *time.Location, day, hour, minute int) time.Time {
	return time.Date(2024, time.May, day, hour, minute, 0, 0, loc)
}

func nineToFive() engine.WorkingHours {
	return engine.WorkingHours{TimeZone: testZone, Start: 9, End: 17}
}

func TestExtractFreeSlots(t *testing.T) {
	loc := mustLoc(t)
	midnight := at(loc, 1, 0, 0)

	tests := []struct {
		name string
		now  time.Time
		busy []engine.BusyInterval
		opts engine.Options
		want []engine.TimeSlot
	}{
		{
			name: "busy hour splits the day",
			now:  midnight,
			busy: []engine.BusyInterval{{Start: at(loc, 1, 10, 0), End: at(loc, 1, 11, 0)}},
			opts: engine.Options{HorizonDays: 1},
			want: []engine.TimeSlot{
				{Start: at(loc, 1, 9, 0), End: at(loc, 1, 10, 0)},
				{Start: at(loc, 1, 11, 0), End: at(loc, 1, 17, 0)},
			},
		},
		{
			name: "no busy intervals gives one slot per day",
			now:  midnight,
			opts: engine.Options{HorizonDays: 3},
			want: []engine.TimeSlot{
				{Start: at(loc, 1, 9, 0), End: at(loc, 1, 17, 0)},
				{Start: at(loc, 2, 9, 0), End: at(loc, 2, 17, 0)},
				{Start: at(loc, 3, 9, 0), End: at(loc, 3, 17, 0)},
			},
		},
		{
			name: "zero horizon",
			now:  midnight,
			opts: engine.Options{HorizonDays: 0},
			want: nil,
		},
		{
			name: "busy outside working hours has no effect",
			now:  midnight,
			busy: []engine.BusyInterval{
				{Start: at(loc, 1, 6, 0), End: at(loc, 1, 9, 0)},
				{Start: at(loc, 1, 17, 0), End: at(loc, 1, 22, 0)},
			},
			opts: engine.Options{HorizonDays: 1},
			want: []engine.TimeSlot{{Start: at(loc, 1, 9, 0), End: at(loc, 1, 17, 0)}},
		},
		{
			name: "overlapping busy intervals",
			now:  midnight,
			busy: []engine.BusyInterval{
				{Start: at(loc, 1, 13, 0), End: at(loc, 1, 14, 0)},
				{Start: at(loc, 1, 10, 0), End: at(loc, 1, 12, 0)},
				{Start: at(loc, 1, 11, 0), End: at(loc, 1, 13, 30)},
			},
			opts: engine.Options{HorizonDays: 1},
			want: []engine.TimeSlot{
				{Start: at(loc, 1, 9, 0), End: at(loc, 1, 10, 0)},
				{Start: at(loc, 1, 14, 0), End: at(loc, 1, 17, 0)},
			},
		},
		{
			name: "busy interval spanning days",
			now:  midnight,
			busy: []engine.BusyInterval{{Start: at(loc, 1, 15, 0), End: at(loc, 2, 10, 0)}},
			opts: engine.Options{HorizonDays: 2},
			want: []engine.TimeSlot{
				{Start: at(loc, 1, 9, 0), End: at(loc, 1, 15, 0)},
				{Start: at(loc, 2, 10, 0), End: at(loc, 2, 17, 0)},
			},
		},
		{
			name: "probes before now are skipped",
			now:  at(loc, 1, 16, 30),
			opts: engine.Options{HorizonDays: 2},
			want: []engine.TimeSlot{
				{Start: at(loc, 1, 16, 30), End: at(loc, 1, 17, 0)},
				{Start: at(loc, 2, 9, 0), End: at(loc, 2, 17, 0)},
			},
		},
		{
			name: "probe straddling now is skipped",
			now:  at(loc, 1, 16, 10),
			opts: engine.Options{HorizonDays: 1},
			want: []engine.TimeSlot{{Start: at(loc, 1, 16, 30), End: at(loc, 1, 17, 0)}},
		},
		{
			name: "empty and inverted busy intervals are ignored",
			now:  midnight,
			busy: []engine.BusyInterval{
				{Start: at(loc, 1, 10, 0), End: at(loc, 1, 10, 0)},
				{Start: at(loc, 1, 12, 0), End: at(loc, 1, 11, 0)},
			},
			opts: engine.Options{HorizonDays: 1},
			want: []engine.TimeSlot{{Start: at(loc, 1, 9, 0), End: at(loc, 1, 17, 0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ExtractFreeSlots(tt.now, tt.busy, nineToFive(), tt.opts)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.True(t, tt.want[i].Start.Equal(got[i].Start), "slot %d start: want %s got %s", i, tt.want[i].Start, got[i].Start)
				assert.True(t, tt.want[i].End.Equal(got[i].End), "slot %d end: want %s got %s", i, tt.want[i].End, got[i].End)
			}
		})
	}
}

func TestExtractFreeSlotsBusyCheckModes(t *testing.T) {
	loc := mustLoc(t)
	now := at(loc, 1, 0, 0)
	// Starts and ends strictly inside the 10:00-10:30 probe.
	busy := []engine.BusyInterval{{Start: at(loc, 1, 10, 5), End: at(loc, 1, 10, 20)}}

	probeStart, err := engine.ExtractFreeSlots(now, busy, nineToFive(), engine.Options{HorizonDays: 1, BusyCheck: engine.BusyCheckProbeStart})
	require.NoError(t, err)
	require.Len(t, probeStart, 1)
	assert.True(t, probeStart[0].Start.Equal(at(loc, 1, 9, 0)))
	assert.True(t, probeStart[0].End.Equal(at(loc, 1, 17, 0)))

	overlap, err := engine.ExtractFreeSlots(now, busy, nineToFive(), engine.Options{HorizonDays: 1, BusyCheck: engine.BusyCheckOverlap})
	require.NoError(t, err)
	require.Len(t, overlap, 2)
	assert.True(t, overlap[0].End.Equal(at(loc, 1, 10, 0)))
	assert.True(t, overlap[1].Start.Equal(at(loc, 1, 10, 30)))
}

func TestExtractFreeSlotsFinerProbe(t *testing.T) {
	loc := mustLoc(t)
	busy := []engine.BusyInterval{{Start: at(loc, 1, 10, 0), End: at(loc, 1, 10, 45)}}

	got, err := engine.ExtractFreeSlots(at(loc, 1, 0, 0), busy, nineToFive(), engine.Options{HorizonDays: 1, Probe: 15 * time.Minute})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[1].Start.Equal(at(loc, 1, 10, 45)))
}

func TestExtractFreeSlotsAcrossDST(t *testing.T) {
	loc := mustLoc(t)
	// 2024-03-10 is the spring-forward day in New York.
	now := time.Date(2024, time.March, 9, 0, 0, 0, 0, loc)

	got, err := engine.ExtractFreeSlots(now, nil, nineToFive(), engine.Options{HorizonDays: 3})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, s := range got {
		assert.Equal(t, 9, s.Start.In(loc).Hour())
		assert.Equal(t, 17, s.End.In(loc).Hour())
		assert.Equal(t, 8*time.Hour, s.Duration())
	}
}

func TestExtractFreeSlotsInvariants(t *testing.T) {
	loc := mustLoc(t)
	now := at(loc, 1, 11, 17)
	busy := []engine.BusyInterval{
		{Start: at(loc, 1, 12, 10), End: at(loc, 1, 13, 40)},
		{Start: at(loc, 2, 8, 0), End: at(loc, 2, 9, 45)},
		{Start: at(loc, 3, 14, 0), End: at(loc, 3, 14, 1)},
		{Start: at(loc, 4, 16, 59), End: at(loc, 5, 9, 31)},
	}

	for _, mode := range []engine.BusyCheck{engine.BusyCheckProbeStart, engine.BusyCheckOverlap} {
		got, err := engine.ExtractFreeSlots(now, busy, nineToFive(), engine.Options{HorizonDays: 7, BusyCheck: mode})
		require.NoError(t, err)
		require.NotEmpty(t, got)

		for i, s := range got {
			assert.True(t, s.Start.Before(s.End), "slot %d is empty", i)
			assert.False(t, s.Start.Before(now), "slot %d starts before now", i)
			local := s.Start.In(loc)
			dayStart := time.Date(local.Year(), local.Month(), local.Day(), 9, 0, 0, 0, loc)
			dayEnd := time.Date(local.Year(), local.Month(), local.Day(), 17, 0, 0, 0, loc)
			assert.False(t, s.Start.Before(dayStart), "slot %d starts before working hours", i)
			assert.False(t, s.End.After(dayEnd), "slot %d ends after working hours", i)
			if i > 0 {
				assert.False(t, s.Start.Before(got[i-1].End), "slot %d overlaps previous", i)
			}
		}
	}
}

func TestExtractFreeSlotsInvalidConfig(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	_, err := engine.ExtractFreeSlots(now, nil, engine.WorkingHours{TimeZone: testZone, Start: 17, End: 9}, engine.Options{HorizonDays: 1})
	assert.ErrorIs(t, err, engine.ErrInvalidWorkingHours)

	_, err = engine.ExtractFreeSlots(now, nil, engine.WorkingHours{TimeZone: "Mars/Olympus", Start: 9, End: 17}, engine.Options{HorizonDays: 1})
	assert.ErrorIs(t, err, engine.ErrInvalidTimeZone)

	_, err = engine.ExtractFreeSlots(now, nil, nineToFive(), engine.Options{HorizonDays: 1, Probe: 45 * time.Minute})
	assert.ErrorIs(t, err, engine.ErrInvalidProbe)

	_, err = engine.ExtractFreeSlots(now, nil, nineToFive(), engine.Options{HorizonDays: 1, BusyCheck: "exact"})
	assert.ErrorIs(t, err, engine.ErrInvalidBusyCheck)
}

func TestWorkingHoursWithDefaults(t *testing.T) {
	wh := engine.WorkingHours{}.WithDefaults()
	assert.Equal(t, engine.WorkingHours{TimeZone: "America/New_York", Start: 9, End: 17}, wh)

	wh = engine.WorkingHours{TimeZone: "Europe/Berlin", Start: 8, End: 16}.WithDefaults()
	assert.Equal(t, engine.WorkingHours{TimeZone: "Europe/Berlin", Start: 8, End: 16}, wh)
}

func TestWorkingHoursWithDefaultsPerField(t *testing.T) {
	loc := mustLoc(t)

	endOnly := engine.WorkingHours{TimeZone: testZone, End: 15}.WithDefaults()
	assert.Equal(t, engine.WorkingHours{TimeZone: testZone, Start: 9, End: 15}, endOnly)

	slots, err := engine.ExtractFreeSlots(at(loc, 1, 0, 0), nil, endOnly, engine.Options{HorizonDays: 1})
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.True(t, slots[0].Start.Equal(at(loc, 1, 9, 0)), "got %v", slots[0].Start)
	assert.True(t, slots[0].End.Equal(at(loc, 1, 15, 0)), "got %v", slots[0].End)

	startOnly := engine.WorkingHours{Start: 10}.WithDefaults()
	assert.Equal(t, engine.WorkingHours{TimeZone: testZone, Start: 10, End: 17}, startOnly)
	assert.NoError(t, startOnly.Validate())
}
