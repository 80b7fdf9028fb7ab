package engine

import (
	"cmp"
	"slices"
	"sort"
	"time"
)

// ExtractFreeSlots turns busy intervals into the free windows inside working hours for
// horizonDays calendar days starting with the day that contains now.
//
// Each day's window is cut into probe increments. A probe is free unless the busy check
// rejects it, and adjacent free probes of the same day are joined. Probes that start
// before now, or that would run past the end of the working day, are skipped. The result
// is ordered by Start and holds no empty or overlapping slots.
func ExtractFreeSlots(now time.Time, busy []BusyInterval, wh WorkingHours, opts Options) ([]TimeSlot, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := wh.Validate(); err != nil {
		return nil, err
	}
	loc, err := wh.Location()
	if err != nil {
		return nil, err
	}

	set := newBusySet(busy)
	local := now.In(loc)
	year, month, day := local.Date()

	var free []TimeSlot
	for offset := 0; offset < opts.HorizonDays; offset++ {
		// time.Date normalises day overflow and keeps wall-clock hours across DST changes.
		dayStart := time.Date(year, month, day+offset, wh.Start, 0, 0, 0, loc)
		dayEnd := time.Date(year, month, day+offset, wh.End, 0, 0, 0, loc)

		dayFirst := len(free)
		for probe := dayStart; probe.Before(dayEnd); probe = probe.Add(opts.Probe) {
			probeEnd := probe.Add(opts.Probe)
			if probeEnd.After(dayEnd) {
				break
			}
			if probe.Before(now) {
				continue
			}
			if set.rejects(opts.BusyCheck, probe, probeEnd) {
				continue
			}

			if n := len(free); n > dayFirst && free[n-1].End.Equal(probe) {
				free[n-1].End = probeEnd
				continue
			}
			free = append(free, TimeSlot{Start: probe, End: probeEnd})
		}
	}

	return free, nil
}

// busySet is a sorted list of disjoint busy intervals.
type busySet []BusyInterval

// newBusySet drops empty intervals and merges overlapping or touching ones.
func newBusySet(busy []BusyInterval) busySet {
	sorted := make([]BusyInterval, 0, len(busy))
	for _, b := range busy {
		if b.End.After(b.Start) {
			sorted = append(sorted, b)
		}
	}
	slices.SortFunc(sorted, func(a, b BusyInterval) int {
		return cmp.Compare(a.Start.UnixNano(), b.Start.UnixNano())
	})

	merged := make(busySet, 0, len(sorted))
	for _, b := range sorted {
		if n := len(merged); n > 0 && !b.Start.After(merged[n-1].End) {
			if b.End.After(merged[n-1].End) {
				merged[n-1].End = b.End
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// firstEndingAfter returns the index of the first interval whose End is after t.
func (s busySet) firstEndingAfter(t time.Time) int {
	return sort.Search(len(s), func(i int) bool {
		return s[i].End.After(t)
	})
}

// contains reports whether t lies in some [Start, End).
func (s busySet) contains(t time.Time) bool {
	i := s.firstEndingAfter(t)
	return i < len(s) && !s[i].Start.After(t)
}

// overlaps reports whether [from, to) shares any instant with a busy interval.
func (s busySet) overlaps(from, to time.Time) bool {
	i := s.firstEndingAfter(from)
	return i < len(s) && s[i].Start.Before(to)
}

func (s busySet) rejects(mode BusyCheck, probe, probeEnd time.Time) bool {
	if mode == BusyCheckOverlap {
		return s.overlaps(probe, probeEnd)
	}
	return s.contains(probe)
}
