package engine

import "time"

// SlotList is the free-slot working set of a single run. It is owned by that run and
// must not be shared: allocation mutates it in place.
type SlotList struct {
	slots []TimeSlot
}

// NewSlotList copies slots into a fresh working set.
func NewSlotList(slots []TimeSlot) *SlotList {
	return &SlotList{slots: append([]TimeSlot(nil), slots...)}
}

// Len returns the number of remaining free slots.
func (l *SlotList) Len() int {
	return len(l.slots)
}

// Slots returns a copy of the remaining free slots.
func (l *SlotList) Slots() []TimeSlot {
	return append([]TimeSlot(nil), l.slots...)
}

// FirstFit returns the index of the earliest slot at least d long that ends no later
// than deadline. A non-positive d never fits.
func (l *SlotList) FirstFit(d time.Duration, deadline time.Time) (int, bool) {
	if d <= 0 {
		return -1, false
	}
	for i, s := range l.slots {
		if s.Duration() >= d && !s.End.After(deadline) {
			return i, true
		}
	}
	return -1, false
}

// Consume takes d from the front of slot i. A slot used up exactly is removed;
// otherwise it keeps its position and its Start moves forward by d.
func (l *SlotList) Consume(i int, d time.Duration) {
	if i < 0 || i >= len(l.slots) {
		return
	}
	s := l.slots[i]
	if s.Duration() <= d {
		l.slots = append(l.slots[:i], l.slots[i+1:]...)
		return
	}
	l.slots[i].Start = s.Start.Add(d)
}
