// Package clock provides the time source injected into scheduling runs.
package clock

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns the wall clock.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Used by tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
