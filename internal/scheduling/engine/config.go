package engine

import (
	"fmt"
	"strings"
	"time"
)

// WithDefaults fills each zero field of w on its own. A zero hour counts as unset, so a
// window cannot start at midnight.
func (w WorkingHours) WithDefaults() WorkingHours {
	if strings.TrimSpace(w.TimeZone) == "" {
		w.TimeZone = DefaultTimeZone
	}
	if w.Start == 0 {
		w.Start = DefaultWorkingHoursStart
	}
	if w.End == 0 {
		w.End = DefaultWorkingHoursEnd
	}
	return w
}

// Validate checks the hour range and resolves the time zone.
func (w WorkingHours) Validate() error {
	if w.Start < 0 || w.End >= 24 || w.Start >= w.End {
		return fmt.Errorf("%w: got %d-%d", ErrInvalidWorkingHours, w.Start, w.End)
	}
	if _, err := w.Location(); err != nil {
		return err
	}
	return nil
}

// Location loads the IANA zone of w.
func (w WorkingHours) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(w.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimeZone, w.TimeZone, err)
	}
	return loc, nil
}

// WithDefaults fills the zero fields of o.
func (o Options) WithDefaults() Options {
	if o.HorizonDays < 0 {
		o.HorizonDays = 0
	}
	if o.Probe == 0 {
		o.Probe = DefaultProbe
	}
	if o.BusyCheck == "" {
		o.BusyCheck = BusyCheckProbeStart
	}
	return o
}

// Validate enforces a probe that divides 30 minutes, so durations expressed in whole
// probes line up with slot boundaries.
func (o Options) Validate() error {
	if o.Probe <= 0 || (30*time.Minute)%o.Probe != 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidProbe, o.Probe)
	}
	switch o.BusyCheck {
	case BusyCheckProbeStart, BusyCheckOverlap:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBusyCheck, o.BusyCheck)
	}
	return nil
}

// HorizonEnd is the last instant a run may schedule into.
func (o Options) HorizonEnd(now time.Time) time.Time {
	return now.Add(time.Duration(o.HorizonDays) * 24 * time.Hour)
}
