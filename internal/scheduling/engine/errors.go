package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWorkingHours = errors.New("working hours must satisfy 0 <= start < end < 24")
	ErrInvalidTimeZone     = errors.New("unknown time zone")
	ErrInvalidProbe        = errors.New("probe increment must be a positive divisor of 30 minutes")
	ErrInvalidBusyCheck    = errors.New("unknown busy check mode")
	ErrFreeBusyUnavailable = errors.New("calendar free/busy data unavailable")
)

// ProviderError reports a failed call to the calendar provider.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("calendar provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
