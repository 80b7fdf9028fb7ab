package datemath

import (
	"errors"
	"time"
)

// ErrUnrecognized is returned for a due string in none of the supported forms.
var ErrUnrecognized = errors.New("unrecognized due date")

// ParseResult holds the result of resolving a due string.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool // true when only a day was given, not an instant
}
