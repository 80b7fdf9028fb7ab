package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the zone days are computed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative day string to the start of that day.
// Supported: today, tomorrow, yesterday, "in N days|weeks|months", "next <weekday>",
// a bare weekday (its next occurrence), "end of week" (the coming Friday) and 2006-01-02.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.dayOffset(baseTime, 0), nil
	case "tomorrow":
		return p.dayOffset(baseTime, 1), nil
	case "yesterday":
		return p.dayOffset(baseTime, -1), nil
	case "end of week", "eow":
		return p.nextWeekday(baseTime, time.Friday, true), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		wd, ok := weekdays[strings.TrimPrefix(relative, "next ")]
		if !ok {
			return baseTime, fmt.Errorf("%w: unknown weekday in %q", ErrUnrecognized, relative)
		}
		return p.nextWeekday(baseTime, wd, false), nil
	}

	if wd, ok := weekdays[relative]; ok {
		return p.nextWeekday(baseTime, wd, false), nil
	}

	if day, err := time.ParseInLocation(time.DateOnly, relative, p.location); err == nil {
		return day, nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// Resolve accepts either an RFC3339 instant or anything Parse accepts.
func (p *Parser) Resolve(s string, baseTime time.Time) (ParseResult, error) {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err == nil {
		return ParseResult{AbsoluteTime: t}, nil
	}

	day, err := p.Parse(s, baseTime)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{AbsoluteTime: day, IsAllDay: true}, nil
}

// Deadline resolves s to the last instant a task due then may end: the exact instant
// for RFC3339 input, the end of the day otherwise.
func (p *Parser) Deadline(s string, baseTime time.Time) (time.Time, error) {
	res, err := p.Resolve(s, baseTime)
	if err != nil {
		return time.Time{}, err
	}
	if res.IsAllDay {
		return p.EndOfDay(res.AbsoluteTime), nil
	}
	return res.AbsoluteTime, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.dayOffset(baseTime, amount), nil
	case strings.HasPrefix(unit, "week"):
		return p.dayOffset(baseTime, amount*7), nil
	default:
		t := baseTime.In(p.location)
		return time.Date(t.Year(), t.Month()+time.Month(amount), t.Day(), 0, 0, 0, 0, p.location), nil
	}
}

// nextWeekday returns the next occurrence of wd after baseTime's day. With
// includeToday, baseTime's own day counts.
func (p *Parser) nextWeekday(baseTime time.Time, wd time.Weekday, includeToday bool) time.Time {
	current := baseTime.In(p.location).Weekday()
	daysUntil := int(wd - current)
	if daysUntil < 0 || (daysUntil == 0 && !includeToday) {
		daysUntil += 7
	}
	return p.dayOffset(baseTime, daysUntil)
}

// dayOffset returns midnight n calendar days after baseTime's day in the parser's zone.
// Counting calendar days keeps the result at midnight across DST changes.
func (p *Parser) dayOffset(baseTime time.Time, n int) time.Time {
	t := baseTime.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 on the day of t in the parser's timezone.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, p.location)
}
