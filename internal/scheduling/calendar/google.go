package calendar

import (
	"context"
	"time"

	"meeting-scheduler/internal/scheduling/engine"
	"meeting-scheduler/pkg/gcalendar"
)

// googleClient is the part of gcalendar.Client the scheduler uses.
type googleClient interface {
	QueryFreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyPeriod, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type provider struct {
	client     googleClient
	calendarID string
	timeout    time.Duration
}

// NewProvider adapts a Google Calendar client to engine.CalendarProvider.
// A positive timeout bounds each API call.
func NewProvider(client googleClient, calendarID string, timeout time.Duration) engine.CalendarProvider {
	return &provider{
		client:     client,
		calendarID: calendarID,
		timeout:    timeout,
	}
}

func (p *provider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.timeout)
}

func (p *provider) GetBusy(ctx context.Context, timeMin, timeMax time.Time) ([]engine.BusyInterval, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	periods, err := p.client.QueryFreeBusy(ctx, gcalendar.FreeBusyRequest{
		CalendarID: p.calendarID,
		TimeMin:    timeMin,
		TimeMax:    timeMax,
	})
	if err != nil {
		return nil, &engine.ProviderError{Op: "getBusy", Err: err}
	}

	busy := make([]engine.BusyInterval, len(periods))
	for i, b := range periods {
		busy[i] = engine.BusyInterval{Start: b.Start, End: b.End}
	}
	return busy, nil
}

func (p *provider) CreateEvent(ctx context.Context, ev engine.Event) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	created, err := p.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  p.calendarID,
		Summary:     ev.Summary,
		Description: ev.Description,
		StartTime:   ev.Start,
		EndTime:     ev.End,
		Timezone:    ev.TimeZone,
	})
	if err != nil {
		return "", &engine.ProviderError{Op: "createEvent", Err: err}
	}
	return created.ID, nil
}
