package calendar

import (
	"context"
	"strings"
	"time"

	"google.golang.org/api/option"

	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/scheduling/engine"
	"meeting-scheduler/pkg/gcalendar"
)

// Factory opens a Google Calendar per request credential.
type Factory struct {
	calendarID string
	timeout    time.Duration
	fallback   *gcalendar.Client
	opts       []option.ClientOption
}

var _ scheduling.ProviderFactory = (*Factory)(nil)

// NewFactory creates a Factory booking into calendarID. fallback, when not nil, serves
// requests that carry no credential (a server-side service account).
func NewFactory(calendarID string, timeout time.Duration, fallback *gcalendar.Client, opts ...option.ClientOption) *Factory {
	return &Factory{
		calendarID: calendarID,
		timeout:    timeout,
		fallback:   fallback,
		opts:       opts,
	}
}

// New returns the provider behind credential.
func (f *Factory) New(ctx context.Context, credential string) (engine.CalendarProvider, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		if f.fallback != nil {
			return NewProvider(f.fallback, f.calendarID, f.timeout), nil
		}
		return nil, scheduling.ErrMissingCredential
	}

	client, err := gcalendar.NewClientFromToken(ctx, credential, f.opts...)
	if err != nil {
		return nil, err
	}
	return NewProvider(client, f.calendarID, f.timeout), nil
}
