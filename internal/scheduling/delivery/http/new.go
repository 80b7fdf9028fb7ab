package http

import (
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/pkg/clock"
	"meeting-scheduler/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    scheduling.UseCase
	clock clock.Clock
}

// New creates a new HTTP handler for the scheduling domain.
func New(l log.Logger, uc scheduling.UseCase, clk clock.Clock) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		clock: clk,
	}
}
