package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/scheduling/repository"
	"meeting-scheduler/pkg/clock"
	pkgLog "meeting-scheduler/pkg/log"
)

// Config sizes the in-memory store.
type Config struct {
	OutcomeCapacity int           // max outcomes kept, 0 = unbounded
	OutcomeTTL      time.Duration // 0 = never expire
}

type implRepository struct {
	l        pkgLog.Logger
	clock    clock.Clock
	outcomes *expirable.LRU[outcomeKey, scheduling.TaskOutcome]
	settings *expirable.LRU[string, model.Settings]
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-memory scheduling repository. Outcomes are evicted by size and age;
// settings are kept for the life of the process.
func New(l pkgLog.Logger, clk clock.Clock, cfg Config) repository.Repository {
	return &implRepository{
		l:        l,
		clock:    clk,
		outcomes: expirable.NewLRU[outcomeKey, scheduling.TaskOutcome](cfg.OutcomeCapacity, nil, cfg.OutcomeTTL),
		settings: expirable.NewLRU[string, model.Settings](0, nil, 0),
	}
}

type outcomeKey struct {
	userID string
	taskID string
}
