package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/globalstreet/postrack/internal/models"
)

const (
	// DefaultDrainInterval is how often the pending write queue is retried.
	DefaultDrainInterval = 20 * time.Second

	// DefaultPollInterval is how often the delta poll fires.
	DefaultPollInterval = 20 * time.Second
)

// Runner drives the two background timers of an active session: the pending
// queue drain and the delta poll. Polls are skipped while an optimistic write
// is in flight so a fetch cannot clobber local state that has not yet round-
// tripped; Wake forces an immediate poll (the foreground-again signal).
type Runner struct {
	service *Service
	logger  *slog.Logger

	drainEvery time.Duration
	pollEvery  time.Duration
	onState    func(*models.AppState, bool)
	wake       chan struct{}
}

// NewRunner creates a runner. onState, when non-nil, receives the state and
// the online flag after every poll.
func NewRunner(service *Service, logger *slog.Logger, onState func(*models.AppState, bool)) *Runner {
	return &Runner{
		service:    service,
		logger:     logger,
		drainEvery: DefaultDrainInterval,
		pollEvery:  DefaultPollInterval,
		onState:    onState,
		wake:       make(chan struct{}, 1),
	}
}

// Wake requests an immediate poll, coalescing with any already pending wake.
func (r *Runner) Wake() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done, firing drains and polls on their intervals.
func (r *Runner) Run(ctx context.Context, accessToken string) {
	drain := time.NewTicker(r.drainEvery)
	defer drain.Stop()
	poll := time.NewTicker(r.pollEvery)
	defer poll.Stop()

	r.logger.Info("background sync started",
		"drain_interval", r.drainEvery, "poll_interval", r.pollEvery)

	// Catch up immediately on start.
	r.poll(ctx, accessToken)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("background sync stopped")
			return
		case <-drain.C:
			r.service.Drain(ctx, accessToken)
		case <-poll.C:
			r.poll(ctx, accessToken)
		case <-r.wake:
			r.poll(ctx, accessToken)
		}
	}
}

func (r *Runner) poll(ctx context.Context, accessToken string) {
	// A poll racing an in-flight optimistic write could overwrite state that
	// has not reached the server yet; skip and let the next tick catch up.
	if r.service.writing.Load() > 0 {
		r.logger.Debug("skipping poll, write in flight")
		return
	}

	st, online := r.service.Fetch(ctx, accessToken, false)
	if r.onState != nil {
		r.onState(st, online)
	}
}
