// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/service"
)

// DispatchScheduler runs the dispatcher on a fixed interval and whenever
// Trigger is called. Folder additions and mode switches use the trigger so
// their first transfers start without waiting for the next tick.
type DispatchScheduler struct {
	dispatcher service.DispatcherService
	interval   time.Duration

	kick chan struct{}

	retryBase time.Duration

	logger *logger.Logger
}

func NewDispatchScheduler(dispatcher service.DispatcherService, interval time.Duration, log *logger.Logger) *DispatchScheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &DispatchScheduler{
		dispatcher: dispatcher,
		interval:   interval,
		kick:       make(chan struct{}, 1),
		retryBase:  periodicRetryBase,
		logger:     log,
	}
}

// Trigger requests an immediate dispatch run. Safe to call from any
// goroutine; coalesces when a run is already requested.
func (d *DispatchScheduler) Trigger() {
	select {
	case d.kick <- struct{}{}:
	default:
	}
}

// Run implements [Worker].
func (d *DispatchScheduler) Run(ctx context.Context) {
	log := d.logger.With().Str("worker", "dispatch").Logger()
	ctx = log.WithContext(ctx)

	d.dispatch(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.dispatch(ctx)
		case <-d.kick:
			d.dispatch(ctx)
		}
	}
}

// dispatch runs the dispatcher under the same per-run retry budget the other
// periodic jobs get. A run that still fails waits for the next tick or kick.
func (d *DispatchScheduler) dispatch(ctx context.Context) {
	backoff := retry.WithMaxRetries(periodicAttempts-1, retry.NewExponential(d.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if dispErr := d.dispatcher.Dispatch(ctx); dispErr != nil {
			return retry.RetryableError(dispErr)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		logger.FromContext(ctx).Err(err).Msg("dispatch run failed")
	}
}
