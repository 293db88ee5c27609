// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/morshues/msync/internal/logger"
)

const (
	// periodicAttempts is the total attempt budget for one run of a
	// periodic job. A run that still fails waits for the next tick.
	periodicAttempts = 3

	periodicRetryBase = 2 * time.Second
)

// Job is one unit of periodic work.
type Job func(ctx context.Context) error

// Periodic runs a job once at startup and then on every tick of its
// interval. Failures within a run are retried with exponential backoff
// before the run is given up.
type Periodic struct {
	name     string
	interval time.Duration
	job      Job

	retryBase time.Duration

	logger *logger.Logger
}

func NewPeriodic(name string, interval time.Duration, job Job, log *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Periodic{
		name:      name,
		interval:  interval,
		job:       job,
		retryBase: periodicRetryBase,
		logger:    log,
	}
}

// Run implements [Worker].
func (p *Periodic) Run(ctx context.Context) {
	log := p.logger.With().Str("worker", p.name).Logger()
	ctx = log.WithContext(ctx)

	p.runOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *Periodic) runOnce(ctx context.Context) {
	log := logger.FromContext(ctx)

	backoff := retry.WithMaxRetries(periodicAttempts-1, retry.NewExponential(p.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if jobErr := p.job(ctx); jobErr != nil {
			return retry.RetryableError(jobErr)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Err(err).Str("worker", p.name).Msg("periodic run failed")
	}
}
