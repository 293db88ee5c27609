// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morshues/msync/internal/logger"
)

func TestPeriodic_RunsImmediatelyAndOnTicks(t *testing.T) {
	var runs atomic.Int32
	job := func(context.Context) error {
		runs.Add(1)
		return nil
	}

	p := NewPeriodic("test", 5*time.Millisecond, job, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	<-done
}

func TestPeriodic_RetriesWithinOneRun(t *testing.T) {
	var attempts atomic.Int32
	job := func(context.Context) error {
		attempts.Add(1)
		return errors.New("transient")
	}

	p := NewPeriodic("test", time.Hour, job, logger.Nop())
	p.retryBase = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// бюджет попыток исчерпан, дальше ждём следующего тика
	require.Eventually(t, func() bool { return attempts.Load() == periodicAttempts }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(periodicAttempts), attempts.Load())

	cancel()
	<-done
}

func TestPeriodic_FailureThenRecovery(t *testing.T) {
	var calls atomic.Int32
	job := func(context.Context) error {
		if calls.Add(1) == 1 {
			return errors.New("first call fails")
		}
		return nil
	}

	p := NewPeriodic("test", time.Hour, job, logger.Nop())
	p.retryBase = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// вторая попытка того же запуска успешна
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)

	cancel()
	<-done
}

func TestPeriodic_ZeroIntervalGetsDefault(t *testing.T) {
	p := NewPeriodic("test", 0, func(context.Context) error { return nil }, logger.Nop())
	assert.Equal(t, time.Minute, p.interval)
}
