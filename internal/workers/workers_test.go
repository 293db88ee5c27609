// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync/atomic"
	"testing"
)

// mockWorker is a test implementation of the Worker interface that counts
// Run calls.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Wait_BlocksUntilWorkersReturn(t *testing.T) {
	release := make(chan struct{})
	blocked := &blockingWorker{release: release}

	ws := NewWorkers(blocked)
	ws.Run(context.Background())

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before the worker finished")
	default:
	}

	close(release)
	<-done
}

// blockingWorker holds Run open until released.
type blockingWorker struct {
	release chan struct{}
}

func (b *blockingWorker) Run(context.Context) {
	<-b.release
}
