// Package workers provides the background jobs that keep the sync engine
// moving without user interaction: periodic scans, queue dispatch, terminal
// task cleanup, and the filesystem watcher over the synced folders.
// It defines the Worker interface and a Workers aggregate that runs a set of
// workers in a unified way.
package workers

import "context"

// Worker is the interface implemented by every background job. Run blocks
// until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
