// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/service"
	"github.com/morshues/msync/internal/store"
)

const watchRefreshInterval = time.Minute

// FolderWatcher reacts to filesystem changes inside the synced folders.
// Change events are debounced into a single scan of the touched folders
// followed by one dispatch run; the watch list is refreshed from the store
// so folders added or removed at runtime are picked up.
type FolderWatcher struct {
	folders    store.FolderRepository
	scanner    service.ScannerService
	dispatcher service.DispatcherService

	debounce        time.Duration
	refreshInterval time.Duration

	// watched mirrors the paths registered with fsnotify; only touched
	// from the Run goroutine.
	watched map[string]struct{}

	logger *logger.Logger
}

func NewFolderWatcher(
	folders store.FolderRepository,
	scanner service.ScannerService,
	dispatcher service.DispatcherService,
	debounce time.Duration,
	log *logger.Logger,
) *FolderWatcher {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &FolderWatcher{
		folders:         folders,
		scanner:         scanner,
		dispatcher:      dispatcher,
		debounce:        debounce,
		refreshInterval: watchRefreshInterval,
		watched:         make(map[string]struct{}),
		logger:          log,
	}
}

// Run implements [Worker].
func (w *FolderWatcher) Run(ctx context.Context) {
	log := w.logger.With().Str("worker", "watcher").Logger()
	ctx = log.WithContext(ctx)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Err(err).Msg("filesystem watcher unavailable, periodic scans only")
		return
	}
	defer fsw.Close()

	w.syncWatchList(ctx, fsw)

	refresh := time.NewTicker(w.refreshInterval)
	defer refresh.Stop()

	flush := time.NewTimer(w.debounce)
	if !flush.Stop() {
		<-flush.C
	}
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			pending[filepath.Dir(event.Name)] = struct{}{}
			flush.Reset(w.debounce)

		case watchErr, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(watchErr).Msg("filesystem watch error")

		case <-flush.C:
			w.flush(ctx, pending)
			pending = make(map[string]struct{})

		case <-refresh.C:
			w.syncWatchList(ctx, fsw)
		}
	}
}

// relevant filters out event types and files the scanner would ignore
// anyway, most importantly the hidden temp files downloads write through.
func (w *FolderWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return !strings.HasPrefix(filepath.Base(event.Name), ".")
}

func (w *FolderWatcher) flush(ctx context.Context, pending map[string]struct{}) {
	log := logger.FromContext(ctx)

	scanned := 0
	for folder := range pending {
		if _, ok := w.watched[folder]; !ok {
			continue
		}
		if _, err := w.scanner.ScanFolder(ctx, folder); err != nil {
			log.Err(err).Str("folder", folder).Msg("change-triggered scan failed")
			continue
		}
		scanned++
	}

	if scanned == 0 {
		return
	}

	if err := w.dispatcher.Dispatch(ctx); err != nil && ctx.Err() == nil {
		log.Err(err).Msg("change-triggered dispatch failed")
	}
}

func (w *FolderWatcher) syncWatchList(ctx context.Context, fsw *fsnotify.Watcher) {
	log := logger.FromContext(ctx)

	folders, err := w.folders.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("failed to refresh watch list")
		return
	}

	current := make(map[string]struct{}, len(folders))
	for _, folder := range folders {
		current[folder.Path] = struct{}{}
		if _, ok := w.watched[folder.Path]; ok {
			continue
		}
		if addErr := fsw.Add(folder.Path); addErr != nil {
			log.Warn().Err(addErr).Str("folder", folder.Path).Msg("failed to watch folder")
			continue
		}
		w.watched[folder.Path] = struct{}{}
	}

	for path := range w.watched {
		if _, ok := current[path]; ok {
			continue
		}
		if removeErr := fsw.Remove(path); removeErr != nil {
			log.Warn().Err(removeErr).Str("folder", path).Msg("failed to unwatch folder")
		}
		delete(w.watched, path)
	}
}
