package sitectl

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long the store must stay quiet before a resync.
const watchDebounce = 500 * time.Millisecond

// Watch re-runs Sync whenever the JSON store changes, until ctx is done.
// The store's directory is watched rather than the file itself so that
// editors that save by renaming are picked up. onSync is called after every
// sync attempt.
func (a *App) Watch(ctx context.Context, onSync func(n int, err error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("sitectl: create watcher: %w", err)
	}
	defer watcher.Close()

	storePath := filepath.Clean(a.store.Path())
	if err := watcher.Add(filepath.Dir(storePath)); err != nil {
		return fmt.Errorf("sitectl: watch %s: %w", filepath.Dir(storePath), err)
	}
	a.log.WithField("store", storePath).Info("watching store for changes")

	var (
		mu      sync.Mutex
		timer   *time.Timer
		stopped bool
	)
	resync := func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		n, err := a.Sync()
		onSync(n, err)
	}
	defer func() {
		mu.Lock()
		stopped = true
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isStoreEvent(event, storePath) {
				continue
			}
			a.log.WithField("op", event.Op.String()).Debug("store changed")
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, resync)
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.WithError(err).Warn("watcher error")
		}
	}
}

// isStoreEvent reports whether event changed the store file's content.
func isStoreEvent(event fsnotify.Event, storePath string) bool {
	if filepath.Clean(event.Name) != storePath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
