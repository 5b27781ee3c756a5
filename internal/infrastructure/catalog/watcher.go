package catalog

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce absorbs the bursts of write events editors and export jobs
// emit for a single save.
const reloadDebounce = 200 * time.Millisecond

// Watch reloads the catalog whenever the export file changes, until ctx is
// cancelled. The watch is registered on the parent directory because many
// tools replace the file on save, which would drop a watch on the file
// itself. Reload failures are logged and leave the store empty; the next
// successful write recovers it.
func Watch(ctx context.Context, store *Store, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	log.Printf("[CATALOG] watching %s for changes", path)

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(reloadDebounce)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(reloadDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			log.Printf("[CATALOG] watcher stopped")
			return nil

		case <-reloadCh:
			if err := LoadFile(store, path); err != nil {
				log.Printf("[CATALOG] reload failed: %v", err)
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			scheduleReload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[CATALOG] watcher error: %v", err)
		}
	}
}
