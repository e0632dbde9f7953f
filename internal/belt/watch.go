package belt

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for a burst of file events to settle
const DefaultDebounce = 200 * time.Millisecond

// Watch loads the curriculum in dir, calls fn with the result, and calls it
// again each time a file whose name matches pattern is created, written,
// renamed or removed. Only dir itself is watched, not its subdirectories.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, dir, pattern string, debounce time.Duration, fn func(*Registry, error)) error {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	fn(LoadDir(dir, pattern))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event, pattern) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watch %s: %w", dir, err))

		case <-fire:
			fire = nil
			fn(LoadDir(dir, pattern))
		}
	}
}

// relevant reports whether event touches a curriculum file
func relevant(event fsnotify.Event, pattern string) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	matched, err := doublestar.Match(pattern, filepath.Base(event.Name))
	return err == nil && matched
}
