// Package watch re-runs a report whenever its input file changes. It
// watches the file's directory (editors replace files rather than write
// them in place) and debounces rapid save bursts into a single run.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher re-runs a callback when one file changes.
type Watcher struct {
	log      *zap.Logger
	path     string
	debounce time.Duration
	run      func(path string) error
}

// New builds a watcher for path. run is invoked once immediately when the
// watcher starts and again after every debounced change to the file. A
// non-positive debounce selects the default.
func New(log *zap.Logger, path string, debounce time.Duration, run func(path string) error) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{log: log, path: path, debounce: debounce, run: run}
}

// Run watches until ctx is cancelled. Callback errors are logged, not
// fatal: a half-saved input file should not kill the watch loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.runOnce()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer fw.Close()

		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-fw.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				w.log.Debug("input changed",
					zap.String("path", ev.Name),
					zap.String("op", ev.Op.String()))
				if timer == nil {
					timer = time.NewTimer(w.debounce)
					fire = timer.C
				} else {
					if !timer.Stop() {
						<-timer.C
					}
					timer.Reset(w.debounce)
				}

			case <-fire:
				timer = nil
				fire = nil
				w.runOnce()

			case err, ok := <-fw.Errors:
				if !ok {
					return nil
				}
				w.log.Warn("watch error", zap.Error(err))
			}
		}
	})
	return g.Wait()
}

func (w *Watcher) runOnce() {
	if err := w.run(w.path); err != nil {
		w.log.Warn("report run failed", zap.Error(err))
	}
}
