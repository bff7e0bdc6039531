// Package watch re-runs the calculation whenever the config file
// changes, the headless counterpart of the interactive form's run
// button.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fabtooling/dieyield/pkg/log"
)

// DefaultDebounce is the delay after a file change before the callback
// fires, so editors that write in several syscalls trigger one run.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors one config file and invokes a callback after changes.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   log.Logger
	onChange func()
}

// New creates a watcher for the given file. onChange runs on the watch
// goroutine, serialized with respect to itself.
func New(path string, logger log.Logger, onChange func()) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		logger:   logger,
		onChange: onChange,
	}
}

// Run blocks watching the file until the context is cancelled. The
// parent directory is watched rather than the file itself, since editors
// commonly replace files by rename.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching config file", log.String("path", w.path))

	target := filepath.Base(w.path)
	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(w.debounce)
				fire = debounce.C
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(w.debounce)
			}

		case <-fire:
			debounce = nil
			fire = nil
			w.logger.Info("config file changed, rerunning", log.String("path", w.path))
			w.onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", log.Err(err))
		}
	}
}
