package loader

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tabmill/tabmill/errors"
	"github.com/tabmill/tabmill/logger"
)

// Watcher watches an input file and triggers a callback when it changes.
// Rapid successive writes are debounced so a single save triggers one
// re-scan.
type Watcher struct {
	path           string
	watcher        *fsnotify.Watcher
	onChange       func()
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewWatcher creates a watcher for the file at path. onChange is called
// after each debounced change event.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch input file %s", path)
	}

	return &Watcher{
		path:           path,
		watcher:        watcher,
		onChange:       onChange,
		debouncePeriod: 500 * time.Millisecond,
	}, nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// Only re-scan on Write or Create events
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Debugw("input file changed",
					"file", event.Name,
					"op", event.Op.String())
				w.scheduleChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("input watcher error", "error", err)
		}
	}
}

// scheduleChange debounces rapid file changes before firing the callback
func (w *Watcher) scheduleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.onChange)
}

// Stop stops watching for file changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
