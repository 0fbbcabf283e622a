package excel

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce groups the burst of events a single save produces.
const debounce = 200 * time.Millisecond

// Change reports that the watched workbook was written.
type Change struct {
	Path string
	Op   fsnotify.Op
}

// Watcher observes a workbook file.
// The parent directory is watched because spreadsheet editors save by
// writing a temporary file and renaming it over the original.
type Watcher struct {
	path string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the workbook at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: filepath.Clean(path)}
}

// Watch starts watching and returns a channel of changes.
// The channel is closed when ctx is done or the watcher is closed; closing
// the watcher still delivers a change that was waiting out the debounce.
func (w *Watcher) Watch(ctx context.Context) (<-chan Change, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.mu.Lock()
	w.watcher = fw
	w.mu.Unlock()

	changes := make(chan Change)
	go w.loop(ctx, fw, changes)
	return changes, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, changes chan<- Change) {
	defer fw.Close()
	w.forward(ctx, fw.Events, fw.Errors, changes)
}

// forward sends the last change of each burst once events go quiet.
// A change still pending when events closes is sent before changes is closed.
func (w *Watcher) forward(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, changes chan<- Change) {
	defer close(changes)

	var pending *Change
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	send := func() bool {
		if pending == nil {
			return true
		}
		select {
		case changes <- *pending:
			pending = nil
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				send()
				return
			}
			if c := w.handleFsEvent(event); c != nil {
				pending = c
				timer.Reset(debounce)
			}
		case err, ok := <-errs:
			if !ok {
				send()
				return
			}
			log.Warn("watch %s: %v", w.path, err)
		case <-timer.C:
			if !send() {
				return
			}
		}
	}
}

// handleFsEvent returns a change for writes and creates of the watched file.
func (w *Watcher) handleFsEvent(event fsnotify.Event) *Change {
	if filepath.Clean(event.Name) != w.path {
		return nil
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return nil
	}
	log.Debug("%s: %s", event.Op, event.Name)
	return &Change{Path: w.path, Op: event.Op}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
