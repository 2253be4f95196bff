// Package watch is outgrep's watch-mode collaborator (SPEC_FULL.md
// §D.4): it re-invokes a per-file callback whenever a watched file
// changes, without holding or mutating any core state itself —
// matchpipe.Render and semantic.SearchFile are already stateless
// per-file operations, so watch mode is just "call it again".
// Grounded in the teacher's internal/indexing/watcher.go fsnotify
// wiring, trimmed to drop incremental-index bookkeeping that has no
// equivalent in this core (spec.md's Non-goals explicitly exclude
// incremental re-indexing).
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tomwhiting/outgrep/internal/diag"
)

// Watcher re-invokes OnChange for every write/create event under a
// set of watched directories, debounced so a burst of writes to one
// file triggers OnChange once.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration
	OnChange  func(path string)
}

// New creates a Watcher with the given debounce interval. Call Add to
// register directories, then Run to start processing events.
func New(debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsWatcher: fw, debounce: debounce, OnChange: onChange}, nil
}

// Add registers a directory for watching.
func (w *Watcher) Add(dir string) error {
	return w.fsWatcher.Add(dir)
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

// Run processes events until stop is closed, debouncing repeated
// events for the same path within the configured interval.
func (w *Watcher) Run(stop <-chan struct{}) {
	pending := make(map[string]*time.Timer)

	fire := func(path string) {
		diag.Tracef("watch: re-invoking for %s", path)
		if w.OnChange != nil {
			w.OnChange(path)
		}
	}

	for {
		select {
		case <-stop:
			for _, t := range pending {
				t.Stop()
			}
			return
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if t, exists := pending[path]; exists {
				t.Stop()
			}
			pending[path] = time.AfterFunc(w.debounce, func() { fire(path) })
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			diag.Tracef("watch: error: %v", err)
		}
	}
}
