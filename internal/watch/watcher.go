package watch

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed indicates use after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// DefaultDebounce is the settle window applied to bursts of writes.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports debounced change events for a fixed set of files.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	paths    map[string]bool
	debounce time.Duration

	events chan string
	closed bool
	done   chan struct{}
}

// New creates a watcher over the given files. Directories containing
// the files are watched so editors that replace-on-save are still seen.
func New(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		paths:    make(map[string]bool, len(paths)),
		debounce: DefaultDebounce,
		events:   make(chan string, 8),
		done:     make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	go w.loop()
	return w, nil
}

// Events returns the channel of debounced changed-file paths.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.done)
	return w.fsw.Close()
}

// loop filters raw events down to the tracked files and debounces them.
func (w *Watcher) loop() {
	var timer *time.Timer
	var pending string

	fire := func() {
		if pending == "" {
			return
		}
		select {
		case w.events <- pending:
		case <-w.done:
		}
		pending = ""
	}

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C
		}
		select {
		case <-w.done:
			return
		case <-timerC:
			timer = nil
			fire()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.paths[ev.Name] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = ev.Name
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
