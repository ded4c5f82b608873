// Package watcher monitors the spreadsheet a schedule was imported from,
// so edits made in an external spreadsheet tool flow back into the open
// timeline without re-running the import by hand.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vanderheijden86/gantry/pkg/debug"
)

// DefaultDebounce coalesces the burst of writes spreadsheet tools emit on
// save into a single change notification.
const DefaultDebounce = 250 * time.Millisecond

// ErrAlreadyStarted is returned by Start on a running watcher.
var ErrAlreadyStarted = errors.New("watcher already started")

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithOnError sets the callback invoked on watch errors.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// Watcher watches one file and invokes a callback after changes settle.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	onError  func(error)

	fs      *fsnotify.Watcher
	timer   *time.Timer
	mu      sync.Mutex
	started bool
	done    chan struct{}
}

// New creates a watcher for path; onChange runs on the watcher goroutine
// after each debounced change.
func New(path string, onChange func(), opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		onChange: onChange,
		onError:  func(error) {},
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself: spreadsheet tools save via rename, which would silently
// detach a direct file watch.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return ErrAlreadyStarted
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fs.Add(filepath.Dir(w.path)); err != nil {
		fs.Close()
		return err
	}
	w.fs = fs
	w.started = true

	go w.loop()
	return nil
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return
	}
	w.started = false
	close(w.done)
	w.fs.Close()
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debug.Log("watcher: %s on %s", ev.Op, ev.Name)
			w.kick()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

// kick (re)arms the debounce timer.
func (w *Watcher) kick() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}
