// Package watch reports changes to a layout file
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle
const DefaultDebounce = 150 * time.Millisecond

// pollInterval is the backup polling period
const pollInterval = 500 * time.Millisecond

// WatcherInterface defines the interface for file watchers
type WatcherInterface interface {
	Changes() <-chan struct{}
	Errors() <-chan error
	Close() error
}

// Watcher monitors one file for changes
type Watcher struct {
	watcher    *fsnotify.Watcher
	filePath   string
	debounce   time.Duration
	modTime    time.Time
	size       int64
	changeChan chan struct{}
	errorChan  chan error
	done       chan struct{}
	closeOnce  sync.Once
}

// NewWatcher creates a new watcher for a file
func NewWatcher(filePath string) (*Watcher, error) {
	return NewWatcherWithDebounce(filePath, DefaultDebounce)
}

// NewWatcherWithDebounce creates a watcher with a custom debounce delay
func NewWatcherWithDebounce(filePath string, debounce time.Duration) (*Watcher, error) {
	filePath = filepath.Clean(filePath)
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory so editors that replace the file are still seen
	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:    fsWatcher,
		filePath:   filePath,
		debounce:   debounce,
		modTime:    info.ModTime(),
		size:       info.Size(),
		changeChan: make(chan struct{}, 1),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	defer close(w.changeChan)
	defer close(w.errorChan)

	var pending <-chan time.Time
	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Periodically compare file stats (polling as backup)
			if w.statChanged() {
				w.notify()
			}

		case <-pending:
			pending = nil
			w.statChanged()
			w.notify()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = time.After(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errorChan <- err:
			default:
			}
		}
	}
}

// statChanged records the current file stats and reports whether they moved
func (w *Watcher) statChanged() bool {
	info, err := os.Stat(w.filePath)
	if err != nil {
		return false
	}
	changed := !info.ModTime().Equal(w.modTime) || info.Size() != w.size
	w.modTime = info.ModTime()
	w.size = info.Size()
	return changed
}

// notify coalesces change notifications into the buffered channel
func (w *Watcher) notify() {
	select {
	case w.changeChan <- struct{}{}:
	default:
	}
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.filePath
}

// Changes returns a channel that receives a value after the file changed
func (w *Watcher) Changes() <-chan struct{} {
	return w.changeChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	changeChan chan struct{}
	errorChan  chan error
	closed     bool
	mu         sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		changeChan: make(chan struct{}, 10),
		errorChan:  make(chan error, 10),
	}
}

func (tw *TestWatcher) Changes() <-chan struct{} {
	return tw.changeChan
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true
	close(tw.changeChan)
	close(tw.errorChan)
	return nil
}

// SendChange simulates a change of the watched file
func (tw *TestWatcher) SendChange() {
	tw.changeChan <- struct{}{}
}

// SendError sends a test error to the watcher
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}
