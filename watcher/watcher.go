// Package watcher provides recursive filesystem watching over a project root,
// emitting a flat stream of change events for the rebuild scheduler.
package watcher

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Op is the kind of change observed at a path.
type Op int

const (
	OpCreate Op = iota
	OpModify
	OpRemove
	OpRename
	OpDirCreate
	OpDirRemove
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	case OpDirCreate:
		return "dirCreate"
	case OpDirRemove:
		return "dirRemove"
	}
	return "unknown"
}

// Event is one filesystem change notification.
type Event struct {
	Path string
	Op   Op
}

// IgnoreChecker is used by the watcher to skip excluded paths.
type IgnoreChecker interface {
	ShouldIgnoreDir(absolutePath string) bool
	ShouldIgnore(absolutePath string) bool
}

// Watcher wraps fsnotify with recursive directory registration. New
// directories created under the root are added to the watch set on the fly.
type Watcher struct {
	fsWatcher     *fsnotify.Watcher
	ignoreChecker IgnoreChecker
	rootDir       string
	logger        *slog.Logger
	events        chan Event

	mu          sync.Mutex
	watchedDirs map[string]bool
}

// NewWatcher creates a recursive watcher on the given root directory,
// registering all non-ignored subdirectories.
func NewWatcher(rootDir string, ignoreChecker IgnoreChecker, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:     fsWatcher,
		ignoreChecker: ignoreChecker,
		rootDir:       rootDir,
		logger:        logger,
		events:        make(chan Event, 256),
		watchedDirs:   make(map[string]bool),
	}

	err = filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries that can't be read
		}
		if !d.IsDir() {
			return nil
		}
		if path != rootDir && ignoreChecker.ShouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		w.addDir(path)
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Events returns the channel change notifications are delivered on.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start listens for filesystem events until the watcher is closed. Call this
// in a goroutine.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				close(w.events)
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				close(w.events)
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleEvent converts one fsnotify event into a watcher event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if w.ignoreChecker.ShouldIgnoreDir(path) {
				return
			}
			w.addDir(path)
			w.emit(Event{Path: path, Op: OpDirCreate})
			return
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		// The path is already gone; it was a directory if we were watching it
		if w.forgetDir(path) {
			w.emit(Event{Path: path, Op: OpDirRemove})
			return
		}
	}

	if w.ignoreChecker.ShouldIgnore(path) {
		return
	}

	var op Op
	switch {
	case event.Has(fsnotify.Create):
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpModify
	case event.Has(fsnotify.Remove):
		op = OpRemove
	case event.Has(fsnotify.Rename):
		op = OpRename
	default:
		return
	}

	w.emit(Event{Path: path, Op: op})
}

func (w *Watcher) emit(event Event) {
	w.events <- event
}

func (w *Watcher) addDir(path string) {
	if err := w.fsWatcher.Add(path); err != nil {
		w.logger.Warn("failed to watch directory", "path", path, "error", err)
		return
	}
	w.mu.Lock()
	w.watchedDirs[path] = true
	w.mu.Unlock()
}

// forgetDir removes a path from the watched set, reporting whether it was a
// watched directory.
func (w *Watcher) forgetDir(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.watchedDirs[path] {
		return false
	}
	delete(w.watchedDirs, path)
	return true
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
