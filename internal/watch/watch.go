// Package watch rescans files as they change, for the convlint watch mode.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceWindow coalesces the bursts editors produce on save.
const debounceWindow = 200 * time.Millisecond

// Watcher reports changed files under a set of directories.
type Watcher struct {
	targets []string
	onFile  func(path string)
	log     *zap.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a watcher over the target paths. onFile fires once per changed
// file after the debounce window settles.
func New(targets []string, onFile func(path string), log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}

	return &Watcher{
		targets: targets,
		onFile:  onFile,
		log:     log,
		pending: make(map[string]*time.Timer),
	}
}

// Run blocks, dispatching change notifications until the context is done.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, target := range w.targets {
		if err := addRecursive(watcher, target); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// New directories must be picked up to keep the watch recursive.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, event.Name)
					continue
				}
			}

			w.schedule(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// schedule arms (or re-arms) the per-file debounce timer.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(debounceWindow)
		return
	}

	w.pending[path] = time.AfterFunc(debounceWindow, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		w.onFile(path)
	})
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtrees are simply not watched
		}
		if !d.IsDir() {
			return nil
		}
		switch d.Name() {
		case ".git", "node_modules", "vendor", "__pycache__":
			if path != root {
				return fs.SkipDir
			}
		}

		return watcher.Add(path)
	})
}
