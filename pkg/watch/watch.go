// Package watch re-runs a staging pass whenever the watched source trees change.
package watch

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lerenn/hstage/pkg/fs"
	"github.com/lerenn/hstage/pkg/logger"
)

// DefaultDebounce is the quiet period after the last event before a run starts.
const DefaultDebounce = 500 * time.Millisecond

// Watcher triggers a callback after bursts of filesystem changes.
type Watcher interface {
	// Watch blocks until ctx is cancelled, calling the change callback once per
	// burst of events below the watched roots.
	Watch(ctx context.Context) error
}

// NewWatcherParams contains parameters for creating a new Watcher.
type NewWatcherParams struct {
	FS     fs.FS
	Logger logger.Logger
	// Roots are watched recursively. Roots that do not exist yet are skipped.
	Roots []string
	// Exclude lists paths whose events are ignored, with everything below them.
	Exclude []string
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
	OnChange func(ctx context.Context) error
	Verbose  bool
}

type realWatcher struct {
	fs       fs.FS
	logger   logger.Logger
	roots    []string
	exclude  []string
	debounce time.Duration
	onChange func(ctx context.Context) error
	verbose  bool

	mu    sync.Mutex
	timer *time.Timer
	// runMu keeps runs from overlapping.
	runMu sync.Mutex
}

// NewWatcher creates a new Watcher instance.
func NewWatcher(params NewWatcherParams) (Watcher, error) {
	if params.OnChange == nil {
		return nil, ErrNoCallback
	}
	if len(params.Roots) == 0 {
		return nil, ErrNoRoots
	}

	w := &realWatcher{
		fs:       params.FS,
		logger:   params.Logger,
		debounce: params.Debounce,
		onChange: params.OnChange,
		verbose:  params.Verbose,
	}
	if w.fs == nil {
		w.fs = fs.NewFS()
	}
	if w.logger == nil {
		w.logger = logger.NewNoopLogger()
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	for _, root := range params.Roots {
		w.roots = append(w.roots, filepath.Clean(root))
	}
	for _, path := range params.Exclude {
		w.exclude = append(w.exclude, filepath.Clean(path))
	}
	return w, nil
}

// Watch blocks until ctx is cancelled, calling the change callback once per
// burst of events below the watched roots.
func (w *realWatcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateWatcher, err)
	}
	defer func() { _ = watcher.Close() }()

	watched := 0
	for _, root := range w.roots {
		ok, err := w.fs.IsDir(root)
		if err != nil || !ok {
			w.logger.Logf("Not watching %s: directory not found", root)
			continue
		}
		if err := w.addRecursively(watcher, root); err != nil {
			return err
		}
		watched++
	}
	if watched == 0 {
		return ErrNoRoots
	}
	w.logger.Logf("Watching %s for changes", strings.Join(w.roots, ", "))

	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return ErrEventsClosed
			}
			if w.excluded(event.Name) {
				continue
			}
			w.verbosePrint("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Create) {
				if isDir, err := w.fs.IsDir(event.Name); err == nil && isDir {
					if err := w.addRecursively(watcher, event.Name); err != nil {
						w.logger.Errorf("%v", err)
					}
				}
			}

			w.schedule(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return ErrEventsClosed
			}
			w.logger.Errorf("Watcher error: %v", err)
		}
	}
}

// schedule restarts the debounce timer.
func (w *realWatcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.runMu.Lock()
		defer w.runMu.Unlock()

		if ctx.Err() != nil {
			return
		}
		w.logger.Logf("Changes detected, staging again")
		if err := w.onChange(ctx); err != nil && !errors.Is(err, context.Canceled) {
			w.logger.Errorf("Staging failed: %v", err)
		}
	})
}

// stop cancels a pending run and waits for the current one to finish.
func (w *realWatcher) stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.runMu.Lock()
	defer w.runMu.Unlock()
}

func (w *realWatcher) addRecursively(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.excluded(path) {
			w.verbosePrint("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		w.verbosePrint("Adding watcher for: %s", path)
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrAddWatch, path, err)
		}
		return nil
	})
}

// excluded reports whether path is one of the excluded paths or below one.
func (w *realWatcher) excluded(path string) bool {
	path = filepath.Clean(path)
	for _, ex := range w.exclude {
		if path == ex || strings.HasPrefix(path, ex+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *realWatcher) verbosePrint(msg string, args ...interface{}) {
	if w.verbose {
		w.logger.Logf(msg, args...)
	}
}
