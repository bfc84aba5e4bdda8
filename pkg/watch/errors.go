package watch

import "errors"

// Error definitions for watch package.
var (
	ErrNoCallback    = errors.New("watcher needs a change callback")
	ErrNoRoots       = errors.New("no directory to watch")
	ErrCreateWatcher = errors.New("failed to create file watcher")
	ErrAddWatch      = errors.New("failed to watch directory")
	ErrEventsClosed  = errors.New("watcher event channel closed")
)
