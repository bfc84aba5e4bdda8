// Package logger provides logging functionality for the hstage application.
package logger

import (
	"fmt"
	"io"
	"sync"
)

//go:generate mockgen -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
	// Errorf logs a formatted message at the high-visibility severity.
	Errorf(format string, args ...interface{})
}

// RunLogger is a Logger backed by a file that can be archived once a run completes.
type RunLogger interface {
	Logger
	// Path returns the location of the log file.
	Path() string
	// Sync flushes everything logged so far to the log file.
	Sync() error
}

// ErrorPrefix is prepended to every line logged with Errorf.
const ErrorPrefix = "[ERROR] "

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes lines to w.
type defaultLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDefaultLogger creates a new default logger writing to w.
func NewDefaultLogger(w io.Writer) Logger {
	return &defaultLogger{w: w}
}

// Logf writes a formatted line.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, format+"\n", args...)
}

// Errorf writes a formatted line with ErrorPrefix.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.Logf(ErrorPrefix+format, args...)
}
