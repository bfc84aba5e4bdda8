package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TimestampLayout is the layout of the start and end banners.
const TimestampLayout = "2006-01-02 15:04:05"

// RunLog writes every line to a log file and duplicates it to the console.
// It is opened once at process start and closed when the process exits.
type RunLog struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	buf     *bufio.Writer
	console io.Writer
	started time.Time
}

// OpenRunLog truncates or creates the log file at path. A nil console disables the
// console copy; the file is always written.
func OpenRunLog(path string, console io.Writer) (*RunLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenLogFile, err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenLogFile, err)
	}

	return &RunLog{
		path:    path,
		file:    file,
		buf:     bufio.NewWriter(file),
		console: console,
		started: time.Now(),
	}, nil
}

// Logf writes a formatted line to the log file and the console.
func (l *RunLog) Logf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...) + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}
	_, _ = l.buf.WriteString(line)
	if l.console != nil {
		_, _ = io.WriteString(l.console, line)
	}
}

// Errorf writes a formatted line with ErrorPrefix.
func (l *RunLog) Errorf(format string, args ...interface{}) {
	l.Logf(ErrorPrefix+format, args...)
}

// Path returns the location of the log file.
func (l *RunLog) Path() string {
	return l.path
}

// Started returns the time the log was opened.
func (l *RunLog) Started() time.Time {
	return l.started
}

// Sync flushes buffered lines to the log file.
func (l *RunLog) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return ErrLogClosed
	}
	if err := l.buf.Flush(); err != nil {
		return err
	}
	return l.file.Sync()
}

// Close flushes and closes the log file. Lines logged afterwards are dropped.
func (l *RunLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	flushErr := l.buf.Flush()
	closeErr := l.file.Close()
	l.file = nil
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
