package logger

import "errors"

// Error definitions for logger package.
var (
	// ErrOpenLogFile is returned when the run log file cannot be created.
	ErrOpenLogFile = errors.New("failed to open log file")
	// ErrLogClosed is returned when syncing a closed run log.
	ErrLogClosed = errors.New("log is closed")
)
