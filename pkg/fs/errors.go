package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrNotRegularFile is returned when a copy source is a directory or a device.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrHomeDir is returned when ~ cannot be expanded.
	ErrHomeDir = errors.New("failed to determine home directory")
)
