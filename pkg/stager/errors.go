package stager

import "errors"

// Error definitions for stager package.
var (
	// Source tree errors.
	ErrSourceDirMissing = errors.New("header source directory does not exist")
	ErrWalkSource       = errors.New("failed to walk header source directory")
	ErrReadHeader       = errors.New("failed to read header")
	ErrHeaderDecode     = errors.New("header is not valid UTF-8")

	// Destination tree errors.
	ErrCreateGroupDir = errors.New("failed to create group directory")
	ErrCopyHeader     = errors.New("failed to copy header")
	ErrWriteProxy     = errors.New("failed to write proxy header")

	// Artifact errors.
	ErrBadPattern        = errors.New("invalid artifact pattern")
	ErrCreateArtifactDir = errors.New("failed to create artifact directory")
	ErrWalkArtifacts     = errors.New("failed to walk artifact directory")
	ErrCopyArtifact      = errors.New("failed to copy artifact")
)
