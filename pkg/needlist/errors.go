package needlist

import "errors"

// Error definitions for needlist package.
var (
	// ErrReadLegacyDir is returned when the legacy include directory exists but cannot be listed.
	ErrReadLegacyDir = errors.New("failed to read legacy include directory")
	// ErrReadStub is returned when a stub file cannot be read.
	ErrReadStub = errors.New("failed to read legacy stub file")
	// ErrStubDecode is returned when a stub file is not valid UTF-8.
	ErrStubDecode = errors.New("legacy stub file is not valid UTF-8")
)
