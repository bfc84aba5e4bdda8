package headerstager

import "errors"

// Error definitions for headerstager package.
var (
	ErrDependencies = errors.New("invalid header stager dependencies")
	ErrCleanDest    = errors.New("failed to clean destination directory")
	ErrLoadNeeds    = errors.New("failed to load need-list")
	ErrStageHeaders = errors.New("failed to stage headers")
	ErrStageLibs    = errors.New("failed to stage libraries")
	ErrStageDocs    = errors.New("failed to stage documentation")
	ErrSyncLog      = errors.New("failed to flush run log")
	ErrArchiveLog   = errors.New("failed to archive run log")
)
