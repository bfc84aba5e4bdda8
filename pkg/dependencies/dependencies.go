// Package dependencies provides a centralized dependency container for the hstage application.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/hstage/pkg/fs"
	"github.com/lerenn/hstage/pkg/logger"
	"github.com/lerenn/hstage/pkg/needlist"
	"github.com/lerenn/hstage/pkg/stager"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrLoaderMissing = errors.New("need-list loader dependency is required but not set")
	ErrStagerMissing = errors.New("stager dependency is required but not set")
)

// Dependencies holds the components shared by a staging run.
type Dependencies struct {
	FS     fs.FS
	Logger logger.RunLogger
	Loader needlist.Loader
	Stager stager.Stager
}

// New creates a new Dependencies instance with a real filesystem.
func New() *Dependencies {
	return &Dependencies{
		FS: fs.NewFS(),
		// Logger, Loader and Stager depend on the run configuration
		// and are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithLogger sets the run logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.RunLogger) *Dependencies {
	d.Logger = logger
	return d
}

// WithLoader sets the need-list loader and returns the instance for chaining.
func (d *Dependencies) WithLoader(loader needlist.Loader) *Dependencies {
	d.Loader = loader
	return d
}

// WithStager sets the stager and returns the instance for chaining.
func (d *Dependencies) WithStager(s stager.Stager) *Dependencies {
	d.Stager = s
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Loader, ErrLoaderMissing},
		{d.Stager, ErrStagerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
