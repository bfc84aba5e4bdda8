// Package headerstager runs a complete staging pass: it rebuilds the staging tree
// from the header sources, the legacy need-list and the prebuilt artifacts, and
// archives the run log into it.
package headerstager

import (
	"context"
	"fmt"
	"time"

	"github.com/lerenn/hstage/pkg/config"
	"github.com/lerenn/hstage/pkg/dependencies"
	"github.com/lerenn/hstage/pkg/needlist"
	"github.com/lerenn/hstage/pkg/stager"
)

// Layout of the staging tree below the destination root.
const (
	LibDir          = "lib"
	DocDir          = "doc"
	DescriptionFile = "description.txt"
)

// ToolName appears in the start and completion banners.
const ToolName = "hstage"

// HeaderStager rebuilds a staging tree.
type HeaderStager interface {
	// Run wipes the destination and stages headers, proxies, libraries and docs into it.
	Run(ctx context.Context) (Result, error)
	// Needs returns the need set read from the legacy include directory.
	Needs() (needlist.NeedSet, error)
}

// Result summarizes a staging run.
type Result struct {
	stager.Result
	Libraries []string
	Docs      []string
	Started   time.Time
	Finished  time.Time
}

// NewHeaderStagerParams contains parameters for creating a new HeaderStager instance.
type NewHeaderStagerParams struct {
	Dependencies *dependencies.Dependencies
	Config       config.Config
	Verbose      bool
}

type realHeaderStager struct {
	deps    *dependencies.Dependencies
	config  config.Config
	verbose bool
	now     func() time.Time
}

// NewHeaderStager creates a new HeaderStager instance.
func NewHeaderStager(params NewHeaderStagerParams) (HeaderStager, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDependencies, err)
	}

	return &realHeaderStager{
		deps:    deps,
		config:  params.Config,
		verbose: params.Verbose,
		now:     time.Now,
	}, nil
}

// Needs returns the need set read from the legacy include directory.
func (h *realHeaderStager) Needs() (needlist.NeedSet, error) {
	needs, err := h.deps.Loader.Load(h.config.LegacyIncludePath())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadNeeds, err)
	}
	return needs, nil
}

// VerbosePrint logs a formatted message when verbose output is enabled.
func (h *realHeaderStager) VerbosePrint(msg string, args ...interface{}) {
	if h.verbose {
		h.deps.Logger.Logf(msg, args...)
	}
}
