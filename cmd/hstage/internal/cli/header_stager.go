package cli

import (
	"context"
	"io"
	"os"

	"github.com/lerenn/hstage/pkg/config"
	"github.com/lerenn/hstage/pkg/dependencies"
	headerstager "github.com/lerenn/hstage/pkg/header-stager"
	"github.com/lerenn/hstage/pkg/logger"
	"github.com/lerenn/hstage/pkg/needlist"
	"github.com/lerenn/hstage/pkg/stager"
)

// Console is where log lines are echoed unless Quiet is set.
func Console() io.Writer {
	if Quiet {
		return nil
	}
	return os.Stdout
}

// NewConsoleLogger returns a logger for commands that do not write a run log.
func NewConsoleLogger() logger.Logger {
	if Quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger(os.Stderr)
}

// NewLoader creates the need-list loader configured by cfg.
func NewLoader(cfg config.Config, log logger.Logger) needlist.Loader {
	return needlist.NewLoader(needlist.NewLoaderParams{
		Logger:  log,
		Prefix:  cfg.LegacyPrefix,
		Anchor:  cfg.Anchor,
		Verbose: Verbose,
	})
}

// NewHeaderStager creates a HeaderStager writing to runLog.
func NewHeaderStager(cfg config.Config, runLog logger.RunLogger) (headerstager.HeaderStager, error) {
	deps := dependencies.New()
	return headerstager.NewHeaderStager(headerstager.NewHeaderStagerParams{
		Dependencies: deps.
			WithLogger(runLog).
			WithLoader(NewLoader(cfg, runLog)).
			WithStager(stager.NewStager(stager.NewStagerParams{
				FS:        deps.FS,
				Logger:    runLog,
				HeaderExt: cfg.HeaderExt,
				Verbose:   Verbose,
			})),
		Config:  cfg,
		Verbose: Verbose,
	})
}

// RunOnce opens a fresh run log and performs one staging run.
func RunOnce(ctx context.Context, cfg config.Config) (headerstager.Result, error) {
	runLog, err := logger.OpenRunLog(cfg.LogPath(), Console())
	if err != nil {
		return headerstager.Result{}, err
	}
	defer func() { _ = runLog.Close() }()

	hs, err := NewHeaderStager(cfg, runLog)
	if err != nil {
		return headerstager.Result{}, err
	}

	result, err := hs.Run(ctx)
	if err != nil {
		runLog.Errorf("%v", err)
	}
	return result, err
}
