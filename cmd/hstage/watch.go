package main

import (
	"context"

	"github.com/lerenn/hstage/cmd/hstage/internal/cli"
	"github.com/lerenn/hstage/pkg/watch"
	"github.com/spf13/cobra"
)

var debounce = watch.DefaultDebounce

func createWatchCmd() *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Stage again whenever the sources change",
		Long: `Run a staging pass, then watch the header sources, the legacy include
directory, the libraries and the documentation, and stage again after each
burst of changes. Stop with Ctrl+C.

Examples:
  hstage watch
  hstage watch --debounce 2s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if _, err := cli.RunOnce(ctx, cfg); err != nil {
				// Keep watching, the next change may fix the sources
				cli.NewConsoleLogger().Errorf("Staging failed: %v", err)
			}

			watcher, err := watch.NewWatcher(watch.NewWatcherParams{
				Logger:   cli.NewConsoleLogger(),
				Roots:    []string{cfg.SourcePath(), cfg.LegacyIncludePath(), cfg.LibPath(), cfg.DocPath()},
				Exclude:  []string{cfg.DestPath(), cfg.LogPath()},
				Debounce: debounce,
				OnChange: func(ctx context.Context) error {
					_, err := cli.RunOnce(ctx, cfg)
					return err
				},
				Verbose: cli.Verbose,
			})
			if err != nil {
				return err
			}

			return watcher.Watch(ctx)
		},
	}

	watchCmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before staging again")

	return watchCmd
}
