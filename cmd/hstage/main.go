// Package main provides the command-line interface for the hstage application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lerenn/hstage/cmd/hstage/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hstage",
		Short: "hstage - header library stager",
		Long: `Stage a C++ header library for distribution: copy the headers into group
directories, write class-named proxy headers for the legacy need-list, and
collect the prebuilt libraries and documentation.

Running hstage without a subcommand is the same as running hstage stage.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStage,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress console output, the log file is still written")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&cli.RootDir, "root", "", "Project root holding the sources")
	rootCmd.PersistentFlags().StringVar(&cli.DestDir, "dest", "", "Staging directory, relative to the root")

	// Add subcommands
	rootCmd.AddCommand(
		createStageCmd(),
		createNeedsCmd(),
		createWatchCmd(),
		createInitCmd(),
		createVersionCmd(),
	)

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
