package main

import (
	"fmt"

	"github.com/lerenn/hstage/cmd/hstage/internal/cli"
	"github.com/spf13/cobra"
)

func createNeedsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "needs",
		Short: "List the headers that get a proxy",
		Long: `Print the sorted need-list read from the legacy include directory, one
"<group>/<header>" entry per line. Nothing is written.

Examples:
  hstage needs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}

			needs, err := cli.NewLoader(cfg, cli.NewConsoleLogger()).Load(cfg.LegacyIncludePath())
			if err != nil {
				return fmt.Errorf("failed to load need-list: %w", err)
			}

			for _, path := range needs.Sorted() {
				if path == "" {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}
