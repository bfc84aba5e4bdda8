package main

import (
	"github.com/lerenn/hstage/cmd/hstage/internal/cli"
	"github.com/spf13/cobra"
)

func createStageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stage",
		Short: "Rebuild the staging tree",
		Long: `Wipe the staging directory and rebuild it from the header sources, the
legacy need-list, the prebuilt libraries and the documentation.

Examples:
  hstage stage
  hstage stage --root ../qsint --dest /tmp/qsint`,
		Args: cobra.NoArgs,
		RunE: runStage,
	}
}

func runStage(cmd *cobra.Command, _ []string) error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}

	_, err = cli.RunOnce(cmd.Context(), cfg)
	return err
}
