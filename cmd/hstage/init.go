package main

import (
	"fmt"

	"github.com/lerenn/hstage/cmd/hstage/internal/cli"
	"github.com/lerenn/hstage/configs"
	"github.com/lerenn/hstage/pkg/fs"
	"github.com/spf13/cobra"
)

var force bool

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write a default hstage.yaml",
		Long: `Write the default configuration to the config file path so it can be edited.

Flags:
  --force   Overwrite an existing configuration file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := cli.GetConfigPath()
			fsInstance := fs.NewFS()

			exists, err := fsInstance.Exists(path)
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", path)
			}

			if err := fsInstance.WriteFileAtomic(path, configs.DefaultConfigYAML, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			}
			return nil
		},
	}

	// Add flags
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return initCmd
}
