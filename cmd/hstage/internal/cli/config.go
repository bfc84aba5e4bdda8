// Package cli provides common configuration and utility functions for the hstage CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/lerenn/hstage/pkg/config"
	"github.com/lerenn/hstage/pkg/fs"
)

var (
	// Quiet suppresses console output. The log file is still written.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// RootDir overrides the project root.
	RootDir string
	// DestDir overrides the staging directory.
	DestDir string
)

// GetConfigPath returns the config file path that would be used by LoadConfig.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigFile
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(fs.NewFS(), GetConfigPath())
}

// LoadConfig loads the configuration, falling back to the defaults when no file exists.
// Values from a .env file and from the --root and --dest flags override the file.
func LoadConfig() (config.Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	if err := exportFlags(); err != nil {
		return config.Config{}, err
	}

	return LoadConfigFrom(NewConfigManager())
}

// LoadConfigFrom loads the configuration through manager, falling back to the defaults.
func LoadConfigFrom(manager config.Manager) (config.Config, error) {
	cfg, err := manager.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration from %s: %w", manager.GetConfigPath(), err)
	}
	return cfg, nil
}

// exportFlags makes the path flags win over the environment and the config file.
func exportFlags() error {
	if RootDir != "" {
		root, err := filepath.Abs(RootDir)
		if err != nil {
			return fmt.Errorf("invalid --root %q: %w", RootDir, err)
		}
		if err := os.Setenv(config.EnvRoot, root); err != nil {
			return err
		}
	}
	if DestDir != "" {
		if err := os.Setenv(config.EnvDest, DestDir); err != nil {
			return err
		}
	}
	return nil
}
