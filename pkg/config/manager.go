package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/hstage/configs"
	"github.com/lerenn/hstage/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// DefaultConfigFile is the configuration file looked up in the working directory.
const DefaultConfigFile = "hstage.yaml"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration file, failing if it is missing.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the configuration file, using the defaults if it is missing.
	GetConfigWithFallback() (Config, error)
	// DefaultConfig returns the embedded default configuration, rooted at the working directory.
	DefaultConfig() Config
	// GetConfigPath returns the embedded config path.
	GetConfigPath() string
}

type realManager struct {
	fs         fs.FS
	configPath string
	lookupEnv  func(string) (string, bool)
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fsInstance fs.FS, configPath string) Manager {
	if fsInstance == nil {
		fsInstance = fs.NewFS()
	}
	return &realManager{
		fs:         fsInstance,
		configPath: configPath,
		lookupEnv:  os.LookupEnv,
	}
}

// GetConfig loads the configuration file, failing if it is missing.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	// Fields missing from the file keep their default value
	config := c.embeddedDefaults()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return c.finalize(config, filepath.Dir(c.configPath))
}

// GetConfigWithFallback loads the configuration file, using the defaults if it is missing.
// A file that exists but cannot be parsed is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return Config{}, err
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return c.finalize(c.embeddedDefaults(), wd)
}

// DefaultConfig returns the embedded default configuration, rooted at the working directory.
func (c *realManager) DefaultConfig() Config {
	config := c.embeddedDefaults()
	if wd, err := os.Getwd(); err == nil {
		config.Root = filepath.Join(wd, config.Root)
	}
	return config
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

func (c *realManager) embeddedDefaults() Config {
	var config Config
	// The embedded file is part of the binary and covered by tests
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		panic(fmt.Sprintf("invalid embedded default configuration: %v", err))
	}
	return config
}

// finalize applies the environment, expands ~, anchors a relative root to baseDir
// and validates the result.
func (c *realManager) finalize(config Config, baseDir string) (Config, error) {
	config.ApplyEnv(c.lookupEnv)

	root, err := c.fs.ExpandPath(config.Root)
	if err != nil {
		return Config{}, err
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(baseDir, root)
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	config.Root = root

	if config.DestDir, err = c.fs.ExpandPath(config.DestDir); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
