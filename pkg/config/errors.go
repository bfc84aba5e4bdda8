package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrConfigFileRead  = errors.New("failed to read config file")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrFieldEmpty        = errors.New("configuration field cannot be empty")
	ErrInvalidPattern    = errors.New("invalid artifact pattern")
	ErrDestOverlapsInput = errors.New("dest_dir would delete an input directory")
	ErrLogInsideDest     = errors.New("log_file cannot be inside dest_dir")
)
