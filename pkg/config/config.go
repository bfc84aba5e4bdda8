// Package config provides configuration management functionality for the hstage application.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Environment variables overriding the configuration file.
const (
	EnvRoot = "HSTAGE_ROOT"
	EnvDest = "HSTAGE_DEST"
)

// Config represents the application configuration.
type Config struct {
	Root             string `yaml:"root"`
	SourceDir        string `yaml:"source_dir"`
	HeaderExt        string `yaml:"header_ext"`
	LegacyIncludeDir string `yaml:"legacy_include_dir"`
	LegacyPrefix     string `yaml:"legacy_prefix"`
	Anchor           string `yaml:"anchor"`
	LibDir           string `yaml:"lib_dir"`
	LibPattern       string `yaml:"lib_pattern"`
	DocDir           string `yaml:"doc_dir"`
	DocPattern       string `yaml:"doc_pattern"`
	DestDir          string `yaml:"dest_dir"`
	LogFile          string `yaml:"log_file"`
}

// Resolve returns p joined to Root unless it is already absolute.
func (c Config) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Root, p)
}

// SourcePath is the header tree.
func (c Config) SourcePath() string { return c.Resolve(c.SourceDir) }

// LegacyIncludePath is the directory holding the legacy stubs.
func (c Config) LegacyIncludePath() string { return c.Resolve(c.LegacyIncludeDir) }

// LibPath is the prebuilt library tree.
func (c Config) LibPath() string { return c.Resolve(c.LibDir) }

// DocPath is the generated documentation tree.
func (c Config) DocPath() string { return c.Resolve(c.DocDir) }

// DestPath is the staging tree.
func (c Config) DestPath() string { return c.Resolve(c.DestDir) }

// LogPath is the run log.
func (c Config) LogPath() string { return c.Resolve(c.LogFile) }

// ApplyEnv overrides Root and DestDir from the environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvRoot); ok && strings.TrimSpace(v) != "" {
		c.Root = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvDest); ok && strings.TrimSpace(v) != "" {
		c.DestDir = strings.TrimSpace(v)
	}
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"root", c.Root},
		{"source_dir", c.SourceDir},
		{"header_ext", c.HeaderExt},
		{"legacy_include_dir", c.LegacyIncludeDir},
		{"legacy_prefix", c.LegacyPrefix},
		{"anchor", c.Anchor},
		{"lib_dir", c.LibDir},
		{"lib_pattern", c.LibPattern},
		{"doc_dir", c.DocDir},
		{"doc_pattern", c.DocPattern},
		{"dest_dir", c.DestDir},
		{"log_file", c.LogFile},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s", ErrFieldEmpty, r.field)
		}
	}

	for _, pattern := range []string{c.LibPattern, c.DocPattern} {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
	}

	// The destination is wiped before every run, it must not hold any input.
	dest := c.DestPath()
	for _, input := range []string{c.Root, c.SourcePath(), c.LegacyIncludePath(), c.LibPath(), c.DocPath()} {
		if within(filepath.Clean(input), dest) {
			return fmt.Errorf("%w: %s contains %s", ErrDestOverlapsInput, dest, input)
		}
	}
	if within(dest, c.SourcePath()) {
		return fmt.Errorf("%w: %s is inside %s", ErrDestOverlapsInput, dest, c.SourcePath())
	}
	if within(c.LogPath(), dest) {
		return fmt.Errorf("%w: %s", ErrLogInsideDest, c.LogPath())
	}

	return nil
}

// within reports whether path is base or below it.
func within(path, base string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
