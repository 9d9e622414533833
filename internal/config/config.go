// Package config loads the optional paradigm configuration file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the file-based defaults for a scan. Command-line flags take
// precedence over every field.
type Config struct {
	Scan ScanConfig `yaml:"scan"`
}

// ScanConfig holds scan defaults.
type ScanConfig struct {
	// Excludes are exclusion substrings or glob patterns applied on top of
	// the built-in skip-list.
	Excludes []string `yaml:"excludes"`

	// SkipDirs are extra directory names to prune, merged into the
	// exclusions.
	SkipDirs []string `yaml:"skip_dirs"`

	// Parallel is the default worker count.
	Parallel int `yaml:"parallel"`

	// Output is a path the JSON report is written to after every scan.
	Output string `yaml:"output"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Parallel: 1,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory, trying paradigm.yaml and
// .paradigm/config.yaml in that order.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "paradigm.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".paradigm", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Excludes returns the configured exclusions with skip-dir names folded in.
func (c *Config) Excludes() []string {
	excludes := make([]string, 0, len(c.Scan.Excludes)+len(c.Scan.SkipDirs))
	excludes = append(excludes, c.Scan.Excludes...)
	excludes = append(excludes, c.Scan.SkipDirs...)

	return excludes
}
