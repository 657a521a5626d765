package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".policyscan"

// File is the on-disk YAML configuration.
// Every field is optional; unset fields leave the corresponding Config
// default in place.
type File struct {
	// OutputDir overrides the report output directory.
	OutputDir string `yaml:"output_dir"`

	// Format overrides the default report format.
	Format string `yaml:"format"`

	// Concurrency overrides the batch concurrency.
	Concurrency int `yaml:"concurrency"`

	// HistoryDir overrides the history database directory.
	HistoryDir string `yaml:"history_dir"`

	// DisableHistory turns off export-history recording.
	DisableHistory bool `yaml:"disable_history"`
}

// LoadConfigFile loads configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound; callers decide
// whether that matters based on whether the path was explicitly given.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .policyscan in the current directory
//  3. Look for .policyscan in the user's home directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Apply overlays the file's set fields onto the config.
// CLI flags are applied after this, so the precedence is
// defaults < file < flags.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.OutputDir != "" {
		cfg.OutputDir = f.OutputDir
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
	if f.Concurrency > 0 {
		cfg.Concurrency = f.Concurrency
	}
	if f.HistoryDir != "" {
		cfg.DBDir = f.HistoryDir
	}
	if f.DisableHistory {
		cfg.DisableHistory = true
	}
}
