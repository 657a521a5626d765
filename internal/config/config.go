package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Report formats.
const (
	// FormatPDF is the default paginated PDF report.
	FormatPDF = "pdf"

	// FormatMarkdown is the GitHub Flavored Markdown report.
	FormatMarkdown = "markdown"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "policyscan"

	// DefaultOutputDir is where report files land unless overridden.
	// The current directory matches the download-into-cwd expectation of
	// a report tool.
	DefaultOutputDir = "."

	// DefaultConcurrency of 4 concurrent exports balances throughput with
	// memory usage; each export holds a whole document in memory while
	// composing.
	DefaultConcurrency = 4

	// DefaultHistoryLimit is how many records the history command shows.
	DefaultHistoryLimit = 20
)

// Config holds all configuration options for policyscan.
// This struct is populated from defaults, the optional config file, and CLI
// flags, then passed through the application via dependency injection.
//
// Design decision: We use a single flat struct instead of nested structs for
// simplicity. The number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// Inputs is the list of analysis JSON files to export.
	Inputs []string

	// OutputDir is the directory report files are written to.
	OutputDir string

	// Format selects the report format: FormatPDF or FormatMarkdown.
	Format string

	// Concurrency is the number of concurrent exports in batch mode.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// DisableHistory turns off export-history recording.
	DisableHistory bool

	// DBDir is the directory for the history database.
	// Defaults to the XDG data directory.
	DBDir string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .policyscan in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor function instead of relying on zero
// values because several defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		OutputDir:   DefaultOutputDir,
		Format:      FormatPDF,
		Concurrency: DefaultConcurrency,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for policyscan.
// On Linux: ~/.local/share/policyscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for policyscan.
// On Linux: ~/.config/policyscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid, returning a specific error
// describing the first problem found.
//
// Design decision: We validate once after CLI parsing, before any export
// begins, to fail fast with a clear message instead of surfacing problems
// mid-batch.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	if c.Format != FormatPDF && c.Format != FormatMarkdown {
		return ErrInvalidFormat
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	return nil
}
