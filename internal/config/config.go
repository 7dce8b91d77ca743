package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultConcurrency is the fixed worker pool size. The external tools
	// are expensive to spawn; an unbounded pool risks resource exhaustion.
	// At peak each worker holds two live subprocesses (lookup + probe), so
	// the worst case is DefaultConcurrency * 2 concurrent processes.
	DefaultConcurrency = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "r3c0nkthx"
)

// Config holds all run options for r3c0nkthx.
// It is populated from CLI flags (optionally pre-seeded from the config
// file) and passed through the application via dependency injection rather
// than global state.
//
// Design decision: a single flat struct. The option count is small and
// nesting would add complexity without benefit.
type Config struct {
	// RawInput is the positional argument: a file path, a single domain,
	// or a comma-separated domain list. Classification happens in the
	// input package; comma always wins over file existence.
	RawInput string

	// Domains is the parsed domain list derived from RawInput.
	Domains []string

	// Proxy is forwarded verbatim to curl's --proxy option. It is not
	// validated here; a malformed proxy string is curl's to reject.
	Proxy string

	// OutputFile is the append-mode plain-text result file.
	// Empty means console output only.
	OutputFile string

	// MarkdownFile is the path for the run-level Markdown summary report.
	// Empty disables it.
	MarkdownFile string

	// JSONFile is the path for the run-level JSON report. Empty disables it.
	JSONFile string

	// Concurrency is the worker pool size for domain processing.
	Concurrency int

	// Verbosity is the count of -v flags. Level 1 echoes every raw archived
	// URL and raw probe output. Level 2 is reserved and currently behaves
	// identically to level 1.
	Verbosity int

	// ConfigFilePath is an explicit configuration file path. If empty, the
	// tool searches the current directory, the XDG config directory, and
	// the home directory for DefaultConfigFile.
	ConfigFilePath string

	// Patterns is the sensitive-substring set applied to archived URLs.
	// It is the builtin set plus any extras from the config file.
	Patterns []string
}

// NewConfig creates a Config with default values.
// Defaults are documented here rather than scattered at points of use.
func NewConfig() *Config {
	return &Config{
		Concurrency: DefaultConcurrency,
	}
}

// Verbose reports whether raw tool output should be echoed to the console.
// Both -v and -vv enable it; the extra level is an explicit no-op
// distinction kept for future use.
func (c *Config) Verbose() bool {
	return c.Verbosity >= 1
}

// XDGConfigDir returns the XDG config directory for r3c0nkthx.
// On Linux: ~/.config/r3c0nkthx
// On macOS: ~/Library/Application Support/r3c0nkthx
// On Windows: %APPDATA%\r3c0nkthx
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It is called once after CLI parsing, before the preflight and any domain
// processing, and returns the first problem found.
func (c *Config) Validate() error {
	if c.RawInput == "" && len(c.Domains) == 0 {
		return ErrNoInput
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if len(c.Patterns) == 0 {
		return ErrNoPatterns
	}

	return nil
}
