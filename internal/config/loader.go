package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".r3c0nkthx"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML configuration. All fields are optional; CLI
// flags override anything set here.
type File struct {
	// Concurrency overrides the default worker pool size.
	Concurrency int `yaml:"concurrency"`

	// Proxy is the default proxy forwarded to curl.
	Proxy string `yaml:"proxy"`

	// Output is the default append-mode result file path.
	Output string `yaml:"output"`

	// ExtraPatterns are appended to the builtin sensitive-pattern set.
	ExtraPatterns []string `yaml:"extra_patterns"`
}

// LoadConfigFile loads run defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers decide
// whether that is fatal based on whether the path was explicitly given.
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
// 1. If configPath is specified, use it directly
// 2. Look for .r3c0nkthx in the current directory
// 3. Look for .r3c0nkthx in the XDG config directory
// 4. Look for .r3c0nkthx in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), DefaultConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Apply copies the file's values onto the config wherever the config still
// holds its default/zero value. CLI flags therefore win over file contents.
func (f *File) Apply(cfg *Config) {
	if f.Concurrency > 0 && cfg.Concurrency == DefaultConcurrency {
		cfg.Concurrency = f.Concurrency
	}
	if f.Proxy != "" && cfg.Proxy == "" {
		cfg.Proxy = f.Proxy
	}
	if f.Output != "" && cfg.OutputFile == "" {
		cfg.OutputFile = f.Output
	}
	cfg.Patterns = append(cfg.Patterns, f.ExtraPatterns...)
}
