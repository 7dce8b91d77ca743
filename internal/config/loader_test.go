package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// TestLoadConfigFile verifies YAML parsing and the not-found sentinel.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads all fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `
concurrency: 5
proxy: http://127.0.0.1:8080
output: results.txt
extra_patterns:
  - /debug/
  - secret=
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.Concurrency != 5 {
			t.Errorf("Concurrency = %d, want 5", cf.Concurrency)
		}
		if cf.Proxy != "http://127.0.0.1:8080" {
			t.Errorf("Proxy = %q", cf.Proxy)
		}
		if cf.Output != "results.txt" {
			t.Errorf("Output = %q", cf.Output)
		}
		if !reflect.DeepEqual(cf.ExtraPatterns, []string{"/debug/", "secret="}) {
			t.Errorf("ExtraPatterns = %v", cf.ExtraPatterns)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("concurrency: [not an int"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile verifies explicit-path handling. The search-path cases
// depend on the host environment and are covered indirectly via the CLI.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte("proxy: x\n"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile = %q, want %q", got, path)
		}
	})

	t.Run("explicit missing path yields empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope.yml")); got != "" {
			t.Errorf("FindConfigFile = %q, want empty", got)
		}
	})
}

// TestFileApply verifies flag-over-file precedence.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults only", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Patterns = []string{"/api/"}

		cf := &File{
			Concurrency:   5,
			Proxy:         "http://proxy:8080",
			Output:        "out.txt",
			ExtraPatterns: []string{"/debug/"},
		}
		cf.Apply(cfg)

		if cfg.Concurrency != 5 {
			t.Errorf("Concurrency = %d, want 5", cfg.Concurrency)
		}
		if cfg.Proxy != "http://proxy:8080" {
			t.Errorf("Proxy = %q", cfg.Proxy)
		}
		if cfg.OutputFile != "out.txt" {
			t.Errorf("OutputFile = %q", cfg.OutputFile)
		}
		if !reflect.DeepEqual(cfg.Patterns, []string{"/api/", "/debug/"}) {
			t.Errorf("Patterns = %v", cfg.Patterns)
		}
	})

	t.Run("explicit flags win over file values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Concurrency = 3 // set via flag, differs from default
		cfg.Proxy = "http://flag-proxy:1"
		cfg.OutputFile = "flag.txt"

		cf := &File{Concurrency: 5, Proxy: "http://file-proxy:2", Output: "file.txt"}
		cf.Apply(cfg)

		if cfg.Concurrency != 3 {
			t.Errorf("Concurrency = %d, want flag value 3", cfg.Concurrency)
		}
		if cfg.Proxy != "http://flag-proxy:1" {
			t.Errorf("Proxy = %q, want flag value", cfg.Proxy)
		}
		if cfg.OutputFile != "flag.txt" {
			t.Errorf("OutputFile = %q, want flag value", cfg.OutputFile)
		}
	})
}
