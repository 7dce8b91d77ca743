package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/richeeta/r3c0nkthx/internal/config"
	"github.com/richeeta/r3c0nkthx/internal/executil"
	logpkg "github.com/richeeta/r3c0nkthx/internal/log"
)

// scriptedRunner simulates the two external tools.
type scriptedRunner struct {
	results map[string]*executil.Result
	errs    map[string]error
}

func (s *scriptedRunner) Run(_ context.Context, name string, _ ...string) (*executil.Result, error) {
	if err := s.errs[name]; err != nil {
		return nil, err
	}
	if result := s.results[name]; result != nil {
		return result, nil
	}
	return &executil.Result{}, nil
}

// TestNewRootCmd verifies command wiring.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"output", "proxy", "verbose", "batch", "config", "markdown", "json"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("missing flag %q", name)
			}
		}
	})

	t.Run("has init and version subcommands", func(t *testing.T) {
		t.Parallel()

		names := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			names[sub.Name()] = true
		}
		if !names["init"] || !names["version"] {
			t.Errorf("missing subcommands, got %v", names)
		}
	})
}

// TestBuildConfig verifies flag parsing and config file precedence.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.RawInput != "example.com" {
			t.Errorf("RawInput = %q", cfg.RawInput)
		}
		if cfg.Concurrency != config.DefaultConcurrency {
			t.Errorf("Concurrency = %d", cfg.Concurrency)
		}
		if len(cfg.Patterns) != 9 {
			t.Errorf("expected 9 builtin patterns, got %d", len(cfg.Patterns))
		}
		if cfg.Verbose() {
			t.Error("expected non-verbose by default")
		}
	})

	t.Run("verbosity counts stacked flags", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-vv"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Verbosity != 2 {
			t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
		}
		// -vv is reserved: it must behave identically to -v.
		if !cfg.Verbose() {
			t.Error("expected Verbose() to be true for -vv")
		}
	})

	t.Run("config file fills defaults, flags win", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".r3c0nkthx")
		content := "concurrency: 3\nproxy: http://file-proxy:1\nextra_patterns: [\"/debug/\"]\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-c", path, "--proxy", "http://flag-proxy:2"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Concurrency != 3 {
			t.Errorf("Concurrency = %d, want 3 from file", cfg.Concurrency)
		}
		if cfg.Proxy != "http://flag-proxy:2" {
			t.Errorf("Proxy = %q, want flag value", cfg.Proxy)
		}
		if cfg.Patterns[len(cfg.Patterns)-1] != "/debug/" {
			t.Errorf("expected /debug/ appended, got %v", cfg.Patterns)
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-c", filepath.Join(t.TempDir(), "nope.yml")}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd, []string{"example.com"}); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})
}

// testConfig returns a minimal run config for runScan tests.
func testConfig(raw string) *config.Config {
	cfg := config.NewConfig()
	cfg.RawInput = raw
	cfg.Patterns = []string{"/api/", "/admin/", "password="}
	return cfg
}

// TestRunScan exercises the full dispatch path with scripted tools.
func TestRunScan(t *testing.T) {
	t.Parallel()

	healthyRunner := func() *scriptedRunner {
		return &scriptedRunner{results: map[string]*executil.Result{
			executil.WaybackTool: {Stdout: "https://x.com/api/v1\nhttps://x.com/home\n"},
			executil.CurlTool:    {Stdout: "200"},
		}}
	}

	t.Run("comma list produces one block per domain", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig("a.com,b.com")
		outPath := filepath.Join(t.TempDir(), "out.txt")
		cfg.OutputFile = outPath

		var console bytes.Buffer
		logger := logpkg.NewSecureLogger(&bytes.Buffer{}, false)

		if err := runScan(context.Background(), cfg, logger, healthyRunner(), &console); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}

		content := string(data)
		for _, domain := range []string{"a.com", "b.com"} {
			if !strings.Contains(content, domain+" | Wayback URLs: 2 | HTTP Status Code: 200") {
				t.Errorf("output file missing block for %s:\n%s", domain, content)
			}
		}
		if !strings.Contains(content, " - /api/ URLs: [1]") {
			t.Errorf("output file missing pattern line:\n%s", content)
		}
	})

	t.Run("run-level reports are written", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg := testConfig("a.com")
		cfg.MarkdownFile = filepath.Join(dir, "report.md")
		cfg.JSONFile = filepath.Join(dir, "nested", "report.json")

		var console bytes.Buffer
		logger := logpkg.NewSecureLogger(&bytes.Buffer{}, false)

		if err := runScan(context.Background(), cfg, logger, healthyRunner(), &console); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		md, err := os.ReadFile(cfg.MarkdownFile)
		if err != nil {
			t.Fatalf("markdown report missing: %v", err)
		}
		if !strings.Contains(string(md), "`a.com`") {
			t.Errorf("markdown report missing domain:\n%s", md)
		}

		if _, err := os.Stat(cfg.JSONFile); err != nil {
			t.Errorf("JSON report missing (nested dir not created?): %v", err)
		}
	})

	t.Run("tool failures still produce a report per domain", func(t *testing.T) {
		t.Parallel()

		runner := &scriptedRunner{
			results: map[string]*executil.Result{
				executil.CurlTool: {Stdout: "403"},
			},
			errs: map[string]error{
				executil.WaybackTool: errors.New("exec: not found"),
			},
		}

		cfg := testConfig("a.com,b.com")
		outPath := filepath.Join(t.TempDir(), "out.txt")
		cfg.OutputFile = outPath

		var console bytes.Buffer
		logger := logpkg.NewSecureLogger(&bytes.Buffer{}, false)

		if err := runScan(context.Background(), cfg, logger, runner, &console); err != nil {
			t.Fatalf("per-domain failures must not fail the run: %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}

		content := string(data)
		blocks := strings.Count(content, "| Wayback URLs: 0 | HTTP Status Code: 403")
		if blocks != 2 {
			t.Errorf("expected 2 degraded blocks, got %d:\n%s", blocks, content)
		}
	})

	t.Run("verbose echoes raw tool output to the console", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig("a.com")
		cfg.Verbosity = 1

		var console bytes.Buffer
		logger := logpkg.NewSecureLogger(&bytes.Buffer{}, false)

		if err := runScan(context.Background(), cfg, logger, healthyRunner(), &console); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := console.String()
		if !strings.Contains(out, "Wayback URL: https://x.com/api/v1") {
			t.Errorf("missing raw URL echo:\n%s", out)
		}
		if !strings.Contains(out, "HTTP response: 200") {
			t.Errorf("missing raw probe echo:\n%s", out)
		}
	})

	t.Run("file input expands to one block per line", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		listPath := filepath.Join(dir, "domains.txt")
		if err := os.WriteFile(listPath, []byte("a.com\n\nb.com\n"), 0600); err != nil {
			t.Fatal(err)
		}

		cfg := testConfig(listPath)
		outPath := filepath.Join(dir, "out.txt")
		cfg.OutputFile = outPath

		var console bytes.Buffer
		logger := logpkg.NewSecureLogger(&bytes.Buffer{}, false)

		if err := runScan(context.Background(), cfg, logger, healthyRunner(), &console); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Count(string(data), "| Wayback URLs:"); got != 2 {
			t.Errorf("expected 2 blocks, got %d", got)
		}
	})
}
