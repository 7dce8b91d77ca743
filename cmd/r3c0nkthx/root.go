// Package main provides the entry point for the r3c0nkthx CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/richeeta/r3c0nkthx/internal/config"
	"github.com/richeeta/r3c0nkthx/internal/executil"
	"github.com/richeeta/r3c0nkthx/internal/input"
	logpkg "github.com/richeeta/r3c0nkthx/internal/log"
	"github.com/richeeta/r3c0nkthx/internal/model"
	"github.com/richeeta/r3c0nkthx/internal/pipeline"
	"github.com/richeeta/r3c0nkthx/internal/report"
	"github.com/richeeta/r3c0nkthx/internal/wayback"
)

// NewRootCmd creates the root command for r3c0nkthx.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "r3c0nkthx <input>",
		Short: "Wayback Machine presence and HTTP status recon for domains",
		Long: `r3c0nkthx assesses a domain's presence in the Wayback Machine and checks
its current HTTP status, flagging archived URLs that point at sensitive
directories or parameters.

The input is a file with one domain per line, a single domain, or a
comma-separated domain list. A comma anywhere in the input always wins
over a file of the same name.

The actual crawling and fetching is delegated to external tools:
waybackurls for the archive lookup and curl for the status probe. Both
must be on PATH; waybackurls is installed automatically when missing.

Examples:
  # Process a file with domains
  r3c0nkthx domains.txt

  # Process a single domain
  r3c0nkthx example.com

  # Process multiple domains (comma-separated)
  r3c0nkthx "example.com,example.org"

  # Route curl through a proxy
  r3c0nkthx example.com --proxy http://127.0.0.1:8080

  # Append results to a file
  r3c0nkthx domains.txt -o output.txt

  # Echo every raw archived URL and probe response
  r3c0nkthx example.com -v`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runRootCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("output", "o", "",
		"Append results to the specified file")
	cmd.Flags().String("proxy", "",
		"Proxy for curl requests, forwarded verbatim")
	cmd.Flags().CountP("verbose", "v",
		"Verbose output (-v echoes raw tool output; -vv is reserved)")
	cmd.Flags().IntP("batch", "b", config.DefaultConcurrency,
		"Number of domains processed concurrently")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .r3c0nkthx in cwd, XDG config dir, or home)")
	cmd.Flags().String("markdown", "",
		"Write a run-level Markdown summary report to the specified file")
	cmd.Flags().String("json", "",
		"Write a run-level JSON report to the specified file")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())
	cmd.Version = getVersion()

	return cmd
}

// Execute runs the root command.
// The process exits non-zero only for setup failures (bad flags, invalid
// config, missing external tools); per-domain failures never change the
// exit status.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd executes the scan run.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := logpkg.NewSecureLogger(os.Stderr, cfg.Verbose())
	slog.SetDefault(logger)

	// Handle interrupt signals for graceful shutdown. Results already
	// appended to the output file survive an interrupted run.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("received shutdown signal, cancelling...")
		cancel()
	}()

	runner := executil.NewExecRunner()

	// Fail fast before any domain is processed if the external tools
	// are missing and cannot be installed.
	preflight := executil.NewPreflight(executil.PathLocator{}, runner,
		executil.WithPreflightLogger(logger),
		executil.WithPreflightProgress(os.Stderr),
	)
	if err := preflight.Check(ctx); err != nil {
		return err
	}

	return runScan(ctx, cfg, logger, runner, color.Output)
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flags win over file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Patterns = wayback.DefaultPatterns()

	if len(args) > 0 {
		cfg.RawInput = args[0]
	}

	var err error

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Proxy, err = cmd.Flags().GetString("proxy")
	if err != nil {
		return nil, err
	}

	cfg.Verbosity, err = cmd.Flags().GetCount("verbose")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownFile, err = cmd.Flags().GetString("markdown")
	if err != nil {
		return nil, err
	}

	cfg.JSONFile, err = cmd.Flags().GetString("json")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load run defaults from the config file.
	// An explicitly specified path must exist; an implicit search that
	// finds nothing is fine.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// runScan parses the input, runs the worker pool over all domains, and
// writes per-domain and run-level reports. The runner and console writer
// are injected so tests can substitute fakes.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger, runner executil.Runner, console io.Writer) error {
	domains := cfg.Domains
	if len(domains) == 0 {
		var kind input.Kind
		var err error
		domains, kind, err = input.Parse(cfg.RawInput)
		if err != nil {
			return err
		}
		logger.Debug("input classified",
			"kind", kind.String(),
			"domains", len(domains),
		)
	}

	writers := []report.Writer{report.NewConsoleWriter(console, cfg.Patterns)}
	if cfg.OutputFile != "" {
		writers = append(writers, report.NewFileWriter(cfg.OutputFile, cfg.Patterns))
	}
	mw := report.NewMultiWriter(writers...)

	bar := progressbar.NewOptions(len(domains),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Processing domains"),
		progressbar.OptionClearOnFinish(),
	)

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(runner, pipeline.DefaultPipelineConfig{
				Proxy:      cfg.Proxy,
				Patterns:   cfg.Patterns,
				Verbose:    cfg.Verbose(),
				EchoWriter: console,
				Logger:     logger,
			})
		},
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)

	// The callback fires from worker goroutines; the mutex keeps the
	// progress bar and the report block from interleaving on the console.
	var mu sync.Mutex
	results, err := bp.ProcessBatchWithCallback(ctx, domains,
		func(r *model.DomainReport, _ int) {
			mu.Lock()
			defer mu.Unlock()

			if writeErr := mw.Write(r); writeErr != nil {
				// Fatal for this domain's output only; the run continues.
				logger.Error("failed to write report",
					"domain", r.Domain,
					"error", writeErr,
				)
			}
			_ = bar.Add(1) //nolint:errcheck // Progress display is best effort
		})

	_ = bar.Finish() //nolint:errcheck // Progress display is best effort

	if err != nil {
		return err
	}

	return writeRunReports(cfg, results, logger)
}

// writeRunReports writes the optional run-level Markdown and JSON reports.
func writeRunReports(cfg *config.Config, results []*model.DomainReport, logger *slog.Logger) error {
	if cfg.MarkdownFile != "" {
		if err := writeRunReport(cfg.MarkdownFile, func(f *os.File) error {
			return report.NewMarkdownWriter(f, cfg.Patterns).WriteAll(results)
		}); err != nil {
			return fmt.Errorf("failed to write markdown report: %w", err)
		}
		logger.Debug("markdown report written", "path", cfg.MarkdownFile)
	}

	if cfg.JSONFile != "" {
		if err := writeRunReport(cfg.JSONFile, func(f *os.File) error {
			return report.NewJSONWriter(f).WriteAll(results)
		}); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		logger.Debug("JSON report written", "path", cfg.JSONFile)
	}

	return nil
}

// writeRunReport creates the report file (and parent directories) with
// owner-only permissions and hands it to the writer function.
func writeRunReport(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close() //nolint:errcheck // Best effort cleanup after a failed write
		return err
	}

	return f.Close()
}
