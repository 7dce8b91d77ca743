package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/richeeta/r3c0nkthx/internal/executil"
	"github.com/richeeta/r3c0nkthx/internal/model"
	"github.com/richeeta/r3c0nkthx/internal/wayback"
)

// WaybackStep enumerates archived URLs for the domain and records both the
// raw URL list and its count on the report. Lookup failures degrade to an
// empty list inside the wayback client; this step never fails the pipeline.
type WaybackStep struct {
	client *wayback.Client

	// verbose echoes every raw archived URL to echoWriter as obtained.
	// Under concurrency the echoes interleave arbitrarily with other
	// domains' output; that is accepted behavior.
	verbose    bool
	echoWriter io.Writer
}

// WaybackStepOption configures a WaybackStep.
type WaybackStepOption func(*WaybackStep)

// WithWaybackVerbose enables raw URL echoing to the given writer.
func WithWaybackVerbose(verbose bool, w io.Writer) WaybackStepOption {
	return func(s *WaybackStep) {
		s.verbose = verbose
		s.echoWriter = w
	}
}

// NewWaybackStep creates the archive lookup step.
func NewWaybackStep(client *wayback.Client, opts ...WaybackStepOption) *WaybackStep {
	s := &WaybackStep{client: client}

	for _, opt := range opts {
		opt(s)
	}

	if s.echoWriter == nil {
		s.echoWriter = io.Discard
	}

	return s
}

// Name returns the step name.
func (s *WaybackStep) Name() string {
	return "wayback_lookup"
}

// Do executes the archive lookup.
func (s *WaybackStep) Do(ctx context.Context, report *model.DomainReport) error {
	urls := s.client.Lookup(ctx, report.Domain)
	report.WaybackURLs = urls
	report.WaybackCount = len(urls)

	if s.verbose {
		var sb strings.Builder
		for _, url := range urls {
			sb.WriteString("Wayback URL: ")
			sb.WriteString(url)
			sb.WriteString("\n")
		}
		if sb.Len() > 0 {
			if _, err := io.WriteString(s.echoWriter, sb.String()); err != nil {
				return fmt.Errorf("failed to echo wayback URLs: %w", err)
			}
		}
	}

	return nil
}

// ProbeStep performs the reachability probe. It has no data dependency on
// WaybackStep; the sequential ordering within one pipeline run is a
// simplification, not a requirement.
type ProbeStep struct {
	prober *wayback.Prober

	// proxy is forwarded verbatim to the probe tool.
	proxy string

	verbose    bool
	echoWriter io.Writer
}

// ProbeStepOption configures a ProbeStep.
type ProbeStepOption func(*ProbeStep)

// WithProbeProxy forwards the proxy address to the probe tool.
func WithProbeProxy(proxy string) ProbeStepOption {
	return func(s *ProbeStep) {
		s.proxy = proxy
	}
}

// WithProbeVerbose enables raw probe output echoing to the given writer.
func WithProbeVerbose(verbose bool, w io.Writer) ProbeStepOption {
	return func(s *ProbeStep) {
		s.verbose = verbose
		s.echoWriter = w
	}
}

// NewProbeStep creates the reachability probe step.
func NewProbeStep(prober *wayback.Prober, opts ...ProbeStepOption) *ProbeStep {
	s := &ProbeStep{prober: prober}

	for _, opt := range opts {
		opt(s)
	}

	if s.echoWriter == nil {
		s.echoWriter = io.Discard
	}

	return s
}

// Name returns the step name.
func (s *ProbeStep) Name() string {
	return "http_probe"
}

// Do executes the probe.
func (s *ProbeStep) Do(ctx context.Context, report *model.DomainReport) error {
	status, raw := s.prober.Probe(ctx, report.Domain, s.proxy)
	report.HTTPStatus = status

	if s.verbose && raw != "" {
		if _, err := fmt.Fprintf(s.echoWriter, "HTTP response: %s\n", raw); err != nil {
			return fmt.Errorf("failed to echo probe output: %w", err)
		}
	}

	return nil
}

// PatternStep scans the archived URLs collected by WaybackStep for the
// sensitive substring patterns. It must run after the lookup step.
type PatternStep struct {
	patterns []string
}

// NewPatternStep creates the pattern scan step over the given pattern set.
func NewPatternStep(patterns []string) *PatternStep {
	return &PatternStep{patterns: patterns}
}

// Name returns the step name.
func (s *PatternStep) Name() string {
	return "pattern_scan"
}

// Do executes the scan against the URLs already on the report.
func (s *PatternStep) Do(_ context.Context, report *model.DomainReport) error {
	report.Patterns = wayback.Scan(report.WaybackURLs, s.patterns)
	return nil
}

// DefaultPipelineConfig carries the knobs for DefaultPipeline.
type DefaultPipelineConfig struct {
	// Proxy is forwarded verbatim to the probe tool. Empty disables it.
	Proxy string

	// Patterns is the sensitive-substring set for the scan step.
	Patterns []string

	// Verbose echoes raw tool output to EchoWriter.
	Verbose bool

	// EchoWriter receives verbose echoes; nil means discard.
	EchoWriter io.Writer

	// Logger is used by the pipeline and all steps.
	Logger *slog.Logger
}

// DefaultPipeline assembles the standard three-step scan pipeline:
// archive lookup, reachability probe, pattern scan.
func DefaultPipeline(runner executil.Runner, cfg DefaultPipelineConfig) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := wayback.NewClient(runner, wayback.WithLookupLogger(logger))
	prober := wayback.NewProber(runner, wayback.WithProbeLogger(logger))

	p := New(
		WithLogger(logger),
		WithContinueOnError(true),
	)
	p.AddSteps(
		NewWaybackStep(client, WithWaybackVerbose(cfg.Verbose, cfg.EchoWriter)),
		NewProbeStep(prober,
			WithProbeProxy(cfg.Proxy),
			WithProbeVerbose(cfg.Verbose, cfg.EchoWriter),
		),
		NewPatternStep(cfg.Patterns),
	)

	return p
}
