package wayback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/richeeta/r3c0nkthx/internal/executil"
)

// Client enumerates historically archived URLs for a domain by invoking
// the external waybackurls tool.
//
// Failures are logged-and-continue: a broken lookup produces an empty URL
// list, never a fatal error. No timeout is enforced; a hang in the external
// tool blocks the calling worker until the run context is cancelled.
type Client struct {
	runner executil.Runner
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLookupLogger sets a custom logger for the lookup client.
func WithLookupLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a lookup client using the given runner.
func NewClient(runner executil.Runner, opts ...ClientOption) *Client {
	c := &Client{runner: runner}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Lookup returns every archived URL known for the domain, one entry per
// output line of the external tool, preserving its order. The slice may
// contain blank entries from trailing newlines; callers must tolerate them.
// On any failure the result is an empty slice and a warning is logged.
func (c *Client) Lookup(ctx context.Context, domain string) []string {
	result, err := c.runner.Run(ctx, executil.WaybackTool, domain)
	if err != nil {
		c.logger.Warn("waybackurls invocation failed",
			"domain", domain,
			"error", err,
		)
		return []string{}
	}
	if !result.Success() {
		c.logger.Warn("waybackurls exited with error",
			"domain", domain,
			"exitCode", result.ExitCode,
			"stderr", strings.TrimSpace(result.Stderr),
		)
		return []string{}
	}

	out := strings.TrimSpace(result.Stdout)
	if out == "" {
		return []string{}
	}

	return strings.Split(out, "\n")
}
