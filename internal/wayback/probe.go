package wayback

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/richeeta/r3c0nkthx/internal/executil"
)

// Prober determines the current HTTP status of a domain with a single curl
// invocation. The response body is discarded; curl is configured to print
// only the numeric status code.
//
// A failed or unparseable probe yields status zero (absent) with a logged
// warning. There is exactly one attempt per domain, no retry.
type Prober struct {
	runner executil.Runner
	logger *slog.Logger
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithProbeLogger sets a custom logger for the prober.
func WithProbeLogger(logger *slog.Logger) ProberOption {
	return func(p *Prober) {
		p.logger = logger
	}
}

// NewProber creates a prober using the given runner.
func NewProber(runner executil.Runner, opts ...ProberOption) *Prober {
	p := &Prober{runner: runner}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Probe returns the HTTP status code for the domain, or zero when the probe
// fails. If proxy is non-empty it is forwarded verbatim to curl's --proxy
// option; malformed proxy strings are curl's to reject, not ours.
// The raw tool output is returned alongside for verbose echoing.
func (p *Prober) Probe(ctx context.Context, domain, proxy string) (status int, raw string) {
	args := []string{"-s", "-o", os.DevNull, "-w", "%{http_code}", domain}
	if proxy != "" {
		args = append(args, "--proxy", proxy)
	}

	result, err := p.runner.Run(ctx, executil.CurlTool, args...)
	if err != nil {
		p.logger.Warn("curl invocation failed",
			"domain", domain,
			"error", err,
		)
		return 0, ""
	}

	raw = result.Stdout
	if !result.Success() {
		p.logger.Warn("curl exited with error",
			"domain", domain,
			"exitCode", result.ExitCode,
		)
		return 0, raw
	}

	status, err = strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.logger.Warn("curl returned a non-numeric status",
			"domain", domain,
			"output", strings.TrimSpace(raw),
		)
		return 0, raw
	}

	return status, raw
}
