package executil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"github.com/briandowns/spinner"
)

// Required external tools.
const (
	// CurlTool performs the reachability probe.
	CurlTool = "curl"

	// WaybackTool enumerates archived URLs for a domain.
	WaybackTool = "waybackurls"

	// waybackInstallPackage is the go module used to auto-install the
	// wayback tool when it is missing from PATH.
	waybackInstallPackage = "github.com/tomnomnom/waybackurls@latest"
)

// Preflight errors. These abort the run before any domain is processed.
var (
	// ErrCurlMissing is returned when curl is not on PATH. Curl cannot be
	// auto-installed portably, so the operator must install it manually.
	ErrCurlMissing = errors.New("curl is not installed: install it manually and try again")

	// ErrWaybackMissing is returned when waybackurls is not on PATH and
	// automatic installation failed.
	ErrWaybackMissing = errors.New("waybackurls is not installed and could not be installed automatically")
)

// Locator resolves a tool name to an executable path.
// It mirrors exec.LookPath and exists so preflight logic can be tested
// without depending on the host's PATH contents.
type Locator interface {
	LookPath(name string) (string, error)
}

// PathLocator resolves tools against the real PATH.
type PathLocator struct{}

// LookPath implements Locator via exec.LookPath.
func (PathLocator) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Preflight verifies that the required external tools are available before
// any domain is processed, attempting to install waybackurls if missing.
type Preflight struct {
	locator Locator
	runner  Runner
	logger  *slog.Logger

	// progress receives the install spinner output. Defaults to io.Discard
	// so tests stay silent; the CLI points it at stderr.
	progress io.Writer
}

// PreflightOption configures a Preflight.
type PreflightOption func(*Preflight)

// WithPreflightLogger sets a custom logger.
func WithPreflightLogger(logger *slog.Logger) PreflightOption {
	return func(p *Preflight) {
		p.logger = logger
	}
}

// WithPreflightProgress directs spinner output to the given writer.
func WithPreflightProgress(w io.Writer) PreflightOption {
	return func(p *Preflight) {
		p.progress = w
	}
}

// NewPreflight creates a Preflight using the given locator and runner.
func NewPreflight(locator Locator, runner Runner, opts ...PreflightOption) *Preflight {
	p := &Preflight{
		locator:  locator,
		runner:   runner,
		progress: io.Discard,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Check verifies both required tools, installing waybackurls when possible.
// Any error returned here is fatal: the process must exit non-zero without
// processing a single domain.
func (p *Preflight) Check(ctx context.Context) error {
	if _, err := p.locator.LookPath(CurlTool); err != nil {
		return ErrCurlMissing
	}

	if _, err := p.locator.LookPath(WaybackTool); err == nil {
		return nil
	}

	p.logger.Warn("waybackurls is not installed, attempting installation",
		"package", waybackInstallPackage,
	)

	if err := p.installWayback(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrWaybackMissing, err)
	}

	// The go toolchain exits zero even for some degenerate states, so
	// re-resolve the binary rather than trusting the exit code alone.
	if _, err := p.locator.LookPath(WaybackTool); err != nil {
		return fmt.Errorf("%w: installed binary not found on PATH (is GOPATH/bin on PATH?)", ErrWaybackMissing)
	}

	return nil
}

// installWayback runs "go install" for the wayback tool with a spinner so
// the operator sees that startup is doing work, not hanging.
func (p *Preflight) installWayback(ctx context.Context) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(p.progress))
	s.Suffix = " installing waybackurls..."
	s.Start()
	defer s.Stop()

	result, err := p.runner.Run(ctx, "go", "install", waybackInstallPackage)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("go install exited with status %d: %s", result.ExitCode, result.Stderr)
	}

	return nil
}
