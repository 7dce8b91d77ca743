package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Result holds the outcome of a completed external tool invocation.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// ExitCode is the process exit status. Zero means success.
	ExitCode int
}

// Success reports whether the tool exited cleanly.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes an external tool and captures its output.
//
// Design decision: the lookup and probe components depend on this interface
// rather than on os/exec directly. Tests substitute a fake Runner; the rest
// of the codebase never spawns a process itself.
type Runner interface {
	// Run executes the named tool with the given arguments and blocks until
	// it exits. A non-zero exit status is reported via Result.ExitCode, not
	// as an error; the error return is reserved for spawn failures and
	// context cancellation.
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// ExecRunner runs tools as real subprocesses via os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (e *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Tool names are fixed constants

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return result, nil
}
