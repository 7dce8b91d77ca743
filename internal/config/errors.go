package config

import "errors"

// Configuration validation errors.
// Package-level sentinel errors let callers use errors.Is() while keeping
// human-readable messages.
var (
	// ErrNoInput is returned when no input argument was provided.
	ErrNoInput = errors.New("no input specified: provide a domain, a comma-separated list, or a file path")

	// ErrInvalidConcurrency is returned when the worker pool size is not
	// positive. Zero workers would mean no domain is ever processed.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrNoPatterns is returned when the pattern set is empty. The scanner
	// always runs with at least the builtin patterns; an empty set means
	// the configuration wiring is broken.
	ErrNoPatterns = errors.New("no scan patterns configured")
)
