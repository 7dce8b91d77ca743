// Package executil abstracts external tool invocation behind a Runner
// interface so that the archive lookup and reachability probe can be tested
// with fakes instead of spawning real processes. It also provides the
// startup preflight that verifies required tools are installed.
package executil
