// Package pipeline executes the per-domain scan as a sequence of steps:
// archive lookup, reachability probe, and pattern scan. Each step receives
// the accumulated DomainReport and degrades to empty results on failure so
// that exactly one report is produced per domain.
//
// Design decision: steps are an interface rather than function values
// because they carry configuration (runner, proxy, verbosity) and a Name()
// for logging. BatchProcessor runs the pipeline over many domains with a
// bounded worker pool built on errgroup.
package pipeline
