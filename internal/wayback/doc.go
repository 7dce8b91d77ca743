// Package wayback wraps the two external reconnaissance tools: the archive
// lookup (waybackurls) and the reachability probe (curl). Both degrade to
// empty results on failure instead of aborting the run, and both depend on
// the executil.Runner interface so tests never spawn real processes.
// The package also hosts the sensitive-pattern scanner applied to the
// archived URLs.
package wayback
