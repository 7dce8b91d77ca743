package model

import (
	"time"
)

// PatternHit pairs a pattern key with the number of archived URLs that
// contain it. Used for deterministic, order-preserving report output.
type PatternHit struct {
	// Pattern is the literal substring that was searched for.
	Pattern string `json:"pattern"`

	// Count is the number of URLs containing the pattern at least once.
	Count int `json:"count"`
}

// PatternCounts maps a pattern key to the number of archived URLs containing
// it. A fresh zero-initialized instance is created per scan; instances are
// never shared between domains.
type PatternCounts map[string]int

// NonZero returns the hits with a count greater than zero, ordered by the
// given pattern key order. Patterns absent from the map are treated as zero.
//
// Design decision: ordering is driven by the caller-supplied key list rather
// than map iteration so that console and file output are deterministic for
// identical input.
func (c PatternCounts) NonZero(order []string) []PatternHit {
	hits := make([]PatternHit, 0, len(order))
	for _, pattern := range order {
		if n := c[pattern]; n > 0 {
			hits = append(hits, PatternHit{Pattern: pattern, Count: n})
		}
	}
	return hits
}

// Total returns the sum of all pattern counts.
func (c PatternCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// DomainReport is the aggregated result for a single domain.
// It is constructed by the pipeline, populated by the individual steps,
// and handed to the reporters once all steps have completed.
//
// Design decision: We use a single flat struct rather than per-step result
// types because every consumer (console, file, markdown, JSON) needs the
// whole picture. Failed sub-operations degrade fields to their zero values
// instead of omitting the report.
type DomainReport struct {
	// Domain is the scanned domain exactly as parsed from the input.
	Domain string `json:"domain"`

	// DateScanned is the timestamp when the pipeline started for this domain.
	DateScanned time.Time `json:"date_scanned"`

	// WaybackURLs holds the raw archive-lookup output, one URL per entry,
	// in the order the external tool emitted them. May contain blank
	// entries from trailing newlines; consumers must tolerate them.
	// Not serialized: the URL list can be enormous and the JSON report
	// only needs the aggregate view.
	WaybackURLs []string `json:"-"`

	// WaybackCount is the number of archived URLs found for the domain.
	WaybackCount int `json:"wayback_count"`

	// HTTPStatus is the current HTTP status code reported by the probe.
	// Zero means the probe failed or returned unparseable output.
	HTTPStatus int `json:"http_status"`

	// Patterns counts archived URLs matching each sensitive pattern.
	Patterns PatternCounts `json:"patterns"`

	// PerformedSteps lists the pipeline steps executed for this domain,
	// in execution order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Warnings holds human-readable messages for sub-operations that
	// degraded to empty results. The report is still produced.
	Warnings []string `json:"warnings,omitempty"`
}

// NewDomainReport creates an empty report for the given domain.
func NewDomainReport(domain string) *DomainReport {
	return &DomainReport{
		Domain:      domain,
		DateScanned: time.Now(),
		Patterns:    make(PatternCounts),
	}
}

// HasStatus reports whether the reachability probe produced a status code.
// HTTP status codes are always >= 100, so zero doubles as the absent value.
func (r *DomainReport) HasStatus() bool {
	return r.HTTPStatus > 0
}

// AddWarning records a degraded sub-operation on the report.
func (r *DomainReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
