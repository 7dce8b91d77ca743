// Package model defines the data structures shared across the scan pipeline,
// reporters, and persistence-free output layer. The central type is
// DomainReport, produced exactly once per input domain.
package model
