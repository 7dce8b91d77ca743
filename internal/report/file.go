package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/richeeta/r3c0nkthx/internal/model"
)

// StatusAbsent is rendered when the reachability probe produced no status.
const StatusAbsent = "unknown"

// FileWriter appends plain-text report blocks to a shared output file.
// The file is opened in append mode and never truncated, so repeated runs
// accumulate results.
//
// Design decision: every append (open, write the whole block, close) runs
// under an explicit mutex. Workers complete concurrently and OS-level write
// buffering is not a serialization guarantee; without the lock two domains'
// blocks could interleave line by line.
type FileWriter struct {
	path string

	// patterns fixes the output order of pattern hit lines.
	patterns []string

	mu sync.Mutex
}

// NewFileWriter creates a FileWriter appending to the given path.
// The file is created lazily on first write.
func NewFileWriter(path string, patterns []string) *FileWriter {
	return &FileWriter{
		path:     path,
		patterns: patterns,
	}
}

// Write appends one report block. A write failure is fatal for this
// domain's file output only; the caller decides whether to surface it.
func (w *FileWriter) Write(report *model.DomainReport) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s | Wayback URLs: %d | HTTP Status Code: %s\n",
		report.Domain, report.WaybackCount, formatStatus(report)))
	for _, hit := range report.Patterns.NonZero(w.patterns) {
		sb.WriteString(fmt.Sprintf(" - %s URLs: [%d]\n", hit.Pattern, hit.Count))
	}

	if _, err := f.WriteString(sb.String()); err != nil {
		_ = f.Close() //nolint:errcheck // Best effort cleanup after a failed write
		return fmt.Errorf("failed to append to output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}

// formatStatus renders the status code or the absent marker.
func formatStatus(report *model.DomainReport) string {
	if !report.HasStatus() {
		return StatusAbsent
	}
	return strconv.Itoa(report.HTTPStatus)
}
