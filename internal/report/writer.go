package report

import (
	"github.com/richeeta/r3c0nkthx/internal/model"
)

// Writer outputs a single completed domain report.
//
// Implementations must be safe for concurrent use: reports arrive from
// worker goroutines in completion order, not input order.
type Writer interface {
	// Write outputs one domain report to the configured destination.
	Write(report *model.DomainReport) error
}

// MultiWriter fans one report out to several Writers, typically the console
// plus the append file. It stops on the first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
func (m *MultiWriter) Write(report *model.DomainReport) error {
	for _, w := range m.writers {
		if err := w.Write(report); err != nil {
			return err
		}
	}
	return nil
}
