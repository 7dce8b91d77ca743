package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/richeeta/r3c0nkthx/internal/model"
)

// JSONWriter outputs the run-level result set as a single JSON document
// for tool integration. Like MarkdownWriter it consumes the whole result
// set after the run completes.
type JSONWriter struct {
	output io.Writer
}

// jsonReport is the top-level JSON document shape.
type jsonReport struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Domains     []*model.DomainReport `json:"domains"`
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

// WriteAll encodes every domain report into one indented JSON document.
func (w *JSONWriter) WriteAll(reports []*model.DomainReport) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport{
		GeneratedAt: time.Now(),
		Domains:     reports,
	})
}
