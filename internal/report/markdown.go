package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/richeeta/r3c0nkthx/internal/model"
)

// MarkdownWriter outputs a run-level summary of all domain results in
// GitHub Flavored Markdown. It is a run-level writer, not a per-domain
// Writer: it consumes the whole result set once the run finishes.
//
// Design decision: the nao1215/markdown library gives type-safe table and
// list generation instead of hand-assembled strings.
type MarkdownWriter struct {
	output io.Writer

	// patterns fixes the row order of pattern hit listings.
	patterns []string
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, patterns []string) *MarkdownWriter {
	return &MarkdownWriter{
		output:   output,
		patterns: patterns,
	}
}

// WriteAll renders every domain report into one Markdown document.
func (w *MarkdownWriter) WriteAll(reports []*model.DomainReport) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("r3c0nkthx Report")
	md.PlainText("")
	md.PlainTextf("Generated: %s", time.Now().Format("2006-01-02 15:04:05 MST"))
	md.PlainText("")

	w.writeSummaryTable(md, reports)
	w.writePatternSections(md, reports)

	return md.Build()
}

// writeSummaryTable writes the per-domain overview table.
func (w *MarkdownWriter) writeSummaryTable(md *markdown.Markdown, reports []*model.DomainReport) {
	md.H2("Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			"`" + r.Domain + "`",
			strconv.Itoa(r.WaybackCount),
			formatStatus(r),
			strconv.Itoa(r.Patterns.Total()),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Domain", "Wayback URLs", "HTTP Status", "Pattern Hits"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePatternSections writes one section per domain that had pattern hits.
func (w *MarkdownWriter) writePatternSections(md *markdown.Markdown, reports []*model.DomainReport) {
	md.H2("Interesting Directories and Parameters")
	md.PlainText("")

	any := false
	for _, r := range reports {
		hits := r.Patterns.NonZero(w.patterns)
		if len(hits) == 0 {
			continue
		}
		any = true

		md.H3(r.Domain)
		items := make([]string, 0, len(hits))
		for _, hit := range hits {
			items = append(items, "`"+hit.Pattern+"`: "+strconv.Itoa(hit.Count)+" URLs")
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if !any {
		md.PlainText("No sensitive patterns matched any archived URL.")
		md.PlainText("")
	}
}
