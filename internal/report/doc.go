// Package report provides result output for completed domain scans.
//
// Per-domain writers:
//   - ConsoleWriter: color-coded terminal output
//   - FileWriter: plain-text append-mode file shared by all workers
//
// Run-level writers consume the full result set after all domains finish:
//   - MarkdownWriter: aggregate Markdown summary
//   - JSONWriter: aggregate JSON document
//
// Design decision: report writing is separated from the data structures in
// the model package so new output formats can be added without touching the
// pipeline.
package report
