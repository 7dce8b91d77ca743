package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/richeeta/r3c0nkthx/internal/model"
)

// Interesting-volume highlight range for the archive URL count.
// Below 5 is likely noise or no archive presence; the upper bound is a
// heuristic carried over unchanged, counts above it are left unstyled.
const (
	highlightMin = 5
	highlightMax = 9999
)

// ConsoleWriter renders domain reports for the terminal with color-coded
// emphasis: bold domain, highlighted archive counts in the interesting
// range, and HTTP status tiering.
type ConsoleWriter struct {
	out io.Writer

	// patterns fixes the output order of pattern hit lines.
	patterns []string

	// mu serializes whole report blocks so concurrent workers never
	// interleave lines on the terminal.
	mu sync.Mutex

	bold   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

// NewConsoleWriter creates a ConsoleWriter for the given destination.
// The pattern list controls the order of the per-pattern hit lines.
func NewConsoleWriter(out io.Writer, patterns []string) *ConsoleWriter {
	return &ConsoleWriter{
		out:      out,
		patterns: patterns,
		bold:     color.New(color.Bold),
		green:    color.New(color.FgGreen),
		yellow:   color.New(color.FgYellow),
		red:      color.New(color.FgRed),
	}
}

// Write renders one report block.
func (w *ConsoleWriter) Write(report *model.DomainReport) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s | Wayback URLs: %s | HTTP Status Code: %s\n",
		w.bold.Sprint(report.Domain),
		w.renderCount(report.WaybackCount),
		w.renderStatus(report),
	))

	sb.WriteString("Wayback URLs with Interesting Directories or Parameters:\n")
	for _, hit := range report.Patterns.NonZero(w.patterns) {
		sb.WriteString(fmt.Sprintf(" - %s URLs: [%d]\n", hit.Pattern, hit.Count))
	}

	_, err := io.WriteString(w.out, sb.String())
	return err
}

// renderCount highlights archive counts in the moderate-to-healthy range.
func (w *ConsoleWriter) renderCount(count int) string {
	if count >= highlightMin && count <= highlightMax {
		return w.green.Sprint(count)
	}
	return strconv.Itoa(count)
}

// renderStatus applies the status tiering: 200 green, redirects and 404
// yellow, client/server error codes red, anything else (including an
// absent status) unstyled.
func (w *ConsoleWriter) renderStatus(report *model.DomainReport) string {
	if !report.HasStatus() {
		return StatusAbsent
	}

	status := report.HTTPStatus
	switch status {
	case 200:
		return w.green.Sprint(status)
	case 301, 302, 404:
		return w.yellow.Sprint(status)
	case 400, 401, 403, 503:
		return w.red.Sprint(status)
	default:
		return strconv.Itoa(status)
	}
}
