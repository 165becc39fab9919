package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// TextFormatter formats a Summary as a human-readable plain-text report.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format renders the summary.
func (f *TextFormatter) Format(summary *Summary) string {
	var b strings.Builder

	fmt.Fprintln(&b, l10n.T("--- Batch Summary ---"))
	fmt.Fprintln(&b, l10n.F("Dataset root: %s", summary.DatasetRoot))
	fmt.Fprintln(&b, l10n.F("Output directory: %s", summary.OutputDir))
	fmt.Fprintln(&b, l10n.F("Drives: %d total, %d succeeded, %d skipped, %d failed",
		summary.Total(),
		summary.Count(StatusSuccess),
		summary.Count(StatusSkipped),
		summary.Count(StatusFailed)))

	for _, o := range summary.Outcomes {
		switch o.Status {
		case StatusSuccess:
			fmt.Fprintln(&b, l10n.F("  ok   %s: %s (%d frames)", o.Drive, o.OutputPath, o.FrameCount))
		case StatusSkipped:
			fmt.Fprintln(&b, l10n.F("  skip %s: %s", o.Drive, o.Reason))
		case StatusFailed:
			fmt.Fprintln(&b, l10n.F("  fail %s: %s", o.Drive, o.Reason))
		}
	}

	return b.String()
}

var _ Formatter = (*TextFormatter)(nil)
