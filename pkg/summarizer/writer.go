package summarizer

import (
	"fmt"
	"io"
)

// Writer writes formatted summaries to an io.Writer.
type Writer struct {
	formatter Formatter
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter) *Writer {
	return &Writer{
		formatter: formatter,
	}
}

// Write formats the summary and writes it to w.
func (wr *Writer) Write(w io.Writer, summary *Summary) error {
	if _, err := fmt.Fprint(w, wr.formatter.Format(summary)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
