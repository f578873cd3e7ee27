package report

import (
	"io"

	"github.com/adsappeal/adsappeal/internal/model"
)

// Writer defines the interface for appeal packet output.
// Implementations write the assembled record in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or buffers
// with the same API.
type Writer interface {
	// Write outputs the appeal record to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(record *model.AppealRecord) (int, error)
}

// AnalysisWriter defines the interface for compliance report output.
// It is separate from Writer because the analyze command produces reports
// before any appeal record exists.
type AnalysisWriter interface {
	// WriteAnalysis outputs the compliance report to the configured
	// destination.
	WriteAnalysis(report *model.ComplianceReport) (int, error)
}

// MultiWriter writes an appeal record to multiple Writers simultaneously.
// This is used to emit the JSON download, the printable PDF and the
// copy/paste text block from a single Build result.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write records, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the record to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(record *model.AppealRecord) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(record)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
