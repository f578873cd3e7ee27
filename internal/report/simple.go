package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/adsappeal/adsappeal/internal/model"
)

// SimpleWriter outputs human-readable compliance analysis text.
// This format is designed for terminal display after "adsappeal analyze".
//
// Design decision: We use plain text with ASCII markers rather than ANSI
// colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether empty finding sections are shown.
	showEmpty bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteAnalysis outputs the compliance report in human-readable format.
func (w *SimpleWriter) WriteAnalysis(report *model.ComplianceReport) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Análise de conformidade\n")
	if report.URL != "" {
		fmt.Fprintf(&sb, "Site: %s\n", report.URL)
	}
	fmt.Fprintf(&sb, "Data: %s\n", report.AnalyzedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(&sb, "Score: %d/100\n", report.Score)

	w.writeSection(&sb, "Conformes", "[ok]", report.Confirmations)
	w.writeSection(&sb, "Avisos", "[!]", report.Warnings)
	w.writeSection(&sb, "Riscos", "[x]", report.Risks)

	return io.WriteString(w.output, sb.String())
}

// writeSection writes one finding tier with its marker, skipping empty
// tiers unless showEmpty is set.
func (w *SimpleWriter) writeSection(sb *strings.Builder, label, marker string, findings []string) {
	if len(findings) == 0 && !w.showEmpty {
		return
	}

	fmt.Fprintf(sb, "\n%s:\n", label)
	if len(findings) == 0 {
		sb.WriteString("  (nenhum)\n")
		return
	}
	for _, finding := range findings {
		fmt.Fprintf(sb, "  %s %s\n", marker, finding)
	}
}
