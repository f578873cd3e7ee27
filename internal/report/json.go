package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/adsappeal/adsappeal/internal/model"
)

// JSONWriter outputs records and analyses in JSON format.
// This format is the downloadable FormData file and is also used by the
// analyze command's --json flag for tool integration.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
//
// HTML escaping is disabled so the Portuguese boilerplate survives
// round-tripping as readable UTF-8 text.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// The FormData download is always pretty-printed for human review.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the appeal record in JSON format.
func (w *JSONWriter) Write(record *model.AppealRecord) (int, error) {
	return w.writeJSON(record)
}

// WriteAnalysis outputs the compliance report in JSON format.
func (w *JSONWriter) WriteAnalysis(report *model.ComplianceReport) (int, error) {
	return w.writeJSON(report)
}

// writeJSON marshals the given value and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}
