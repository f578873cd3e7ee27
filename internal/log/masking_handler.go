package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***MASKED***"

// sensitiveKeys contains attribute keys whose values are always masked,
// regardless of content.
var sensitiveKeys = map[string]bool{
	"tax_id":   true,
	"cnpj":     true,
	"email":    true,
	"phone":    true,
	"telefone": true,
}

// identifierPatterns match values that embed personal identifiers:
// formatted or bare CNPJs, email addresses and Brazilian phone numbers.
var identifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b`),
	regexp.MustCompile(`\b\d{14}\b`),
	regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
	regexp.MustCompile(`\(?\d{2}\)?\s?\d{4,5}-\d{4}`),
}

// MaskingHandler is a slog.Handler that sanitizes attribute values before
// delegating to an inner handler.
//
// Design decision: We mask inside the attribute value rather than dropping
// the attribute so the log line keeps its shape for debugging; only the
// identifier itself disappears.
type MaskingHandler struct {
	inner slog.Handler
}

// NewMaskingHandler wraps the given handler with identifier masking.
func NewMaskingHandler(inner slog.Handler) *MaskingHandler {
	return &MaskingHandler{inner: inner}
}

// NewLogger builds the application logger: a text handler on the given
// writer, wrapped with masking. Verbose enables debug-level output;
// otherwise only warnings and errors are logged.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewMaskingHandler(handler))
}

// Enabled reports whether the inner handler handles records at the level.
func (h *MaskingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle sanitizes the record's attributes and delegates to the inner
// handler.
func (h *MaskingHandler) Handle(ctx context.Context, record slog.Record) error {
	sanitized := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		sanitized.AddAttrs(maskAttr(attr))
		return true
	})
	return h.inner.Handle(ctx, sanitized)
}

// WithAttrs returns a handler whose inner handler carries the sanitized
// attributes.
func (h *MaskingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		masked[i] = maskAttr(attr)
	}
	return &MaskingHandler{inner: h.inner.WithAttrs(masked)}
}

// WithGroup returns a handler with the group applied to the inner handler.
func (h *MaskingHandler) WithGroup(name string) slog.Handler {
	return &MaskingHandler{inner: h.inner.WithGroup(name)}
}

// maskAttr sanitizes a single attribute.
func maskAttr(attr slog.Attr) slog.Attr {
	if sensitiveKeys[strings.ToLower(attr.Key)] {
		return slog.String(attr.Key, MaskValue)
	}

	if attr.Value.Kind() == slog.KindString {
		return slog.String(attr.Key, maskIdentifiers(attr.Value.String()))
	}

	return attr
}

// maskIdentifiers replaces every embedded identifier in the value.
func maskIdentifiers(value string) string {
	for _, pattern := range identifierPatterns {
		value = pattern.ReplaceAllString(value, MaskValue)
	}
	return value
}
