// Package log provides a slog.Handler that masks personal identifiers.
//
// The tool handles a business owner's tax ID, phone number and email
// address; none of those belong in log files. The masking handler rewrites
// attribute values that look like such identifiers before delegating to
// the wrapped handler.
package log
