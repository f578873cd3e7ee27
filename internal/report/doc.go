// Package report provides output generation for compliance analyses and
// assembled appeal packets.
//
// This package contains writers for different output formats:
//   - TextWriter: The numbered copy/paste form block for the appeal
//   - JSONWriter: Structured JSON output for file download
//   - PDFWriter: The paginated printable appeal document
//   - SimpleWriter / MarkdownWriter: Human-readable analysis reports
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) to follow the single responsibility
// principle. This allows adding new output formats without modifying
// the core data structures.
//
// All appeal writers read from the same immutable AppealRecord, so their
// content can only differ in formatting, never in facts.
package report
