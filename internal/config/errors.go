package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoTarget is returned when the analyze command receives neither a
	// URL argument nor a PDF path.
	ErrNoTarget = errors.New("no target specified: provide a site URL or use --from-pdf")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConflictingInputs is returned when both a URL and a PDF are given
	// for the same analysis.
	ErrConflictingInputs = errors.New("conflicting inputs: provide either a site URL or --from-pdf, not both")

	// ErrProfileNotFound is returned when no profile file exists at the
	// explicit or default locations.
	ErrProfileNotFound = errors.New("profile file not found: run 'adsappeal init' to create one")

	// ErrNoLegalName is returned when the profile lacks the company legal
	// name, which the appeal and the output filenames both require.
	ErrNoLegalName = errors.New("profile is missing legal_name")
)
