package config

import (
	"time"

	"github.com/adsappeal/adsappeal/internal/model"
)

// Default configuration values.
const (
	// DefaultTimeout bounds the single site fetch. Slow shared-hosting
	// sites rarely need more than 15 seconds, and a failed fetch has a
	// clean fallback (the PDF upload path).
	DefaultTimeout = 15 * time.Second

	// DefaultMaxBodySize limits the fetched page size. 5MB is sufficient
	// for any landing page while preventing memory exhaustion from
	// unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024

	// DefaultUserAgent identifies the compliance bot in HTTP requests.
	// Using a descriptive User-Agent is good practice and allows site
	// operators to identify audit traffic in their logs.
	DefaultUserAgent = "Mozilla/5.0 (compatible; SiteComplianceBot/1.0)"

	// DefaultProfileFile is the default profile file name searched for in
	// the current directory.
	DefaultProfileFile = ".adsappeal"

	// AppName is the application name used for XDG directory paths.
	AppName = "adsappeal"
)

// Config holds all configuration options for adsappeal.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// TargetURL is the site to analyze. Mutually exclusive with PDFPath.
	TargetURL string

	// PDFPath is an exported site PDF to analyze instead of fetching.
	PDFPath string

	// Timeout is the site fetch timeout.
	Timeout time.Duration

	// MaxBodySize limits the fetched page size in bytes.
	MaxBodySize int64

	// UserAgent is the HTTP User-Agent header for the fetch.
	UserAgent string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport outputs the analysis as JSON instead of the
	// human-readable report. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport outputs the analysis as Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the analysis report.
	// When empty, the report is written to stdout.
	ReportFile string

	// ProfilePath is the business profile file path. When empty, the
	// default search locations are used.
	ProfilePath string

	// OutputDir is the directory receiving the generated appeal files.
	OutputDir string

	// SkipAnalysis generates the appeal without analyzing the site,
	// embedding an empty compliance report.
	SkipAnalysis bool

	// Profile is the loaded business profile. Populated by the generate
	// command from the profile file.
	Profile *model.BusinessProfile

	// Rules holds the optional rule-list overrides loaded from the
	// profile file.
	Rules RuleLists
}

// NewConfig creates a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		MaxBodySize: DefaultMaxBodySize,
		UserAgent:   DefaultUserAgent,
		OutputDir:   ".",
	}
}

// Validate checks the configuration for contradictions.
// It returns one of the package sentinel errors on failure.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.TargetURL != "" && c.PDFPath != "" {
		return ErrConflictingInputs
	}
	return nil
}
