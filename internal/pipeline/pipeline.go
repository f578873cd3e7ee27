package pipeline

import (
	"context"
	"log/slog"

	"github.com/adsappeal/adsappeal/internal/model"
)

// Analysis is the accumulating value a pipeline run threads through its
// steps. Each step reads the fields earlier steps produced and fills in
// its own.
type Analysis struct {
	// URL is the site address to fetch and score. Empty when the input
	// is an uploaded PDF.
	URL string

	// PDFPath is the path of an exported site PDF to analyze instead of
	// fetching the URL.
	PDFPath string

	// RawMarkup is the fetched HTML, or empty after a fetch failure.
	RawMarkup string

	// Text is the normalized plain text the scorer runs over.
	Text string

	// Report is the scoring result. Always set after a successful run,
	// even when the input text is empty.
	Report *model.ComplianceReport

	// InputFailure records a fetch or extraction failure message. The
	// analysis still completes (with empty text); the caller surfaces
	// the message and suggests the alternate input method.
	InputFailure string
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, each receiving the accumulated analysis.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state (fetcher, scorer)
// 2. It provides a Name() method for logging and debugging
type Step interface {
	// Do executes the pipeline step. Input failures (unreachable site,
	// unreadable PDF) are recorded on the analysis and return nil; only
	// programming-level failures return an error.
	Do(ctx context.Context, a *Analysis) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in order against a shared Analysis value.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, the default slog logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline with the given options.
// Steps are added with AddSteps after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{steps: make([]Step, 0)}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps to the pipeline in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence. It checks for context cancellation
// between steps and stops on the first step error.
func (p *Pipeline) Execute(ctx context.Context, a *Analysis) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("analysis cancelled", "step", step.Name(), "reason", ctx.Err())
			return ctx.Err()
		default:
		}

		p.logger.Debug("running step", "step", step.Name())
		if err := step.Do(ctx, a); err != nil {
			p.logger.Error("step failed", "step", step.Name(), "error", err)
			return err
		}
	}
	return nil
}
