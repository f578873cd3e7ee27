package pipeline

import (
	"context"
	"log/slog"

	"github.com/adsappeal/adsappeal/internal/fetch"
	"github.com/adsappeal/adsappeal/internal/normalize"
	"github.com/adsappeal/adsappeal/internal/scorer"
)

// FetchStep downloads the site's HTML. A failed fetch is not fatal: the
// failure is recorded on the analysis, the markup stays empty and the
// remaining steps run so the operator still gets a (degenerate) report
// plus a prompt to use the PDF upload path instead.
type FetchStep struct {
	fetcher *fetch.Fetcher
	logger  *slog.Logger
}

// NewFetchStep creates a fetch step using the given fetcher.
func NewFetchStep(fetcher *fetch.Fetcher, logger *slog.Logger) *FetchStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &FetchStep{fetcher: fetcher, logger: logger}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch_site"
}

// Do fetches the site markup unless the analysis input is a PDF.
func (s *FetchStep) Do(ctx context.Context, a *Analysis) error {
	if a.PDFPath != "" || a.URL == "" {
		return nil
	}

	markup, err := s.fetcher.Fetch(ctx, a.URL)
	if err != nil {
		s.logger.Warn("site fetch failed", "url", a.URL, "error", err)
		a.InputFailure = "Não foi possível acessar a URL. Faça upload do PDF do site."
		return nil
	}

	a.RawMarkup = markup
	return nil
}

// ExtractPDFStep reads the text of an exported site PDF. Like the fetch
// step, extraction failures degrade to empty text rather than aborting.
type ExtractPDFStep struct {
	logger *slog.Logger
}

// NewExtractPDFStep creates a PDF extraction step.
func NewExtractPDFStep(logger *slog.Logger) *ExtractPDFStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractPDFStep{logger: logger}
}

// Name returns the step name.
func (s *ExtractPDFStep) Name() string {
	return "extract_pdf"
}

// Do extracts the PDF text when the analysis input is a PDF.
func (s *ExtractPDFStep) Do(_ context.Context, a *Analysis) error {
	if a.PDFPath == "" {
		return nil
	}

	text, err := fetch.ExtractPDFText(a.PDFPath)
	if err != nil {
		s.logger.Warn("PDF extraction failed", "path", a.PDFPath, "error", err)
		a.InputFailure = "Não foi possível ler o PDF. Envie um PDF com texto ou use a URL."
		return nil
	}

	// PDF text needs no HTML normalization; it feeds the scorer directly.
	a.Text = text
	return nil
}

// NormalizeStep converts fetched markup into plain text. It is a no-op
// when a previous step already produced text (the PDF path) or when the
// fetch failed (empty markup yields empty text).
type NormalizeStep struct{}

// NewNormalizeStep creates a normalization step.
func NewNormalizeStep() *NormalizeStep {
	return &NormalizeStep{}
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return "normalize_text"
}

// Do normalizes the raw markup into plain text.
func (s *NormalizeStep) Do(_ context.Context, a *Analysis) error {
	if a.Text != "" {
		return nil
	}
	a.Text = normalize.Text(a.RawMarkup)
	return nil
}

// ScoreStep runs the compliance rule table over the normalized text.
// It always produces a report, even for empty text.
type ScoreStep struct {
	scorer *scorer.Scorer
}

// NewScoreStep creates a scoring step using the given scorer.
func NewScoreStep(sc *scorer.Scorer) *ScoreStep {
	return &ScoreStep{scorer: sc}
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return "score_compliance"
}

// Do scores the analysis text.
func (s *ScoreStep) Do(_ context.Context, a *Analysis) error {
	a.Report = s.scorer.Score(a.Text, a.URL)
	return nil
}
