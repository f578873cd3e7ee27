package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adsappeal/adsappeal/internal/fetch"
	"github.com/adsappeal/adsappeal/internal/scorer"
)

// newAnalysisPipeline wires the standard four-step analysis for tests.
func newAnalysisPipeline() *Pipeline {
	p := New(WithLogger(quietLogger()))
	p.AddSteps(
		NewFetchStep(fetch.NewFetcher(), quietLogger()),
		NewExtractPDFStep(quietLogger()),
		NewNormalizeStep(),
		NewScoreStep(scorer.New()),
	)
	return p
}

// TestAnalysisFromURL tests the fetch → normalize → score flow against a
// local server.
func TestAnalysisFromURL(t *testing.T) {
	t.Parallel()

	const page = `<html><head><title>x</title><style>p{}</style></head>` +
		`<body><p>Serviços de contabilidade</p><p>CNPJ 51.999.609/0001-57</p></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(page)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	analysis := &Analysis{URL: server.URL}
	if err := newAnalysisPipeline().Execute(context.Background(), analysis); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if analysis.InputFailure != "" {
		t.Errorf("unexpected input failure: %q", analysis.InputFailure)
	}
	if !strings.Contains(analysis.Text, "Serviços de contabilidade") {
		t.Errorf("normalized text missing page content: %q", analysis.Text)
	}
	if analysis.Report == nil {
		t.Fatal("no report produced")
	}
	found := false
	for _, c := range analysis.Report.Confirmations {
		if strings.HasPrefix(c, "CNPJ detectado:") {
			found = true
		}
	}
	if !found {
		t.Errorf("report should confirm the CNPJ: %v", analysis.Report.Confirmations)
	}
}

// TestAnalysisDegradesOnFetchFailure tests that an unreachable site still
// yields a report plus the PDF-upload suggestion.
func TestAnalysisDegradesOnFetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	analysis := &Analysis{URL: server.URL}
	if err := newAnalysisPipeline().Execute(context.Background(), analysis); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if analysis.InputFailure != "Não foi possível acessar a URL. Faça upload do PDF do site." {
		t.Errorf("InputFailure = %q", analysis.InputFailure)
	}
	if analysis.Report == nil {
		t.Fatal("degraded run should still produce a report")
	}
	// Empty text fails every content check but the run completes.
	if analysis.Report.Score >= 100 {
		t.Errorf("degraded score = %d, expected deductions", analysis.Report.Score)
	}
}

// TestAnalysisDegradesOnPDFFailure tests the unreadable-PDF message.
func TestAnalysisDegradesOnPDFFailure(t *testing.T) {
	t.Parallel()

	analysis := &Analysis{PDFPath: filepath.Join(t.TempDir(), "missing.pdf")}
	if err := newAnalysisPipeline().Execute(context.Background(), analysis); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if analysis.InputFailure != "Não foi possível ler o PDF. Envie um PDF com texto ou use a URL." {
		t.Errorf("InputFailure = %q", analysis.InputFailure)
	}
	if analysis.Report == nil {
		t.Fatal("degraded run should still produce a report")
	}
}

// TestFetchStepSkipsPDFInput tests that a PDF input bypasses the fetch.
func TestFetchStepSkipsPDFInput(t *testing.T) {
	t.Parallel()

	step := NewFetchStep(fetch.NewFetcher(), quietLogger())
	analysis := &Analysis{URL: "http://127.0.0.1:1", PDFPath: "site.pdf"}

	if err := step.Do(context.Background(), analysis); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if analysis.InputFailure != "" || analysis.RawMarkup != "" {
		t.Error("fetch step should not run for PDF inputs")
	}
}

// TestNormalizeStepKeepsExistingText tests that PDF-extracted text is not
// overwritten.
func TestNormalizeStepKeepsExistingText(t *testing.T) {
	t.Parallel()

	analysis := &Analysis{Text: "texto do PDF", RawMarkup: "<p>markup</p>"}
	if err := NewNormalizeStep().Do(context.Background(), analysis); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if analysis.Text != "texto do PDF" {
		t.Errorf("Text = %q, expected PDF text preserved", analysis.Text)
	}
}

// TestScoreStepAlwaysReports tests scoring of empty text.
func TestScoreStepAlwaysReports(t *testing.T) {
	t.Parallel()

	analysis := &Analysis{}
	if err := NewScoreStep(scorer.New()).Do(context.Background(), analysis); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if analysis.Report == nil {
		t.Fatal("no report produced for empty text")
	}
}
