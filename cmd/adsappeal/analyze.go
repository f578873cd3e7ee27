package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/adsappeal/adsappeal/internal/config"
	"github.com/adsappeal/adsappeal/internal/fetch"
	applog "github.com/adsappeal/adsappeal/internal/log"
	"github.com/adsappeal/adsappeal/internal/pipeline"
	"github.com/adsappeal/adsappeal/internal/report"
	"github.com/adsappeal/adsappeal/internal/scorer"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [url]",
		Short: "Analyze a site's advertising-policy compliance posture",
		Long: `Analyze fetches the advertised site, extracts its visible text and rates
its transparency posture on a 0-100 scale.

The checks cover: HTTPS, CNPJ presence, contact data, policy-page links,
promissory risk phrases and financial-product terms. Each warning costs 10
points and each risk 20.

When a site cannot be fetched, export it to PDF from a browser and analyze
the export instead.

Examples:
  # Analyze a site
  adsappeal analyze https://example.com.br

  # Analyze an exported site PDF
  adsappeal analyze --from-pdf site.pdf

  # Machine-readable output
  adsappeal analyze --json https://example.com.br

  # Markdown report written to a file
  adsappeal analyze --markdown -o audit.md https://example.com.br`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("from-pdf", "f", "",
		"Analyze an exported site PDF instead of fetching the URL")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Site fetch timeout")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildAnalyzeConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if cfg.TargetURL == "" && cfg.PDFPath == "" {
		return config.ErrNoTarget
	}

	logger := applog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analysis, err := runAnalysis(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if analysis.InputFailure != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), analysis.InputFailure)
	}

	output, closeOutput, err := reportDestination(cmd.OutOrStdout(), cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := analysisWriter(output, cfg)
	if _, err := writer.WriteAnalysis(analysis.Report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// buildAnalyzeConfig creates a Config from the analyze command flags.
func buildAnalyzeConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if len(args) > 0 {
		cfg.TargetURL = args[0]
	}

	var err error
	if cfg.PDFPath, err = cmd.Flags().GetString("from-pdf"); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runAnalysis executes the fetch/extract/normalize/score pipeline and
// returns the accumulated analysis.
func runAnalysis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pipeline.Analysis, error) {
	fetcher := fetch.NewFetcher(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithUserAgent(cfg.UserAgent),
	)
	sc := scorer.New(
		scorer.WithPolicyKeywords(cfg.Rules.PolicyKeywords),
		scorer.WithRiskPhrases(cfg.Rules.RiskPhrases),
		scorer.WithFinanceTerms(cfg.Rules.FinanceTerms),
	)

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewFetchStep(fetcher, logger),
		pipeline.NewExtractPDFStep(logger),
		pipeline.NewNormalizeStep(),
		pipeline.NewScoreStep(sc),
	)

	analysis := &pipeline.Analysis{
		URL:     cfg.TargetURL,
		PDFPath: cfg.PDFPath,
	}
	start := time.Now()
	if err := p.Execute(ctx, analysis); err != nil {
		return nil, err
	}
	logger.Debug("analysis complete",
		"score", analysis.Report.Score,
		"duration", time.Since(start),
	)

	return analysis, nil
}

// analysisWriter selects the report format requested by the flags.
func analysisWriter(output io.Writer, cfg *config.Config) report.AnalysisWriter {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithShowEmpty(true))
	}
}

// reportDestination returns the report output writer: stdout by default,
// or the given file with parent directories created as needed.
func reportDestination(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("create report directory: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // user-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("create report file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
