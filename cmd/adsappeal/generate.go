package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/adsappeal/adsappeal/internal/appeal"
	"github.com/adsappeal/adsappeal/internal/config"
	applog "github.com/adsappeal/adsappeal/internal/log"
	"github.com/adsappeal/adsappeal/internal/model"
	"github.com/adsappeal/adsappeal/internal/report"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the suspension appeal packet",
		Long: `Generate assembles the appeal packet from the business profile and a
fresh compliance analysis of the profile's site.

It writes two files into the output directory:
  FormData_<company>.json    the appeal form answers (JSON download)
  Contestacao_<company>.pdf  the printable appeal document

and prints the form answers as copy/paste text.

The business profile is read from --profile, or from .adsappeal in the
current directory, or from the XDG config directory. Create one with
"adsappeal init".

Examples:
  # Generate using the default profile
  adsappeal generate

  # Explicit profile and output directory
  adsappeal generate --profile client.yaml --output-dir out/

  # Site is down: analyze an exported PDF instead
  adsappeal generate --from-pdf site.pdf

  # Skip the site analysis entirely
  adsappeal generate --skip-analysis`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("profile", "p", "",
		"Business profile file path")
	cmd.Flags().StringP("output-dir", "d", ".",
		"Directory receiving the generated files")
	cmd.Flags().StringP("from-pdf", "f", "",
		"Analyze an exported site PDF instead of fetching the site")
	cmd.Flags().BoolP("skip-analysis", "s", false,
		"Generate without analyzing the site")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Site fetch timeout")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildGenerateConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := applog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Analyze the profile's site, then thread the report explicitly into
	// the builder. With --skip-analysis the packet embeds a zero score.
	var siteReport *model.ComplianceReport
	if !cfg.SkipAnalysis {
		analysis, err := runAnalysis(ctx, cfg, logger)
		if err != nil {
			return err
		}
		if analysis.InputFailure != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), analysis.InputFailure)
		}
		siteReport = analysis.Report
	}

	record := appeal.NewBuilder().Build(cfg.Profile, siteReport)

	jsonPath, pdfPath, err := writeAppealFiles(cfg, record)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.FormText(record))
	fmt.Fprintf(cmd.OutOrStdout(), "\nArquivos gerados:\n  %s\n  %s\n", jsonPath, pdfPath)
	return nil
}

// buildGenerateConfig creates a Config from the generate command flags and
// loads the business profile.
func buildGenerateConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if cfg.ProfilePath, err = cmd.Flags().GetString("profile"); err != nil {
		return nil, err
	}
	if cfg.OutputDir, err = cmd.Flags().GetString("output-dir"); err != nil {
		return nil, err
	}
	if cfg.PDFPath, err = cmd.Flags().GetString("from-pdf"); err != nil {
		return nil, err
	}
	if cfg.SkipAnalysis, err = cmd.Flags().GetBool("skip-analysis"); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, err
	}

	path := config.FindProfileFile(cfg.ProfilePath)
	if path == "" {
		return nil, config.ErrProfileNotFound
	}
	file, err := config.LoadProfile(path)
	if err != nil {
		return nil, err
	}
	if file.Profile.LegalName == "" {
		return nil, config.ErrNoLegalName
	}

	cfg.Profile = &file.Profile
	cfg.Rules = file.Rules
	// The analysis target comes from the profile; the PDF flag overrides it.
	if cfg.PDFPath == "" {
		cfg.TargetURL = file.Profile.SiteURL
	}

	return cfg, nil
}

// writeAppealFiles writes the JSON and PDF downloads into the output
// directory and returns their paths.
func writeAppealFiles(cfg *config.Config, record *model.AppealRecord) (string, string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}

	jsonPath := filepath.Join(cfg.OutputDir, report.FormDataFilename(cfg.Profile.LegalName))
	if err := writeRecord(jsonPath, record, func(f *os.File) report.Writer {
		return report.NewJSONWriter(f, report.WithPrettyPrint())
	}); err != nil {
		return "", "", err
	}

	pdfPath := filepath.Join(cfg.OutputDir, report.AppealFilename(cfg.Profile.LegalName))
	if err := writeRecord(pdfPath, record, func(f *os.File) report.Writer {
		return report.NewPDFWriter(f, report.AppealTitle(cfg.Profile.LegalName))
	}); err != nil {
		return "", "", err
	}

	return jsonPath, pdfPath, nil
}

// writeRecord writes the record to the given path with the writer the
// factory builds over the created file.
func writeRecord(path string, record *model.AppealRecord, writerFor func(*os.File) report.Writer) error {
	f, err := os.Create(path) //nolint:gosec // output path derives from sanitized company name
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // close error surfaced via Sync below

	if _, err := writerFor(f).Write(record); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Sync()
}
