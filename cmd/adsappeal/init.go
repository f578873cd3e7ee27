package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adsappeal/adsappeal/internal/config"
)

//go:embed templates/adsappeal.yaml
var profileTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new business profile file",
		Long: `Initialize creates a new .adsappeal profile file in the current directory.

The generated file includes:
- Every business field the appeal form needs, with example values
- The advertising keyword list
- Commented rule-list overrides for the compliance checks

Examples:
  # Create .adsappeal in current directory
  adsappeal init

  # Create the profile at a specific path
  adsappeal init -o client.yaml

  # Force overwrite existing file
  adsappeal init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultProfileFile,
		"Output file path for the profile")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing profile file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("profile file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := profileTemplate.ReadFile("templates/adsappeal.yaml")
	if err != nil {
		return fmt.Errorf("failed to read profile template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created profile file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit it with your business data, then run 'adsappeal generate'.")
	return nil
}
