// Package main provides the entry point for the adsappeal CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for adsappeal.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adsappeal",
		Short: "Google Ads suspension appeal assistant",
		Long: `adsappeal assists a business in contesting a Google Ads account suspension
under the "Unacceptable Business Practices" policy.

It audits the advertised site against transparency heuristics (HTTPS, CNPJ,
contact data, policy links, promissory wording) and assembles the appeal
packet: the form answers as copy/paste text, a printable PDF and a JSON
download.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
