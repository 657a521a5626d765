package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for policyscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policyscan",
		Short: "Render privacy-policy analysis results as PDF or Markdown reports",
		Long: `Policyscan renders privacy-policy analysis results as readable reports.

It reads analysis JSON files produced by policy-analysis tooling and writes
paginated PDF documents (or Markdown) containing a privacy scorecard, a
severity-ranked list of risks, a glossary of key terms, and the privacy
rights the policy grants.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewHistoryCmd())
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
