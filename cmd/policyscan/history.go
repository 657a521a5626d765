package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/policyscan/policyscan/internal/config"
	"github.com/policyscan/policyscan/internal/database"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
// This command lists past exports recorded in the history database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past report exports",
		Long: `History lists recent report exports recorded in the local database.

Each entry shows when the export happened, which policy it covered, its
overall privacy score and grade, and where the report file was written.

Examples:
  # Show the most recent exports
  policyscan history

  # Show the last 50 exports
  policyscan history --limit 50

  # Output history as JSON
  policyscan history --json`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of entries to show")
	cmd.Flags().BoolP("json", "j", false,
		"Output history in JSON format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	// Open read-only: history listing must not create an empty database.
	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false

	db, err := database.Open(config.XDGDataDir(), opts)
	if err != nil {
		return fmt.Errorf("no export history found (run 'policyscan export' first): %w", err)
	}
	defer db.Close()

	records, err := db.ListExports(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list export history: %w", err)
	}

	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No exports recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSOURCE\tSCORE\tGRADE\tRISKS\tFORMAT\tOUTPUT")
	for _, rec := range records {
		risks := rec.CriticalCount + rec.HighCount + rec.MediumCount + rec.LowCount
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%s\t%s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Source,
			rec.OverallScore,
			rec.Grade,
			risks,
			rec.Format,
			rec.OutputPath,
		)
	}
	return w.Flush()
}
