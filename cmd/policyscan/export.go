package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/policyscan/policyscan/internal/config"
	"github.com/policyscan/policyscan/internal/database"
	"github.com/policyscan/policyscan/internal/export"
	"github.com/policyscan/policyscan/internal/log"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [analysis-file...]",
		Short: "Export analysis results as PDF or Markdown reports",
		Long: `Export renders privacy-policy analysis JSON files as report documents.

Each input produces one report file named
privacy-policy-analysis-<timestamp>.pdf (or .md) in the output directory.
Multiple inputs are exported concurrently; a failed input is reported and
does not stop the others.

Examples:
  # Export a single analysis as PDF
  policyscan export analysis.json

  # Export as Markdown instead
  policyscan export --markdown analysis.json

  # Export several analyses into a reports directory
  policyscan export -o reports a.json b.json c.json

  # Use a custom configuration file
  policyscan export -c myconfig.yaml analysis.json

Configuration file (.policyscan) example:
  output_dir: reports
  format: pdf
  concurrency: 4`,
		Args: cobra.ArbitraryArgs,
		RunE: runExportCmd,
	}

	// Report flags
	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Directory report files are written to (created if needed)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown reports instead of PDF")

	// Batch flags
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of concurrent exports")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .policyscan in current or home directory)")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not record exports in the history database")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with redaction
	logger := log.NewRedactLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runExport(ctx, cfg, logger)
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

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Precedence is defaults < file < flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the config file first so explicit flags can override it.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, err = cmd.Flags().GetString("output-dir")
		if err != nil {
			return nil, err
		}
	}

	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	if markdown {
		cfg.Format = config.FormatMarkdown
	}

	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
		if err != nil {
			return nil, err
		}
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	if noHistory {
		cfg.DisableHistory = true
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the analysis JSON files.
	cfg.Inputs = args

	return cfg, nil
}

// runExport executes the batch export.
func runExport(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Open the history database unless disabled. History is an amenity:
	// an unopenable database downgrades to a warning, not a failed export.
	var db *database.HistoryDB
	if !cfg.DisableHistory {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("failed to open history database, continuing without history",
				"dir", cfg.DBDir,
				"error", err,
			)
		} else {
			defer db.Close()
			logger.Info("history database opened", "dir", cfg.DBDir)
		}
	}

	exporter := export.New(
		export.WithOutputDir(cfg.OutputDir),
		export.WithLogger(logger),
	)

	pipelineFactory := func() *export.Pipeline {
		p := export.NewPipeline(export.WithPipelineLogger(logger))
		p.AddSteps(
			&export.LoadStep{},
			export.NewRenderStep(exporter),
			export.NewRecordStep(db, logger),
		)
		return p
	}

	bp := export.NewBatchProcessor(pipelineFactory,
		export.WithBatchLogger(logger),
		export.WithConcurrency(cfg.Concurrency),
		export.WithMarkdownFormat(cfg.Format == config.FormatMarkdown),
	)

	startTime := time.Now()
	jobs, err := bp.Process(ctx, cfg.Inputs)
	if err != nil {
		return err
	}

	// Print per-input results and count failures.
	failed := 0
	for _, job := range jobs {
		if job == nil {
			continue
		}
		if job.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Export failed for %s: %v\n", job.InputPath, job.Err)
			continue
		}
		fmt.Printf("Exported %s -> %s\n", job.InputPath, job.OutputPath)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("\nExported %d of %d analyses in %s\n",
		len(jobs)-failed, len(jobs), elapsed.Round(time.Millisecond))

	if failed > 0 {
		return errors.New("some exports failed")
	}
	return nil
}
