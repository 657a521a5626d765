package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/policyscan/policyscan/internal/database"
	"github.com/policyscan/policyscan/internal/model"
)

// Job carries one export through the pipeline: from input file to saved
// report, accumulating state as steps run.
type Job struct {
	// InputPath is the analysis JSON file to export.
	InputPath string

	// Result is the loaded, normalized analysis. Set by LoadStep.
	Result *model.AnalysisResult

	// OutputPath is the saved report file. Set by RenderStep.
	OutputPath string

	// Markdown selects the Markdown rendition instead of PDF.
	Markdown bool

	// Err records the failure that stopped this job, if any.
	Err error
}

// Step is one stage of the export pipeline.
//
// Design decision: We use an interface rather than function types because
// steps carry configuration state (exporter, database handle) and a Name()
// method keeps logging uniform.
type Step interface {
	// Do executes the step against the job. A returned error stops the
	// pipeline for this job; recoverable conditions should be logged and
	// swallowed instead.
	Do(ctx context.Context, job *Job) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in order for a single job.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithPipelineLogger sets a custom logger for the pipeline.
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline creates a pipeline with the given options.
// Steps are added with AddSteps and run in insertion order.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddSteps appends steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence for one job.
// Cancellation is checked between steps; the first step error stops the
// pipeline and is recorded on the job as well as returned.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			job.Err = ctx.Err()
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"input", job.InputPath,
		)

		if err := step.Do(ctx, job); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"input", job.InputPath,
				"error", err,
			)
			job.Err = err
			return err
		}
	}
	return nil
}

// LoadStep reads and normalizes the analysis JSON input.
type LoadStep struct{}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load_analysis"
}

// Do loads the job's input file.
func (s *LoadStep) Do(_ context.Context, job *Job) error {
	result, err := model.LoadAnalysis(job.InputPath)
	if err != nil {
		return err
	}
	job.Result = result
	return nil
}

// RenderStep composes and saves the report document.
type RenderStep struct {
	exporter *Exporter
}

// NewRenderStep creates a render step backed by the given exporter.
func NewRenderStep(exporter *Exporter) *RenderStep {
	return &RenderStep{exporter: exporter}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render_report"
}

// Do renders the job's analysis into its selected format.
func (s *RenderStep) Do(ctx context.Context, job *Job) error {
	if job.Result == nil {
		return fmt.Errorf("render step: no analysis loaded for %s", job.InputPath)
	}

	var (
		path string
		err  error
	)
	if job.Markdown {
		path, err = s.exporter.ExportMarkdown(ctx, job.Result)
	} else {
		path, err = s.exporter.Export(ctx, job.Result)
	}
	if err != nil {
		return err
	}
	job.OutputPath = path
	return nil
}

// RecordStep inserts an export-history record after a successful render.
// History is best-effort: a recording failure is logged and never fails the
// export itself.
type RecordStep struct {
	db     *database.HistoryDB
	logger *slog.Logger
}

// NewRecordStep creates a record step. A nil database disables recording.
func NewRecordStep(db *database.HistoryDB, logger *slog.Logger) *RecordStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordStep{db: db, logger: logger}
}

// Name returns the step name.
func (s *RecordStep) Name() string {
	return "record_history"
}

// Do records the completed export in the history database.
func (s *RecordStep) Do(ctx context.Context, job *Job) error {
	if s.db == nil || job.Result == nil || job.OutputPath == "" {
		return nil
	}

	format := "pdf"
	if job.Markdown {
		format = "markdown"
	}
	record := database.NewExportRecord(job.Result, format, job.OutputPath)
	if err := s.db.InsertExport(ctx, &record); err != nil {
		s.logger.Warn("failed to record export history",
			"input", job.InputPath,
			"error", err,
		)
	}
	return nil
}
