package export

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchProcessor exports multiple analysis inputs concurrently.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it is simpler and handles the concurrency limit correctly. Each
// input gets its own pipeline (and thus its own cursor and document writer),
// so jobs share no mutable state.
type BatchProcessor struct {
	// pipelineFactory creates a fresh pipeline per job so pipeline state
	// never leaks between exports.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of simultaneous exports.
	concurrency int

	// markdown selects the Markdown rendition for every job in the batch.
	markdown bool

	logger *slog.Logger

	// jobs collects completed jobs; access is synchronized via mutex.
	jobs []*Job
	mu   sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent exports.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithMarkdownFormat makes the batch produce Markdown reports instead of PDFs.
func WithMarkdownFormat(markdown bool) BatchOption {
	return func(b *BatchProcessor) {
		b.markdown = markdown
	}
}

// NewBatchProcessor creates a BatchProcessor.
// The factory is called once per input to build that job's pipeline.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     4,
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.logger == nil {
		bp.logger = slog.Default()
	}
	return bp
}

// Process exports every input, at most concurrency at a time.
//
// All jobs are returned in input order, including failed ones; a job's
// failure is recorded in its Err field rather than aborting the batch.
// The error return reports cancellation only.
func (bp *BatchProcessor) Process(ctx context.Context, inputs []string) ([]*Job, error) {
	bp.logger.Info("starting batch export",
		"total_inputs", len(inputs),
		"concurrency", bp.concurrency,
	)
	startTime := time.Now()

	// Pre-allocate to maintain input order.
	bp.jobs = make([]*Job, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, input := range inputs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			job := &Job{InputPath: input, Markdown: bp.markdown}
			pipeline := bp.pipelineFactory()
			err := pipeline.Execute(ctx, job)

			bp.mu.Lock()
			bp.jobs[i] = job
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("export failed",
					"input", input,
					"error", err,
				)
				// The failure lives in job.Err; keep the other exports going.
				return nil
			}

			bp.logger.Info("export completed",
				"input", input,
				"output", job.OutputPath,
			)
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch export complete",
		"total_inputs", len(inputs),
		"elapsed", time.Since(startTime),
	)
	return bp.jobs, err
}
