package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/policyscan/policyscan/internal/model"
	"github.com/policyscan/policyscan/internal/pdfdoc"
	"github.com/policyscan/policyscan/internal/report"
)

// Filename returns the export filename for the given moment, of the form
// privacy-policy-analysis-<unix-epoch-milliseconds>.pdf.
func Filename(t time.Time) string {
	return fmt.Sprintf("privacy-policy-analysis-%d.pdf", t.UnixMilli())
}

// MarkdownFilename is the markdown-format counterpart of Filename.
func MarkdownFilename(t time.Time) string {
	return fmt.Sprintf("privacy-policy-analysis-%d.md", t.UnixMilli())
}

// Exporter renders analysis results to report files.
// The zero configuration exports PDFs into the current directory; options
// override the destination, clock, and document backend.
type Exporter struct {
	// newDoc creates the drawing backend. A fresh writer is acquired per
	// export and released (saved or discarded) on every exit path.
	newDoc func() report.DocWriter

	// outputDir is where report files are written.
	outputDir string

	// now supplies timestamps for filenames. Injectable for tests.
	now func() time.Time

	logger *slog.Logger

	// mu guards lastStamp. Concurrent batch exports can land on the same
	// millisecond, and the filename is the only thing keeping their output
	// files apart.
	mu        sync.Mutex
	lastStamp int64
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithOutputDir sets the directory report files are written to.
func WithOutputDir(dir string) Option {
	return func(e *Exporter) {
		if dir != "" {
			e.outputDir = dir
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithClock sets the timestamp source for filenames.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// WithDocFactory sets the document writer factory.
// Tests use this to substitute an in-memory fake for the PDF backend.
func WithDocFactory(factory func() report.DocWriter) Option {
	return func(e *Exporter) {
		e.newDoc = factory
	}
}

// New creates an Exporter with the given options.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		newDoc:    func() report.DocWriter { return pdfdoc.New() },
		outputDir: ".",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// outputPath reserves a unique report path with the given extension.
//
// The millisecond stamp is bumped past both the last stamp this exporter
// issued and any file already on disk, so two exports in the same
// millisecond (routine under batch concurrency) never overwrite each other
// and every history record keeps pointing at its own file.
func (e *Exporter) outputPath(ext string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	ms := e.now().UnixMilli()
	if ms <= e.lastStamp {
		ms = e.lastStamp + 1
	}
	for {
		path := filepath.Join(e.outputDir, fmt.Sprintf("privacy-policy-analysis-%d%s", ms, ext))
		if _, err := os.Stat(path); err != nil {
			// Not on disk (or unreadable, in which case the save will
			// surface the real error). Claim the stamp.
			e.lastStamp = ms
			return path
		}
		ms++
	}
}

// Export renders one analysis result to a PDF file and returns its path.
//
// The operation is all-or-nothing: a save failure removes any partial file
// before the error is returned, so the caller never observes a corrupt
// document.
func (e *Exporter) Export(ctx context.Context, res *model.AnalysisResult) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc := e.newDoc()
	composer := report.NewPDFComposer(doc, report.WithPDFLogger(e.logger))
	composer.Compose(res)

	path := e.outputPath(".pdf")
	if err := doc.Save(path); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("export report for %s: %w", res.Source, err)
	}

	e.logger.Info("report exported",
		"source", res.Source,
		"path", path,
	)
	return path, nil
}

// ExportMarkdown renders one analysis result to a Markdown file and returns
// its path. Same all-or-nothing behavior as Export.
func (e *Exporter) ExportMarkdown(ctx context.Context, res *model.AnalysisResult) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := e.outputPath(".md")
	f, err := os.Create(path) //nolint:gosec // Path is derived from configured output dir
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	if _, err := report.NewMarkdownWriter(f).Write(res); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("export markdown report for %s: %w", res.Source, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close report file: %w", err)
	}

	e.logger.Info("markdown report exported",
		"source", res.Source,
		"path", path,
	)
	return path, nil
}
