package export

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/policyscan/policyscan/internal/model"
	"github.com/policyscan/policyscan/internal/report"
)

// memDoc is an in-memory DocWriter. Save writes a placeholder file unless
// saveErr is set, in which case the file is still created first so tests can
// verify the exporter removes partial output.
type memDoc struct {
	pages   int
	current int
	saveErr error
	saved   string
}

func newMemDoc() *memDoc {
	return &memDoc{pages: 1, current: 1}
}

func (d *memDoc) SetFontSize(float64)           {}
func (d *memDoc) SetFontStyle(report.FontStyle) {}
func (d *memDoc) SetTextColor(_, _, _ int)      {}
func (d *memDoc) SetDrawColor(_, _, _ int)      {}
func (d *memDoc) Text(string, float64, float64) {}
func (d *memDoc) Line(_, _, _, _ float64)       {}

func (d *memDoc) SplitText(content string, _ float64) []string {
	if content == "" {
		return nil
	}
	return []string{content}
}

func (d *memDoc) AddPage() {
	d.pages++
	d.current = d.pages
}

func (d *memDoc) SetPage(n int)  { d.current = n }
func (d *memDoc) PageCount() int { return d.pages }

func (d *memDoc) Save(filename string) error {
	if err := os.WriteFile(filename, []byte("doc"), 0600); err != nil {
		return err
	}
	d.saved = filename
	return d.saveErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedClock returns a clock pinned to the given time.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TestFilename tests the export filename format.
func TestFilename(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1700000000123)
	if got, want := Filename(at), "privacy-policy-analysis-1700000000123.pdf"; got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
	if got, want := MarkdownFilename(at), "privacy-policy-analysis-1700000000123.md"; got != want {
		t.Errorf("MarkdownFilename = %q, want %q", got, want)
	}

	pattern := regexp.MustCompile(`^privacy-policy-analysis-\d+\.pdf$`)
	if name := Filename(time.Now()); !pattern.MatchString(name) {
		t.Errorf("Filename %q does not match expected pattern", name)
	}
}

// TestExport tests a successful PDF export.
func TestExport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := newMemDoc()
	e := New(
		WithOutputDir(dir),
		WithLogger(discardLogger()),
		WithClock(fixedClock(time.UnixMilli(42))),
		WithDocFactory(func() report.DocWriter { return doc }),
	)

	res := &model.AnalysisResult{Source: "example.json"}
	res.Normalize()

	path, err := e.Export(context.Background(), res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "privacy-policy-analysis-42.pdf")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file: %v", err)
	}
}

// TestExportUniqueFilenames tests that exports landing on the same
// millisecond never share an output path.
func TestExportUniqueFilenames(t *testing.T) {
	t.Parallel()

	t.Run("same exporter bumps the stamp", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		e := New(
			WithOutputDir(dir),
			WithLogger(discardLogger()),
			WithClock(fixedClock(time.UnixMilli(42))),
			WithDocFactory(func() report.DocWriter { return newMemDoc() }),
		)

		res := &model.AnalysisResult{Source: "example.json"}
		res.Normalize()

		first, err := e.Export(context.Background(), res)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := e.Export(context.Background(), res)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Fatalf("both exports wrote to %s", first)
		}
		for _, path := range []string{first, second} {
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected output file %s: %v", path, err)
			}
		}
	})

	t.Run("existing file on disk is never overwritten", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		taken := filepath.Join(dir, "privacy-policy-analysis-42.pdf")
		if err := os.WriteFile(taken, []byte("earlier report"), 0600); err != nil {
			t.Fatal(err)
		}

		e := New(
			WithOutputDir(dir),
			WithLogger(discardLogger()),
			WithClock(fixedClock(time.UnixMilli(42))),
			WithDocFactory(func() report.DocWriter { return newMemDoc() }),
		)

		res := &model.AnalysisResult{Source: "example.json"}
		res.Normalize()

		path, err := e.Export(context.Background(), res)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path == taken {
			t.Fatalf("export reused occupied path %s", taken)
		}
		data, err := os.ReadFile(taken) //nolint:gosec // Test-owned temp path
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "earlier report" {
			t.Error("pre-existing report was overwritten")
		}
	})
}

// TestExportSaveFailure tests that a save failure leaves no partial file.
func TestExportSaveFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := newMemDoc()
	doc.saveErr = errors.New("disk full")
	e := New(
		WithOutputDir(dir),
		WithLogger(discardLogger()),
		WithClock(fixedClock(time.UnixMilli(42))),
		WithDocFactory(func() report.DocWriter { return doc }),
	)

	res := &model.AnalysisResult{Source: "example.json"}
	res.Normalize()

	_, err := e.Export(context.Background(), res)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, doc.saveErr) {
		t.Errorf("error %v does not wrap save failure", err)
	}
	// The partially written file must be cleaned up.
	if _, err := os.Stat(doc.saved); !os.IsNotExist(err) {
		t.Errorf("partial file still exists at %s", doc.saved)
	}
}

// TestExportCancelledContext tests context cancellation before work starts.
func TestExportCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(
		WithOutputDir(t.TempDir()),
		WithLogger(discardLogger()),
		WithDocFactory(func() report.DocWriter { return newMemDoc() }),
	)

	res := &model.AnalysisResult{Source: "example.json"}
	res.Normalize()

	if _, err := e.Export(ctx, res); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if _, err := e.ExportMarkdown(ctx, res); !errors.Is(err, context.Canceled) {
		t.Errorf("markdown err = %v, want context.Canceled", err)
	}
}

// TestExportMarkdown tests a successful Markdown export.
func TestExportMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := New(
		WithOutputDir(dir),
		WithLogger(discardLogger()),
		WithClock(fixedClock(time.UnixMilli(42))),
	)

	res := &model.AnalysisResult{
		Source: "https://example.com/privacy",
		Summary: model.Summary{
			Detailed: "## Overview\n\nThe policy collects data.",
		},
	}
	res.Normalize()

	path, err := e.ExportMarkdown(context.Background(), res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "privacy-policy-analysis-42.md")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Test-owned temp path
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("markdown report is empty")
	}
}

// TestExportMarkdownBadDir tests create failure in a missing directory.
func TestExportMarkdownBadDir(t *testing.T) {
	t.Parallel()

	e := New(
		WithOutputDir(filepath.Join(t.TempDir(), "does", "not", "exist")),
		WithLogger(discardLogger()),
	)

	res := &model.AnalysisResult{Source: "example.json"}
	res.Normalize()

	if _, err := e.ExportMarkdown(context.Background(), res); err == nil {
		t.Error("expected error for missing output directory")
	}
}
