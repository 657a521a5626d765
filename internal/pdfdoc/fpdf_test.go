package pdfdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/policyscan/policyscan/internal/report"
)

// TestWriterImplementsContract is a compile-time interface check.
func TestWriterImplementsContract(t *testing.T) {
	t.Parallel()

	var _ report.DocWriter = New()
}

// TestWriterPages tests page management.
func TestWriterPages(t *testing.T) {
	t.Parallel()

	w := New()
	if got := w.PageCount(); got != 1 {
		t.Fatalf("new document pages = %d, want 1", got)
	}

	w.AddPage()
	w.AddPage()
	if got := w.PageCount(); got != 3 {
		t.Errorf("pages = %d, want 3", got)
	}

	// Revisiting an earlier page must not change the count.
	w.SetPage(1)
	if got := w.PageCount(); got != 3 {
		t.Errorf("pages after SetPage = %d, want 3", got)
	}
}

// TestWriterSplitText tests deterministic wrapping.
func TestWriterSplitText(t *testing.T) {
	t.Parallel()

	w := New()
	w.SetFontSize(10)

	const text = "This sentence is comfortably longer than forty millimetres of Helvetica."
	first := w.SplitText(text, 40)
	second := w.SplitText(text, 40)

	if len(first) < 2 {
		t.Errorf("expected wrapped output, got %d line(s)", len(first))
	}
	if len(first) != len(second) {
		t.Fatalf("wrapping is not deterministic: %d vs %d lines", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs between identical calls", i)
		}
	}
}

// TestWriterSave tests document persistence.
func TestWriterSave(t *testing.T) {
	t.Parallel()

	t.Run("writes a PDF file", func(t *testing.T) {
		t.Parallel()

		w := New()
		w.SetFontStyle(report.FontBold)
		w.SetFontSize(14)
		w.SetTextColor(31, 41, 55)
		w.Text("Hello report", 15, 25)
		w.SetDrawColor(200, 200, 200)
		w.Line(15, 30, 195, 30)

		path := filepath.Join(t.TempDir(), "out.pdf")
		if err := w.Save(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading saved file: %v", err)
		}
		if len(data) == 0 {
			t.Fatal("saved file is empty")
		}
		if string(data[:5]) != "%PDF-" {
			t.Errorf("file does not start with PDF magic: %q", data[:5])
		}
	})

	t.Run("save to unwritable path fails", func(t *testing.T) {
		t.Parallel()

		w := New()
		path := filepath.Join(t.TempDir(), "missing-dir", "out.pdf")
		if err := w.Save(path); err == nil {
			t.Error("expected error saving into missing directory")
		}
	})
}
