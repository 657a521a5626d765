package pdfdoc

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/policyscan/policyscan/internal/report"
)

// fontFamily is the built-in font used for all report text.
// Core fonts need no font files and keep the output small.
const fontFamily = "Helvetica"

// Writer is a report.DocWriter backed by an fpdf document.
// One Writer serves one export and is discarded after Save.
type Writer struct {
	pdf *fpdf.Fpdf

	// translate maps UTF-8 to the code page of the core fonts so glyphs
	// like the bullet survive.
	translate func(string) string

	// size and style mirror the current font state; fpdf requires the full
	// font triple on every change.
	size  float64
	style string
}

// New creates a portrait A4 millimetre-unit document with its first page
// open. Automatic page breaking is disabled: the layout cursor owns all
// pagination decisions.
func New() *Writer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", 10)

	return &Writer{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		size:      10,
	}
}

// styleString maps the contract's font style to fpdf's style string.
func styleString(style report.FontStyle) string {
	switch style {
	case report.FontBold:
		return "B"
	case report.FontItalic:
		return "I"
	default:
		return ""
	}
}

// SetFontSize sets the font size in points.
func (w *Writer) SetFontSize(size float64) {
	w.size = size
	w.pdf.SetFont(fontFamily, w.style, w.size)
}

// SetFontStyle sets the typeface style.
func (w *Writer) SetFontStyle(style report.FontStyle) {
	w.style = styleString(style)
	w.pdf.SetFont(fontFamily, w.style, w.size)
}

// SetTextColor sets the RGB text color.
func (w *Writer) SetTextColor(r, g, b int) {
	w.pdf.SetTextColor(r, g, b)
}

// SetDrawColor sets the RGB stroke color.
func (w *Writer) SetDrawColor(r, g, b int) {
	w.pdf.SetDrawColor(r, g, b)
}

// Text draws one line with its baseline at (x, y).
func (w *Writer) Text(content string, x, y float64) {
	w.pdf.Text(x, y, w.translate(content))
}

// Line draws a straight line between two points.
func (w *Writer) Line(x1, y1, x2, y2 float64) {
	w.pdf.Line(x1, y1, x2, y2)
}

// SplitText wraps content to the given width using the current font.
// fpdf's measurement is deterministic for identical inputs, as the
// contract requires.
func (w *Writer) SplitText(content string, width float64) []string {
	return w.pdf.SplitText(content, width)
}

// AddPage appends a new page and makes it current.
func (w *Writer) AddPage() {
	w.pdf.AddPage()
}

// SetPage makes an existing page current.
func (w *Writer) SetPage(n int) {
	w.pdf.SetPage(n)
}

// PageCount returns the number of pages so far.
func (w *Writer) PageCount() int {
	return w.pdf.PageCount()
}

// Save persists the document to the named file and closes it.
// Deferred fpdf errors surface here, so a broken document never silently
// produces a corrupt file.
func (w *Writer) Save(filename string) error {
	if w.pdf.Err() {
		return fmt.Errorf("compose document: %w", w.pdf.Error())
	}
	if err := w.pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("write document %s: %w", filename, err)
	}
	return nil
}
