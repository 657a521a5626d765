package report

// FontStyle selects the typeface style for subsequent text.
type FontStyle int

const (
	// FontRegular is the default body style.
	FontRegular FontStyle = iota

	// FontBold is used for titles, headings, and labels.
	FontBold

	// FontItalic is used for secondary annotations.
	FontItalic
)

// DocWriter is the drawing backend the PDF composer issues commands to.
// It is a contract, not an implementation detail: the composer depends only
// on this interface, and tests substitute an in-memory fake.
//
// Coordinates and widths are in millimetres on an A4 page. SplitText is the
// only layout-measurement primitive the composer relies on; implementations
// must make it deterministic for identical inputs.
type DocWriter interface {
	// SetFontSize sets the font size in points for subsequent text.
	SetFontSize(size float64)

	// SetFontStyle sets the typeface style for subsequent text.
	SetFontStyle(style FontStyle)

	// SetTextColor sets the RGB text color for subsequent text.
	SetTextColor(r, g, b int)

	// SetDrawColor sets the RGB stroke color for subsequent lines.
	SetDrawColor(r, g, b int)

	// Text draws one line of text with its baseline at (x, y).
	Text(content string, x, y float64)

	// Line draws a straight line between two points.
	Line(x1, y1, x2, y2 float64)

	// SplitText wraps content to the given width using the current font and
	// returns the resulting lines.
	SplitText(content string, width float64) []string

	// AddPage appends a new page and makes it current.
	AddPage()

	// SetPage makes an existing page (1-based) current. Used by the footer
	// pass, which revisits every page once the total count is known.
	SetPage(n int)

	// PageCount returns the number of pages in the document so far.
	PageCount() int

	// Save persists the finished document to the named file.
	// This is the only operation that can fail; a save failure is the one
	// fatal condition of an export.
	Save(filename string) error
}
