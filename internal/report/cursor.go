package report

// Page geometry in millimetres (A4, portrait).
const (
	// PageWidth is the physical page width.
	PageWidth = 210.0

	// PageHeight is the physical page height.
	PageHeight = 297.0

	// MarginLeft and MarginRight bound the content horizontally.
	MarginLeft  = 15.0
	MarginRight = 15.0

	// MarginTop is where the cursor resets after a page break.
	MarginTop = 20.0

	// MarginBottom is the reserved space at the bottom of every page;
	// the footer pass stamps page numbers inside it.
	MarginBottom = 20.0

	// ContentWidth is the usable width for wrapped text.
	ContentWidth = PageWidth - MarginLeft - MarginRight

	// ruleGap is the vertical space a horizontal rule consumes.
	ruleGap = 4.0
)

// Cursor tracks the current vertical position and page index during
// composition. It is the only mutable state of an export: one instance per
// export, owned exclusively by that export, mutated in place by every draw
// operation, and discarded when the export completes.
type Cursor struct {
	doc  DocWriter
	y    float64
	page int
}

// NewCursor creates a cursor positioned at the top margin of page one.
// The DocWriter must already have its first page open.
func NewCursor(doc DocWriter) *Cursor {
	return &Cursor{doc: doc, y: MarginTop, page: 1}
}

// Y returns the current vertical position.
func (c *Cursor) Y() float64 {
	return c.y
}

// Page returns the current 1-based page index.
func (c *Cursor) Page() int {
	return c.page
}

// EnsureSpace breaks the page when needed millimetres would overflow the
// bottom margin, resetting the cursor to the top margin of a fresh page.
// It reports whether a break occurred.
//
// Every composition step that draws must call this first, sized to the height
// it is about to consume. Multi-line wrapped blocks call it per line, so a
// block can itself split across a page boundary; there is no look-ahead
// beyond the immediate next draw.
func (c *Cursor) EnsureSpace(needed float64) bool {
	if c.y+needed <= PageHeight-MarginBottom {
		return false
	}
	c.doc.AddPage()
	c.page++
	c.y = MarginTop
	return true
}

// Advance moves the cursor down by h millimetres.
func (c *Cursor) Advance(h float64) {
	c.y += h
}

// Rule draws a full-width horizontal rule in the given color and advances
// past it.
func (c *Cursor) Rule(r, g, b int) {
	c.EnsureSpace(ruleGap)
	c.doc.SetDrawColor(r, g, b)
	c.doc.Line(MarginLeft, c.y, PageWidth-MarginRight, c.y)
	c.y += ruleGap
}
