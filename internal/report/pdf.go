package report

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/policyscan/policyscan/internal/markup"
	"github.com/policyscan/policyscan/internal/model"
)

// Font sizes in points.
const (
	fontTitle   = 18.0
	fontSection = 13.0
	fontLabel   = 10.5
	fontBody    = 10.0
	fontDetail  = 9.5
	fontFooter  = 8.0
)

// Vertical rhythm in millimetres.
const (
	// baselineShare places the text baseline within a line box.
	baselineShare = 0.75

	// hangIndent is the hanging indent for bullet and numbered items.
	hangIndent = 6.0

	// sectionGap is the leading space before a section title.
	sectionGap = 6.0

	// blockGap separates paragraphs, list runs, and entries.
	blockGap = 2.0

	// footerBaseline is the distance of the footer baseline from the page
	// bottom, inside the bottom margin.
	footerBaseline = 12.0
)

// lineHeight converts a point size to a line box height in millimetres.
func lineHeight(size float64) float64 {
	return size * 0.5
}

// rgb is a plain color triple for the DocWriter contract.
type rgb struct{ r, g, b int }

var (
	colorPrimary = rgb{31, 41, 55}
	colorMuted   = rgb{107, 114, 128}
	colorAccent  = rgb{29, 78, 216}
	colorRule    = rgb{209, 213, 219}

	colorDanger  = rgb{185, 28, 28}
	colorWarning = rgb{180, 83, 9}
	colorSuccess = rgb{21, 128, 61}
)

// severityColor maps a risk severity to its display color.
func severityColor(s model.Severity) rgb {
	switch s {
	case model.SeverityCritical, model.SeverityHigh:
		return colorDanger
	case model.SeverityMedium:
		return colorWarning
	default:
		return colorSuccess
	}
}

// levelColor maps a category score level to its display color.
// Visual emphasis only; the score arithmetic never depends on it.
func levelColor(l model.ScoreLevel) rgb {
	switch l {
	case model.LevelSuccess:
		return colorSuccess
	case model.LevelWarning:
		return colorWarning
	default:
		return colorDanger
	}
}

// PDFComposer renders an analysis result as a paginated document through the
// DocWriter contract. One composer serves one export: it owns the cursor and
// is discarded when composition finishes.
type PDFComposer struct {
	doc    DocWriter
	cur    *Cursor
	logger *slog.Logger
}

// PDFOption configures a PDFComposer.
type PDFOption func(*PDFComposer)

// WithPDFLogger sets a custom logger for the composer.
func WithPDFLogger(logger *slog.Logger) PDFOption {
	return func(p *PDFComposer) {
		p.logger = logger
	}
}

// NewPDFComposer creates a composer drawing to the given backend.
// The backend must have its first page open.
func NewPDFComposer(doc DocWriter, opts ...PDFOption) *PDFComposer {
	p := &PDFComposer{
		doc: doc,
		cur: NewCursor(doc),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Compose renders the full report in fixed section order and finishes with
// the footer pass. Missing optional data omits its section; composition
// itself cannot fail, only the later save can.
func (p *PDFComposer) Compose(res *model.AnalysisResult) {
	p.composeTitle(res)
	p.composeScorecard(res.Scorecard)
	p.composeSummary(res.Summary)
	p.composeRisks(res)
	p.composeGlossary(res.KeyTerms)
	p.composeRights(res.Rights)
	p.stampFooters()

	p.logger.Debug("report composed",
		"pages", p.doc.PageCount(),
		"risks", len(res.Risks),
		"terms", len(res.KeyTerms),
	)
}

// Title derives the report title from the document source.
//
// URL sources become "<Hostname label> Privacy Policy Analysis" with a leading
// "www." stripped and the first hostname label capitalized; any parse failure
// falls back to the generic title rather than propagating. Filename sources
// drop a trailing ".pdf" and get " Analysis" appended.
func Title(source string) string {
	const generic = "Privacy Policy Analysis"

	s := strings.TrimSpace(source)
	if s == "" || s == model.UnknownSource {
		return generic
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		u, err := url.Parse(s)
		if err != nil || u.Hostname() == "" {
			return generic
		}
		host := strings.TrimPrefix(u.Hostname(), "www.")
		label, _, _ := strings.Cut(host, ".")
		if label == "" {
			return generic
		}
		return cases.Title(language.English).String(label) + " Privacy Policy Analysis"
	}

	return strings.TrimSuffix(s, ".pdf") + " Analysis"
}

// formatAnalyzedAt formats the analysis timestamp for the metadata line.
func formatAnalyzedAt(res *model.AnalysisResult) string {
	t, ok := res.AnalyzedTime()
	if !ok {
		return model.UnknownDate
	}
	return t.Format("January 2, 2006 at 3:04 PM")
}

// setFont applies style, size, and color in one call.
func (p *PDFComposer) setFont(style FontStyle, size float64, color rgb) {
	p.doc.SetFontStyle(style)
	p.doc.SetFontSize(size)
	p.doc.SetTextColor(color.r, color.g, color.b)
}

// writeLine draws one pre-wrapped line at x and advances the cursor.
func (p *PDFComposer) writeLine(text string, x, size float64) {
	lh := lineHeight(size)
	p.cur.EnsureSpace(lh)
	p.doc.Text(text, x, p.cur.Y()+lh*baselineShare)
	p.cur.Advance(lh)
}

// writeWrapped word-wraps text to width and draws it line by line.
// The page-break check runs per line, so a long block splits across pages.
func (p *PDFComposer) writeWrapped(text string, x, width, size float64) {
	for _, line := range p.doc.SplitText(text, width) {
		p.writeLine(line, x, size)
	}
}

// writeHanging draws a prefixed list item with hanging-indented continuation
// lines: the prefix (bullet glyph or running number) sits in the indent gutter
// and wrapped lines align past it.
func (p *PDFComposer) writeHanging(prefix, text string, size float64) {
	lines := p.doc.SplitText(text, ContentWidth-hangIndent)
	for i, line := range lines {
		lh := lineHeight(size)
		p.cur.EnsureSpace(lh)
		if i == 0 {
			p.doc.Text(prefix, MarginLeft, p.cur.Y()+lh*baselineShare)
		}
		p.doc.Text(line, MarginLeft+hangIndent, p.cur.Y()+lh*baselineShare)
		p.cur.Advance(lh)
	}
}

// sectionTitle draws a section heading, reserving room for one body line so
// the heading is not orphaned at the bottom of a page when avoidable.
func (p *PDFComposer) sectionTitle(label string) {
	p.cur.Advance(sectionGap)
	p.cur.EnsureSpace(lineHeight(fontSection) + lineHeight(fontBody))
	p.setFont(FontBold, fontSection, colorPrimary)
	p.writeLine(label, MarginLeft, fontSection)
	p.cur.Advance(blockGap)
}

// composeTitle draws the title block and metadata line.
func (p *PDFComposer) composeTitle(res *model.AnalysisResult) {
	p.setFont(FontBold, fontTitle, colorAccent)
	p.writeLine(Title(res.Source), MarginLeft, fontTitle)
	p.cur.Advance(blockGap)

	p.setFont(FontRegular, fontDetail, colorMuted)
	p.writeLine("Source: "+res.Source, MarginLeft, fontDetail)
	p.writeLine("Analyzed: "+formatAnalyzedAt(res), MarginLeft, fontDetail)
	p.cur.Advance(blockGap)
	p.cur.Rule(colorRule.r, colorRule.g, colorRule.b)
}

// composeScorecard draws the weighted category scorecard.
// Omitted entirely when the analysis carries no scorecard.
func (p *PDFComposer) composeScorecard(sc *model.Scorecard) {
	if sc == nil {
		return
	}
	p.sectionTitle("Privacy Scorecard")

	p.setFont(FontBold, fontLabel, colorPrimary)
	p.writeLine(fmt.Sprintf("Overall Grade: %s (%d/100)", sc.LetterGrade(), sc.Overall()),
		MarginLeft, fontLabel)
	p.cur.Advance(blockGap)

	// Fixed weight-descending order from the category table, never map order.
	for _, def := range model.Categories {
		score := sc.CategoryValue(def.Key)
		p.setFont(FontBold, fontBody, levelColor(model.LevelForScore(score)))
		p.writeLine(fmt.Sprintf("%s: %d/10 (weight %d%%)", def.Label, score, def.Weight),
			MarginLeft, fontBody)

		if summary := sc.Categories[def.Key].Summary; summary != "" {
			p.setFont(FontRegular, fontDetail, colorMuted)
			p.writeWrapped(summary, MarginLeft+hangIndent, ContentWidth-hangIndent, fontDetail)
		}
	}

	p.composeHighlights("Top Concerns", sc.TopConcerns)
	p.composeHighlights("Positive Aspects", sc.PositiveAspects)
}

// composeHighlights draws up to three bulleted highlight entries.
func (p *PDFComposer) composeHighlights(label string, items []string) {
	if len(items) == 0 {
		return
	}
	if len(items) > 3 {
		items = items[:3]
	}
	p.cur.Advance(blockGap)
	p.setFont(FontBold, fontLabel, colorPrimary)
	p.writeLine(label, MarginLeft, fontLabel)
	p.setFont(FontRegular, fontBody, colorPrimary)
	for _, item := range items {
		p.writeHanging("•", item, fontBody)
	}
}

// headingSize scales heading sizes by level, level 1 largest.
func headingSize(level int) float64 {
	switch level {
	case 1:
		return 14.5
	case 2:
		return 13.0
	case 3:
		return 11.5
	default:
		return 10.5
	}
}

// composeSummary tokenizes the richest summary tier and renders its blocks.
func (p *PDFComposer) composeSummary(s model.Summary) {
	p.sectionTitle("Summary")

	// The numbered counter resets at section start and whenever a heading
	// or paragraph interrupts a numbered run.
	counter := 0

	for _, block := range markup.Tokenize(s.Best()) {
		switch block.Kind {
		case model.BlockHeading:
			counter = 0
			size := headingSize(block.Level)
			// Reserve one following body line so the heading is not left
			// orphaned at the very bottom of a page. Best effort only.
			p.cur.Advance(blockGap)
			p.cur.EnsureSpace(lineHeight(size) + lineHeight(fontBody))
			p.setFont(FontBold, size, colorPrimary)
			p.writeLine(block.Text, MarginLeft, size)

		case model.BlockParagraph:
			counter = 0
			p.setFont(FontRegular, fontBody, colorPrimary)
			p.writeWrapped(block.Text, MarginLeft, ContentWidth, fontBody)
			p.cur.Advance(blockGap)

		case model.BlockBullet:
			p.setFont(FontRegular, fontBody, colorPrimary)
			p.writeHanging("•", block.Text, fontBody)

		case model.BlockNumbered:
			counter++
			p.setFont(FontRegular, fontBody, colorPrimary)
			p.writeHanging(fmt.Sprintf("%d.", counter), block.Text, fontBody)
		}
	}
}

// composeRisks draws the severity-ordered risk list.
// Omitted entirely when the analysis carries no risks.
func (p *PDFComposer) composeRisks(res *model.AnalysisResult) {
	if len(res.Risks) == 0 {
		return
	}
	p.sectionTitle("Risk Findings")

	for _, risk := range res.SortedRisks() {
		// Keep the title and severity label together with at least one
		// description line where possible.
		p.cur.EnsureSpace(lineHeight(fontLabel) + 2*lineHeight(fontBody))

		p.setFont(FontBold, fontLabel, colorPrimary)
		p.writeLine(risk.Title, MarginLeft, fontLabel)

		c := severityColor(risk.Severity)
		p.setFont(FontBold, fontDetail, c)
		p.writeLine(risk.Severity.Label(), MarginLeft, fontDetail)

		if risk.Description != "" {
			p.setFont(FontRegular, fontBody, colorPrimary)
			p.writeWrapped(risk.Description, MarginLeft, ContentWidth, fontBody)
		}
		if risk.Explanation != "" {
			p.setFont(FontRegular, fontDetail, colorMuted)
			p.writeWrapped(risk.Explanation, MarginLeft, ContentWidth, fontDetail)
		}
		if risk.Recommendation != "" {
			p.setFont(FontRegular, fontDetail, colorMuted)
			p.writeWrapped("Recommendation: "+risk.Recommendation,
				MarginLeft, ContentWidth, fontDetail)
		}
		if len(risk.Sections) > 0 {
			p.setFont(FontItalic, fontDetail, colorMuted)
			p.writeWrapped("Related sections: "+strings.Join(risk.Sections, ", "),
				MarginLeft, ContentWidth, fontDetail)
		}
		p.cur.Advance(blockGap)
	}
}

// composeGlossary draws key terms in input order.
// Sorting is a presentation-layer concern that belongs upstream.
func (p *PDFComposer) composeGlossary(terms []model.KeyTerm) {
	if len(terms) == 0 {
		return
	}
	p.sectionTitle("Key Terms")

	for _, term := range terms {
		p.cur.EnsureSpace(lineHeight(fontLabel) + lineHeight(fontBody))

		p.setFont(FontBold, fontLabel, colorPrimary)
		p.writeLine(term.Term, MarginLeft, fontLabel)

		p.setFont(FontRegular, fontBody, colorPrimary)
		p.writeWrapped(term.Definition, MarginLeft, ContentWidth, fontBody)

		if note := glossaryNote(term); note != "" {
			p.setFont(FontItalic, fontDetail, colorMuted)
			p.writeLine(note, MarginLeft, fontDetail)
		}
		p.cur.Advance(blockGap)
	}
}

// glossaryNote formats the optional location/category annotation of a term.
func glossaryNote(term model.KeyTerm) string {
	switch {
	case term.Location != "" && term.Category != "":
		return fmt.Sprintf("Location: %s (%s)", term.Location, term.Category)
	case term.Location != "":
		return "Location: " + term.Location
	case term.Category != "":
		return "Category: " + term.Category
	default:
		return ""
	}
}

// composeRights draws the actionable privacy-rights section.
// Omitted entirely when the info block declares no actionable content.
func (p *PDFComposer) composeRights(rights *model.PrivacyRightsInfo) {
	if !rights.HasActionable() {
		return
	}
	p.sectionTitle("Your Privacy Rights")

	if len(rights.Links) > 0 {
		p.subLabel("Helpful Links")
		p.setFont(FontRegular, fontBody, colorPrimary)
		for _, link := range rights.Links {
			label := link.Label
			if label == "" {
				label = link.URL
			} else if link.URL != "" {
				label += ": " + link.URL
			}
			p.writeHanging("•", label, fontBody)
		}
	}

	if len(rights.Contacts) > 0 {
		p.subLabel("Contacts")
		p.setFont(FontRegular, fontBody, colorPrimary)
		for _, contact := range rights.Contacts {
			p.writeHanging("•", contactLabel(contact.Type)+": "+contact.Value, fontBody)
		}
	}

	for _, proc := range rights.Procedures {
		title := proc.Title
		if title == "" {
			title = "Procedure"
		}
		p.subLabel(title)
		p.setFont(FontRegular, fontBody, colorPrimary)
		for i, step := range proc.Steps {
			p.writeHanging(fmt.Sprintf("%d.", i+1), step, fontBody)
		}
		if len(proc.Requirements) > 0 {
			p.setFont(FontItalic, fontDetail, colorMuted)
			p.writeLine("Requirements:", MarginLeft, fontDetail)
			p.setFont(FontRegular, fontDetail, colorMuted)
			for _, req := range proc.Requirements {
				p.writeHanging("•", req, fontDetail)
			}
		}
	}

	if len(rights.Timeframes) > 0 {
		p.subLabel("Response Timeframes")
		p.setFont(FontRegular, fontBody, colorPrimary)
		for _, tf := range rights.Timeframes {
			p.writeHanging("•", tf.Action+": "+tf.Window, fontBody)
		}
	}
}

// subLabel draws a bold sub-heading within a section.
func (p *PDFComposer) subLabel(label string) {
	p.cur.Advance(blockGap)
	p.cur.EnsureSpace(lineHeight(fontLabel) + lineHeight(fontBody))
	p.setFont(FontBold, fontLabel, colorPrimary)
	p.writeLine(label, MarginLeft, fontLabel)
}

// contactLabel formats a contact type for display. "dpo" is an initialism
// and stays fully capitalized; everything else is title-cased.
func contactLabel(contactType string) string {
	t := strings.TrimSpace(contactType)
	if t == "" {
		return "Contact"
	}
	if strings.EqualFold(t, "dpo") {
		return "DPO"
	}
	return cases.Title(language.English).String(t)
}

// stampFooters revisits every page and stamps a centered "Page X of N"
// footer. This must run last: the total is unknown until drawing completes.
func (p *PDFComposer) stampFooters() {
	total := p.doc.PageCount()
	for i := 1; i <= total; i++ {
		p.doc.SetPage(i)
		p.setFont(FontRegular, fontFooter, colorMuted)
		label := fmt.Sprintf("Page %d of %d", i, total)
		x := (PageWidth - approxTextWidth(label, fontFooter)) / 2
		p.doc.Text(label, x, PageHeight-footerBaseline)
	}
}

// approxTextWidth estimates rendered width in millimetres.
// The DocWriter contract exposes no width query (SplitText is its only
// measurement primitive), so centering uses an average-glyph estimate.
func approxTextWidth(s string, size float64) float64 {
	const mmPerPointGlyph = 0.176 // 0.3528 mm/pt x ~0.5 em average glyph
	return float64(len(s)) * size * mmPerPointGlyph
}
