package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/policyscan/policyscan/internal/markup"
	"github.com/policyscan/policyscan/internal/model"
)

// MarkdownWriter outputs an analysis report in Markdown format.
// This format is designed for documentation and sharing; the PDF renderer
// remains the primary export path.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the full analysis report in Markdown format.
// Returns the number of bytes generated and any error from building the
// document.
func (w *MarkdownWriter) Write(res *model.AnalysisResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, res)
	w.writeScorecard(md, res.Scorecard)
	w.writeSummary(md, res.Summary)
	w.writeRisks(md, res)
	w.writeGlossary(md, res.KeyTerms)
	w.writeRights(md, res.Rights)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and metadata table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, res *model.AnalysisResult) {
	md.H1(Title(res.Source))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", res.Source},
			{"Analyzed", formatAnalyzedAt(res)},
		},
	})
	md.PlainText("")

	// Alert chosen by the worst severity present.
	switch {
	case res.CountBySeverity(model.SeverityCritical) > 0:
		md.Cautionf("%d critical risk(s) identified in this policy.",
			res.CountBySeverity(model.SeverityCritical))
	case res.CountBySeverity(model.SeverityHigh) > 0:
		md.Warningf("%d high severity risk(s) identified in this policy.",
			res.CountBySeverity(model.SeverityHigh))
	case len(res.Risks) > 0:
		md.Note("Only medium and lower severity risks were identified.")
	default:
		md.Tip("No specific risks were identified in this policy.")
	}
	md.PlainText("")
}

// writeScorecard writes the weighted category table.
func (w *MarkdownWriter) writeScorecard(md *markdown.Markdown, sc *model.Scorecard) {
	if sc == nil {
		return
	}
	md.H2("Privacy Scorecard")
	md.PlainText("")
	md.PlainTextf("**Overall Grade: %s (%d/100)**", sc.LetterGrade(), sc.Overall())
	md.PlainText("")

	rows := make([][]string, 0, len(model.Categories))
	for _, def := range model.Categories {
		summary := sc.Categories[def.Key].Summary
		if summary == "" {
			summary = "-"
		}
		rows = append(rows, []string{
			def.Label,
			strconv.Itoa(sc.CategoryValue(def.Key)) + "/10",
			strconv.Itoa(def.Weight) + "%",
			summary,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Score", "Weight", "Summary"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeHighlights(md, "Top Concerns", sc.TopConcerns)
	w.writeHighlights(md, "Positive Aspects", sc.PositiveAspects)
}

// writeHighlights writes up to three bulleted highlight entries.
func (w *MarkdownWriter) writeHighlights(md *markdown.Markdown, label string, items []string) {
	if len(items) == 0 {
		return
	}
	if len(items) > 3 {
		items = items[:3]
	}
	md.PlainText("**" + label + "**")
	md.PlainText("")
	md.BulletList(items...)
	md.PlainText("")
}

// writeSummary renders the tokenized narrative blocks as markdown.
// Headings shift down one level so they nest under the section heading.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, s model.Summary) {
	md.H2("Summary")
	md.PlainText("")

	counter := 0
	for _, block := range markup.Tokenize(s.Best()) {
		switch block.Kind {
		case model.BlockHeading:
			counter = 0
			level := block.Level + 1
			if level > 4 {
				level = 4
			}
			md.PlainText(strings.Repeat("#", level) + " " + block.Text)
			md.PlainText("")
		case model.BlockParagraph:
			counter = 0
			md.PlainText(block.Text)
			md.PlainText("")
		case model.BlockBullet:
			md.BulletList(block.Text)
		case model.BlockNumbered:
			counter++
			md.PlainTextf("%d. %s", counter, block.Text)
		}
	}
	md.PlainText("")
}

// writeRisks writes risks in severity order as a table plus detail blocks.
func (w *MarkdownWriter) writeRisks(md *markdown.Markdown, res *model.AnalysisResult) {
	if len(res.Risks) == 0 {
		return
	}
	md.H2("Risk Findings")
	md.PlainText("")

	sorted := res.SortedRisks()
	rows := make([][]string, len(sorted))
	for i, risk := range sorted {
		desc := risk.Description
		if desc == "" {
			desc = "-"
		}
		rows[i] = []string{risk.Title, risk.Severity.Label(), desc}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Risk", "Severity", "Description"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, risk := range sorted {
		detail := riskDetail(risk)
		if detail == "" {
			continue
		}
		md.Details(risk.Title, detail)
	}
	md.PlainText("")
}

// riskDetail merges the optional explanation, recommendation, and related
// sections of a risk into one collapsible detail body.
func riskDetail(risk model.Risk) string {
	var parts []string
	if risk.Explanation != "" {
		parts = append(parts, risk.Explanation)
	}
	if risk.Recommendation != "" {
		parts = append(parts, "Recommendation: "+risk.Recommendation)
	}
	if len(risk.Sections) > 0 {
		parts = append(parts, "Related sections: "+strings.Join(risk.Sections, ", "))
	}
	return strings.Join(parts, " ")
}

// writeGlossary writes key terms in input order as collapsible definitions.
func (w *MarkdownWriter) writeGlossary(md *markdown.Markdown, terms []model.KeyTerm) {
	if len(terms) == 0 {
		return
	}
	md.H2("Key Terms")
	md.PlainText("")

	for _, term := range terms {
		definition := term.Definition
		if note := glossaryNote(term); note != "" {
			definition += " (" + note + ")"
		}
		md.Details(term.Term, definition)
	}
	md.PlainText("")
}

// writeRights writes the actionable privacy-rights section.
func (w *MarkdownWriter) writeRights(md *markdown.Markdown, rights *model.PrivacyRightsInfo) {
	if !rights.HasActionable() {
		return
	}
	md.H2("Your Privacy Rights")
	md.PlainText("")

	if len(rights.Links) > 0 {
		md.PlainText("**Helpful Links**")
		md.PlainText("")
		items := make([]string, len(rights.Links))
		for i, link := range rights.Links {
			items[i] = fmt.Sprintf("[%s](%s)", link.Label, link.URL)
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if len(rights.Contacts) > 0 {
		md.PlainText("**Contacts**")
		md.PlainText("")
		items := make([]string, len(rights.Contacts))
		for i, contact := range rights.Contacts {
			items[i] = contactLabel(contact.Type) + ": " + contact.Value
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	for _, proc := range rights.Procedures {
		title := proc.Title
		if title == "" {
			title = "Procedure"
		}
		md.PlainText("**" + title + "**")
		md.PlainText("")
		for i, step := range proc.Steps {
			md.PlainTextf("%d. %s", i+1, step)
		}
		if len(proc.Requirements) > 0 {
			md.PlainText("")
			md.PlainText("Requirements:")
			md.PlainText("")
			md.BulletList(proc.Requirements...)
		}
		md.PlainText("")
	}

	if len(rights.Timeframes) > 0 {
		md.PlainText("**Response Timeframes**")
		md.PlainText("")
		items := make([]string, len(rights.Timeframes))
		for i, tf := range rights.Timeframes {
			items[i] = tf.Action + ": " + tf.Window
		}
		md.BulletList(items...)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by policyscan*")
}
