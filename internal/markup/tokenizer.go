package markup

import (
	"regexp"
	"strings"

	"github.com/policyscan/policyscan/internal/model"
)

// Block-level line patterns.
var (
	headingLine  = regexp.MustCompile(`^(#{1,4})\s+(.+)$`)
	bulletLine   = regexp.MustCompile(`^[-*+]\s+(.+)$`)
	numberedLine = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// tokenizer accumulates blocks while scanning lines.
//
// Design decision: The paragraph buffer is managed by an explicit flush
// transition invoked on every boundary condition (blank line, heading, bullet,
// numbered item, end of input) rather than implicit early-continue control
// flow. Every path that emits a typed block flushes first, so paragraph text
// can never leak past a boundary.
type tokenizer struct {
	blocks []model.ContentBlock

	// buf holds consecutive plain lines awaiting merger into one paragraph.
	buf []string
}

// flush converts any buffered plain lines into a single paragraph block.
// Buffered lines are joined by single spaces and inline-stripped as one unit.
func (t *tokenizer) flush() {
	if len(t.buf) == 0 {
		return
	}
	text := StripInline(strings.Join(t.buf, " "))
	t.blocks = append(t.blocks, model.Paragraph(text))
	t.buf = nil
}

// line consumes one raw line.
func (t *tokenizer) line(raw string) {
	line := strings.TrimRight(raw, "\r")

	if strings.TrimSpace(line) == "" {
		t.flush()
		return
	}
	if m := headingLine.FindStringSubmatch(line); m != nil {
		t.flush()
		t.blocks = append(t.blocks, model.Heading(len(m[1]), StripInline(m[2])))
		return
	}
	if m := bulletLine.FindStringSubmatch(line); m != nil {
		t.flush()
		t.blocks = append(t.blocks, model.Bullet(StripInline(m[1])))
		return
	}
	if m := numberedLine.FindStringSubmatch(line); m != nil {
		t.flush()
		t.blocks = append(t.blocks, model.Numbered(StripInline(m[1])))
		return
	}

	// Plain line: accumulate. Consecutive plain lines merge into one paragraph.
	t.buf = append(t.buf, strings.TrimSpace(line))
}

// Tokenize scans raw narrative text into an ordered sequence of content
// blocks. The whole input is tokenized eagerly; documents are bounded in
// size, so there is no need for a streaming interface. Empty input produces
// an empty (nil) sequence.
func Tokenize(text string) []model.ContentBlock {
	if text == "" {
		return nil
	}
	var t tokenizer
	for _, raw := range strings.Split(text, "\n") {
		t.line(raw)
	}
	t.flush()
	return t.blocks
}
