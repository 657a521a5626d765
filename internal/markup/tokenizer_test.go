package markup

import (
	"reflect"
	"testing"

	"github.com/policyscan/policyscan/internal/model"
)

// TestTokenize tests block tokenization of narrative text.
func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []model.ContentBlock
	}{
		{
			name:  "mixed document",
			input: "## H\n\nPara text\n\n- b1\n- b2\n\n1. s1\n2. s2",
			want: []model.ContentBlock{
				model.Heading(2, "H"),
				model.Paragraph("Para text"),
				model.Bullet("b1"),
				model.Bullet("b2"),
				model.Numbered("s1"),
				model.Numbered("s2"),
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "blank lines only",
			input: "\n\n\n",
			want:  nil,
		},
		{
			name:  "consecutive plain lines merge",
			input: "first line\nsecond line\nthird line",
			want: []model.ContentBlock{
				model.Paragraph("first line second line third line"),
			},
		},
		{
			name:  "heading flushes paragraph buffer",
			input: "some text\n# Title",
			want: []model.ContentBlock{
				model.Paragraph("some text"),
				model.Heading(1, "Title"),
			},
		},
		{
			name:  "bullet flushes paragraph buffer",
			input: "intro\n- item",
			want: []model.ContentBlock{
				model.Paragraph("intro"),
				model.Bullet("item"),
			},
		},
		{
			name:  "trailing buffer flushed at end of input",
			input: "- item\ntrailing paragraph",
			want: []model.ContentBlock{
				model.Bullet("item"),
				model.Paragraph("trailing paragraph"),
			},
		},
		{
			name:  "heading levels one through four",
			input: "# a\n## b\n### c\n#### d",
			want: []model.ContentBlock{
				model.Heading(1, "a"),
				model.Heading(2, "b"),
				model.Heading(3, "c"),
				model.Heading(4, "d"),
			},
		},
		{
			name:  "five hashes is not a heading",
			input: "##### not a heading",
			want: []model.ContentBlock{
				model.Paragraph("##### not a heading"),
			},
		},
		{
			name:  "bullet markers dash star plus",
			input: "- a\n* b\n+ c",
			want: []model.ContentBlock{
				model.Bullet("a"),
				model.Bullet("b"),
				model.Bullet("c"),
			},
		},
		{
			name:  "multi-digit numbered item",
			input: "10. tenth step",
			want: []model.ContentBlock{
				model.Numbered("tenth step"),
			},
		},
		{
			name:  "inline markup stripped in every block kind",
			input: "## **Heading**\n\n*emphasis* text\n\n- `item`\n\n1. [step](http://x)",
			want: []model.ContentBlock{
				model.Heading(2, "Heading"),
				model.Paragraph("emphasis text"),
				model.Bullet("item"),
				model.Numbered("step"),
			},
		},
		{
			name:  "windows line endings",
			input: "# Title\r\n\r\nbody\r\n",
			want: []model.ContentBlock{
				model.Heading(1, "Title"),
				model.Paragraph("body"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
