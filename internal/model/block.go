package model

// BlockKind identifies the type of a tokenized content block.
type BlockKind int

const (
	// BlockHeading is a heading line, level 1-4.
	BlockHeading BlockKind = iota

	// BlockParagraph is one or more merged plain lines.
	BlockParagraph

	// BlockBullet is a single bulleted list item.
	BlockBullet

	// BlockNumbered is a single numbered list item.
	BlockNumbered
)

// ContentBlock is one typed unit of narrative content produced by the block
// tokenizer. Blocks are created per tokenizer invocation, consumed immediately
// by the renderer, and never persisted or shared across exports.
type ContentBlock struct {
	// Kind is the block type.
	Kind BlockKind

	// Level is the heading level (1-4) for BlockHeading, zero otherwise.
	Level int

	// Text is the block's visible text, already inline-stripped.
	Text string
}

// Heading constructs a heading block.
func Heading(level int, text string) ContentBlock {
	return ContentBlock{Kind: BlockHeading, Level: level, Text: text}
}

// Paragraph constructs a paragraph block.
func Paragraph(text string) ContentBlock {
	return ContentBlock{Kind: BlockParagraph, Text: text}
}

// Bullet constructs a bulleted list item block.
func Bullet(text string) ContentBlock {
	return ContentBlock{Kind: BlockBullet, Text: text}
}

// Numbered constructs a numbered list item block.
func Numbered(text string) ContentBlock {
	return ContentBlock{Kind: BlockNumbered, Text: text}
}
