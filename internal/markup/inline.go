package markup

import "regexp"

// Inline markup patterns. The patterns are non-overlapping per markup kind,
// so replacement order does not affect correctness; links go first anyway so
// that emphasis inside a link label is still stripped afterwards.
var (
	// [text](url) keeps the label and discards the URL.
	linkPattern = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

	// **text** / __text__
	boldPattern      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderPattern = regexp.MustCompile(`__([^_]+)__`)

	// *text* / _text_
	italicPattern      = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnderPattern = regexp.MustCompile(`_([^_]+)_`)

	// `code`
	codePattern = regexp.MustCompile("`([^`]+)`")
)

// StripInline removes inline markup delimiters from a single line of text,
// keeping only the visible text. Link URLs are discarded and only the label
// kept. The operation is idempotent: already-stripped text passes through
// unchanged. Empty input yields an empty string.
func StripInline(line string) string {
	if line == "" {
		return ""
	}
	line = linkPattern.ReplaceAllString(line, "$1")
	line = boldPattern.ReplaceAllString(line, "$1")
	line = boldUnderPattern.ReplaceAllString(line, "$1")
	line = italicPattern.ReplaceAllString(line, "$1")
	line = italicUnderPattern.ReplaceAllString(line, "$1")
	line = codePattern.ReplaceAllString(line, "$1")
	return line
}
