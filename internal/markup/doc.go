// Package markup converts the lightweight markup in narrative summary text
// into typed content blocks for rendering.
//
// Two operations are provided:
//   - StripInline: removes emphasis, code, and link markup from one line,
//     keeping only the visible text
//   - Tokenize: scans a narrative string line by line into an ordered
//     sequence of model.ContentBlock values
//
// The package performs no HTML sanitization. Inbound text is trusted to have
// had active content removed upstream; only display markup is handled here.
package markup
