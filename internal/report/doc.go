// Package report renders an analysis result into report documents.
//
// This package contains two renderers:
//   - PDFComposer: paginated PDF output driven through the DocWriter contract
//   - MarkdownWriter: GitHub Flavored Markdown output for documentation and
//     sharing
//
// Design decision: We separate report rendering from the data structures
// (which are in the model package) so new output formats can be added without
// modifying the core types. The PDF renderer issues all physical drawing
// through the DocWriter interface; it never touches a PDF library directly,
// which keeps pagination logic testable with an in-memory fake.
package report
