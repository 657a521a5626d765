// Package main provides the entry point for the policyscan CLI.
//
// Policyscan turns privacy-policy analysis results into shareable reports.
// It reads analysis JSON files and renders paginated PDF or Markdown
// documents with a scorecard, risk findings, glossary, and privacy-rights
// information.
//
// Usage:
//
//	policyscan export analysis.json
//	policyscan export --markdown a.json b.json c.json
//
// See --help for all available options.
package main

// main is the entry point for policyscan.
func main() {
	Execute()
}
