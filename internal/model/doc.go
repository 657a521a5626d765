// Package model defines the core data structures used throughout policyscan.
//
// This package contains the following main types:
//   - AnalysisResult: The structured privacy-policy analysis produced upstream
//   - Scorecard: A weighted multi-category privacy rating with derived grade
//   - Risk: A single privacy risk with severity ranking
//   - ContentBlock: One typed unit of tokenized narrative content
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (markup, report, export, database) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be deserialized from the upstream analyzer's JSON
// output and serialized for database storage. All optional fields are resolved
// to concrete defaults at a single ingestion boundary (Normalize), so the
// rendering pipeline operates on fully-defaulted values.
package model
