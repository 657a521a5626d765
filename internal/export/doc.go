// Package export orchestrates the rendering of analysis results into saved
// report files.
//
// The Exporter drives one export end to end: it acquires a fresh document
// writer, runs the section composer, and persists the result under a
// timestamped filename. An export either completes and returns a saved file
// or fails with no caller-visible partial state.
//
// Pipeline and BatchProcessor wrap the Exporter for the CLI: a pipeline runs
// the load / render / record steps for one input file, and the batch
// processor runs many pipelines concurrently. Each export owns its cursor
// and writer, so concurrent exports never share mutable state and need no
// locking.
package export
