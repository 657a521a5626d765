// Package log provides policyscan's structured logging built on log/slog.
//
// Analysis inputs describe real privacy policies, and their metadata can
// carry contact addresses and other personal data. The RedactHandler wrapper
// masks attribute values that look like credentials or personal contact
// information before they reach the underlying handler, so log output stays
// safe to share in bug reports.
package log
