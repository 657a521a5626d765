// Package database provides SQLite-based persistence for export history.
//
// Each completed export is recorded with its source, derived score and
// grade, per-severity risk counts, and output path, so users can review
// past analyses with the history command. The store uses modernc.org/sqlite,
// a pure-Go driver, so no cgo toolchain is required.
//
// History is strictly best-effort from the exporter's point of view: the
// export pipeline logs and ignores recording failures.
package database
