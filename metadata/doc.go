// Package metadata defines the lookup interface the graph core depends on
// for page titles and link display text, plus two implementations: a
// read-only SQLite-backed store for production use, and a map-backed
// store for tests and fixtures.
//
// The core never treats "not found" as an error: GetPageByID,
// GetPageByTitle and GetLink all return a boolean found flag alongside
// the value, and an error is reserved for genuine I/O or query failures.
package metadata
