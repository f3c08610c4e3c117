// Package wikipath finds and explains shortest paths through the
// Wikipedia hyperlink graph — from a compact, mmap-friendly graph file
// on disk to a fully annotated DAG of every shortest path between two
// pages.
//
// What is wikipath?
//
//	A read-only path-search service that brings together:
//		• graphfile — a binary CSR graph format, memory-mapped for
//		  zero-copy reads, with four locking policies for trading
//		  startup latency against steady-state page faults
//		• metadata — page titles and link display text, served from an
//		  embedded, read-only SQLite database
//		• bfs — bidirectional breadth-first search, both for a single
//		  shortest path and for the full DAG of every shortest path
//		• dag — lazy title/text resolution, path counting, locale-aware
//		  link ordering, and both recursive and iterative path
//		  enumeration over that DAG
//		• wikisearch — a facade gluing the graph and metadata stores
//		  together behind the page-reference grammar the CLI accepts
//
// Why this shape?
//
//   - Read path stays lock-free and allocation-light: the graph file is
//     mapped once and never copied; page titles are resolved lazily and
//     memoized once per lookup.
//   - Pure Go — no cgo, via modernc.org/sqlite for metadata.
//   - Every shortest path is a property of the DAG, not a side effect of
//     one BFS run: counting, enumerating, and rendering it to DOT all
//     walk the same structure.
//
// Under the hood, everything is organized under five subpackages:
//
//	bfs/        — bidirectional BFS: single path and full shortest-path DAG
//	dag/        — annotated DAG: titles, link text, counting, enumeration
//	graphfile/  — binary graph format: builder, codec, mmap reader
//	metadata/   — page/link metadata store backed by SQLite
//	wikisearch/ — facade combining graphfile + metadata for the CLI
//
// See cmd/search for the query tool and cmd/buildgraph for turning a
// plain edge list into a graphfile.
package wikipath
