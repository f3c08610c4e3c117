// Package dag annotates a shortest-path edge set with page titles and
// link text, and supports counting, ordering, and streaming the paths
// it encodes, all without materializing them up front.
//
// An AnnotatedDag is built once from a bfs.Edge slice. Titles and link
// text are loaded lazily through a PageTextReader and memoized on first
// access, so a caller that only wants the path count never pays for a
// single metadata lookup.
package dag
