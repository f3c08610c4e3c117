package bfs

import "errors"

// Sentinel errors returned by this package. Callers should branch with
// errors.Is, not string comparison.
var (
	// ErrGraphNil is returned when a nil GraphReader is passed in.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrInvalidVertex is returned when start or finish is 0 or outside
	// [1, VertexCount).
	ErrInvalidVertex = errors.New("bfs: invalid vertex id")

	// ErrDistanceOverflow is returned by FindShortestPathDag when the
	// shortest path length would exceed what the 8-bit distance layering
	// can represent. This is treated as "no path found" by callers, per
	// the error-handling policy in the design notes: it is logged as a
	// warning, not surfaced as a hard failure.
	ErrDistanceOverflow = errors.New("bfs: shortest path length exceeds distance width")
)

// GraphReader is the read-only adjacency surface bfs depends on. It is
// satisfied by *graphfile.Graph, and by any test fixture with the same
// shape.
type GraphReader interface {
	ForwardEdges(v uint32) []uint32
	BackwardEdges(v uint32) []uint32
	VertexCount() uint32
	EdgeCount() uint32
}

// Edge is one edge of a shortest-path DAG.
type Edge struct {
	U, V uint32
}
