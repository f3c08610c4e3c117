package graphfile

import (
	"bytes"
	"io"
	"sort"
)

// BuildGraph assembles a graph from individual edges in memory, then
// produces the same CSR representation the mmap reader produces. It
// exists for tests and fixture tools that already have edges in hand;
// it intentionally does not parse any source format — that remains the
// job of the (out of scope) MediaWiki indexer.
//
// A BuildGraph is not safe for concurrent use.
type BuildGraph struct {
	maxVertex uint32
	forward   map[uint32]map[uint32]struct{}
	backward  map[uint32]map[uint32]struct{}
}

// NewBuildGraph returns an empty builder.
func NewBuildGraph() *BuildGraph {
	return &BuildGraph{
		forward:  make(map[uint32]map[uint32]struct{}),
		backward: make(map[uint32]map[uint32]struct{}),
	}
}

// AddEdge records a directed edge u->v. Duplicate edges are ignored
// (each edge is stored once); self-loops are rejected.
func (b *BuildGraph) AddEdge(u, v uint32) error {
	if u == 0 || v == 0 {
		return ErrInvalidVertex
	}
	if u == v {
		return ErrSelfLoop
	}
	if b.forward[u] == nil {
		b.forward[u] = make(map[uint32]struct{})
	}
	b.forward[u][v] = struct{}{}
	if b.backward[v] == nil {
		b.backward[v] = make(map[uint32]struct{})
	}
	b.backward[v][u] = struct{}{}
	b.track(u)
	b.track(v)
	return nil
}

func (b *BuildGraph) track(v uint32) {
	if v > b.maxVertex {
		b.maxVertex = v
	}
}

// Finalize sorts and deduplicates every adjacency row, encodes the result
// using the same codec as the on-disk format, and decodes it back into a
// *Graph backed by the resulting byte slice (no real memory mapping is
// involved; Close is a no-op).
func (b *BuildGraph) Finalize() (*Graph, error) {
	vertexCount := b.maxVertex + 1
	forward := make([][]uint32, vertexCount)
	backward := make([][]uint32, vertexCount)
	for v := uint32(0); v < vertexCount; v++ {
		forward[v] = sortedKeys(b.forward[v])
		backward[v] = sortedKeys(b.backward[v])
	}

	var buf bytes.Buffer
	if err := encodeAdjacency(&buf, vertexCount, forward, backward); err != nil {
		return nil, err
	}
	return decode(buf.Bytes(), nil)
}

// Encode is equivalent to Finalize but returns the raw encoded bytes,
// for callers that want to persist the result to a file themselves.
func (b *BuildGraph) Encode() ([]byte, error) {
	vertexCount := b.maxVertex + 1
	forward := make([][]uint32, vertexCount)
	backward := make([][]uint32, vertexCount)
	for v := uint32(0); v < vertexCount; v++ {
		forward[v] = sortedKeys(b.forward[v])
		backward[v] = sortedKeys(b.backward[v])
	}
	var buf bytes.Buffer
	if err := encodeAdjacency(&buf, vertexCount, forward, backward); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes b and copies the result to w, for tools that want to
// persist a BuildGraph as a graph file.
func Write(w io.Writer, b *BuildGraph) error {
	data, err := b.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func sortedKeys(m map[uint32]struct{}) []uint32 {
	out := make([]uint32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
