// Package graphfile implements the on-disk CSR encoding of the Wikipedia
// link graph, a read-only memory-mapped reader over that encoding, and an
// in-memory builder used to assemble graphs without going through a file.
//
// Layout
//
//	offset  field
//	0       magic          uint32 = 0x68707247 ('Grph')
//	4       reserved       uint32 = 0
//	8       vertex_count   uint32
//	12      edge_count     uint32
//	16      forward_index  [vertex_count+1]uint32
//	...     forward_edges  [edge_count]uint32
//	...     backward_index [vertex_count+1]uint32
//	...     backward_edges [edge_count]uint32
//
// Vertex 0 is a reserved sentinel: valid page ids are 1..vertex_count-1.
// Every adjacency row is sorted ascending and deduplicated, and contains
// no self-loops.
//
// Reading is zero-copy: ForwardEdges/BackwardEdges return slices that
// alias the backing buffer (a memory mapping, or a builder's own byte
// slice for in-memory graphs) rather than copying. This assumes a
// little-endian host, matching the file's declared byte order.
package graphfile
