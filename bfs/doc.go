// Package bfs implements bidirectional breadth-first search over a
// read-only vertex graph: FindShortestPath returns one shortest path
// between two vertices, and FindShortestPathDag returns the union of all
// edges that lie on some shortest path between them.
//
// Both algorithms expand the smaller of a forward and a backward fringe
// on each round, which keeps the number of vertices touched close to
// O(sqrt of the single-direction count) on graphs with roughly balanced
// branching factor, rather than the O(V+E) a one-directional search would
// need in the worst case.
//
// FindShortestPath packs the visited set into a single []uint32 array:
// a value in [1, VertexCount) is a parent pointer in the forward search
// tree, and a value with the top bit set is the bitwise complement of a
// parent pointer in the backward tree. FindShortestPathDag instead packs
// an 8-bit distance layer per vertex, with forward layers in [1,127] and
// backward layers in [128,255]. The forward side has room for 126 layers
// beyond start and the backward side for 127 beyond finish; a search that
// would need more on either side is rejected with ErrDistanceOverflow
// rather than silently truncated.
package bfs
