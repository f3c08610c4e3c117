package bfs

import (
	"fmt"
	"sort"
	"time"
)

// Distance layer encoding for FindShortestPathDag's dist[] array. A zero
// entry means "not yet reached". Forward layers grow upward from
// forwardBase and stay below backwardLayerFloor; backward layers shrink
// downward from backwardBase and stay at or above it. Once either side
// would leave its half of the range, the search reports
// ErrDistanceOverflow.
const (
	forwardBase  = uint8(1)
	backwardBase = uint8(255)

	// backwardLayerFloor is the smallest dist[] value that belongs to the
	// backward tree. Any already-assigned value below it belongs to the
	// forward tree.
	backwardLayerFloor = uint8(128)
)

// FindShortestPathDag returns every edge that lies on some shortest path
// from start to finish. The returned edges are sorted by (U, V) and
// together form a DAG whose sources are start and whose sinks are
// finish (when start != finish).
//
// If no path exists, it returns a nil, non-empty-vs-empty-is-meaningful
// edge slice: nil means no path, an empty non-nil slice means start ==
// finish.
func FindShortestPathDag(g GraphReader, start, finish uint32, stats StatsSink) ([]Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if stats == nil {
		stats = NoopStats{}
	}
	n := g.VertexCount()
	if start == 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d", ErrInvalidVertex, start)
	}
	if finish == 0 || finish >= n {
		return nil, fmt.Errorf("%w: finish=%d", ErrInvalidVertex, finish)
	}

	begin := time.Now()
	defer func() { stats.Done(time.Since(begin)) }()

	if start == finish {
		return []Edge{}, nil
	}

	dist := make([]uint8, n)
	marked := make([]bool, n)
	dist[start] = forwardBase
	dist[finish] = backwardBase
	marked[start] = true
	marked[finish] = true
	stats.VertexReached()
	stats.VertexReached()

	forwardFringe := []uint32{start}
	backwardFringe := []uint32{finish}
	forwardDist := forwardBase
	backwardDist := backwardBase

	propagateForward := []uint32{}
	propagateBackward := []uint32{}

	var edges []Edge
	found := false

	for len(forwardFringe) > 0 && len(backwardFringe) > 0 {
		if len(forwardFringe) <= len(backwardFringe) {
			if forwardDist+1 >= backwardLayerFloor {
				return nil, ErrDistanceOverflow
			}
			forwardDist++
			next := make([]uint32, 0, len(forwardFringe))
			for _, v := range forwardFringe {
				stats.VertexExpanded()
				neighbors := g.ForwardEdges(v)
				stats.EdgesExpanded(len(neighbors))
				for _, w := range neighbors {
					switch {
					case dist[w] == 0:
						dist[w] = forwardDist
						stats.VertexReached()
						next = append(next, w)
					case dist[w] >= backwardLayerFloor:
						edges = append(edges, Edge{U: v, V: w})
						found = true
						if !marked[v] {
							marked[v] = true
							propagateBackward = append(propagateBackward, v)
						}
						if !marked[w] {
							marked[w] = true
							propagateForward = append(propagateForward, w)
						}
					}
				}
			}
			forwardFringe = next
		} else {
			if backwardDist-1 < backwardLayerFloor {
				return nil, ErrDistanceOverflow
			}
			backwardDist--
			next := make([]uint32, 0, len(backwardFringe))
			for _, v := range backwardFringe {
				stats.VertexExpanded()
				neighbors := g.BackwardEdges(v)
				stats.EdgesExpanded(len(neighbors))
				for _, w := range neighbors {
					switch {
					case dist[w] == 0:
						dist[w] = backwardDist
						stats.VertexReached()
						next = append(next, w)
					case dist[w] < backwardLayerFloor:
						edges = append(edges, Edge{U: w, V: v})
						found = true
						if !marked[v] {
							marked[v] = true
							propagateForward = append(propagateForward, v)
						}
						if !marked[w] {
							marked[w] = true
							propagateBackward = append(propagateBackward, w)
						}
					}
				}
			}
			backwardFringe = next
		}
		if found {
			break
		}
	}

	if !found {
		return nil, nil
	}

	for i := 0; i < len(propagateBackward); i++ {
		w := propagateBackward[i]
		for _, v := range g.BackwardEdges(w) {
			if dist[v] != 0 && dist[v]+1 == dist[w] {
				edges = append(edges, Edge{U: v, V: w})
				if !marked[v] {
					marked[v] = true
					propagateBackward = append(propagateBackward, v)
				}
			}
		}
	}
	for i := 0; i < len(propagateForward); i++ {
		v := propagateForward[i]
		for _, w := range g.ForwardEdges(v) {
			if dist[w] != 0 && dist[v]+1 == dist[w] {
				edges = append(edges, Edge{U: v, V: w})
				if !marked[w] {
					marked[w] = true
					propagateForward = append(propagateForward, w)
				}
			}
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return dedupEdges(edges), nil
}

func dedupEdges(edges []Edge) []Edge {
	if len(edges) < 2 {
		return edges
	}
	out := edges[:1]
	for _, e := range edges[1:] {
		if e != out[len(out)-1] {
			out = append(out, e)
		}
	}
	return out
}
