package bfs

import (
	"fmt"
	"time"
)

// topBit marks a visited[] entry as a backward-tree parent pointer
// (stored as the bitwise complement of the real parent id).
const topBit = uint32(1) << 31

// FindShortestPath returns one shortest path from start to finish,
// inclusive of both endpoints, or nil if no path exists. If stats is
// nil, a NoopStats is used.
//
// The search alternates expanding whichever of the forward and backward
// fringes is currently smaller, which keeps the cost close to the square
// root of the single-direction cost on graphs with roughly symmetric
// branching.
func FindShortestPath(g GraphReader, start, finish uint32, stats StatsSink) ([]uint32, error) {
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
		stats.VertexReached()
		return []uint32{start}, nil
	}

	visited := make([]uint32, n)
	visited[start] = start
	visited[finish] = ^finish
	stats.VertexReached()
	stats.VertexReached()

	forwardFringe := []uint32{start}
	backwardFringe := []uint32{finish}

	for len(forwardFringe) > 0 && len(backwardFringe) > 0 {
		if len(forwardFringe) <= len(backwardFringe) {
			next, a, b, found := expand(g, visited, forwardFringe, true, stats)
			if found {
				return reconstructPath(visited, start, finish, a, b), nil
			}
			forwardFringe = next
		} else {
			next, a, b, found := expand(g, visited, backwardFringe, false, stats)
			if found {
				return reconstructPath(visited, start, finish, a, b), nil
			}
			backwardFringe = next
		}
	}
	return nil, nil
}

// expand processes one fringe's round. When forward is true, it walks
// ForwardEdges from each vertex in fringe; otherwise it walks
// BackwardEdges. It returns the next fringe, and if it finds a vertex
// already marked by the opposite tree, the edge endpoints (a, b) such
// that a is reachable from start and b is reachable from finish, with
// a real graph edge a->b.
func expand(g GraphReader, visited []uint32, fringe []uint32, forward bool, stats StatsSink) (next []uint32, a, b uint32, found bool) {
	n := uint32(len(visited))
	next = make([]uint32, 0, len(fringe))
	for _, v := range fringe {
		stats.VertexExpanded()
		var neighbors []uint32
		if forward {
			neighbors = g.ForwardEdges(v)
		} else {
			neighbors = g.BackwardEdges(v)
		}
		stats.EdgesExpanded(len(neighbors))
		for _, w := range neighbors {
			mark := visited[w]
			switch {
			case mark == 0:
				if forward {
					visited[w] = v
				} else {
					visited[w] = ^v
				}
				stats.VertexReached()
				next = append(next, w)
			case forward && isBackwardMark(mark, n):
				return next, v, w, true
			case !forward && isForwardMark(mark, n):
				return next, w, v, true
			}
		}
	}
	return next, 0, 0, false
}

func isForwardMark(mark, n uint32) bool {
	return mark&topBit == 0 && mark < n
}

func isBackwardMark(mark, n uint32) bool {
	return mark&topBit != 0 && ^mark < n
}

// reconstructPath walks the forward tree from a back to start, and the
// backward tree from b forward to finish, given that edge a->b exists.
func reconstructPath(visited []uint32, start, finish, a, b uint32) []uint32 {
	var left []uint32
	for v := a; ; {
		left = append(left, v)
		if v == start {
			break
		}
		v = visited[v]
	}
	for i, j := 0, len(left)-1; i < j; i, j = i+1, j-1 {
		left[i], left[j] = left[j], left[i]
	}

	var right []uint32
	for v := b; ; {
		right = append(right, v)
		if v == finish {
			break
		}
		v = ^visited[v]
	}

	return append(left, right...)
}
