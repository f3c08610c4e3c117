package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvasato/wikipath/bfs"
	"github.com/arvasato/wikipath/graphfile"
)

func buildSampleGraph(t *testing.T) *graphfile.Graph {
	t.Helper()
	b := graphfile.NewBuildGraph()
	edges := [][2]uint32{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 5}, {4, 6}, {5, 6}}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g, err := b.Finalize()
	require.NoError(t, err)
	t.Cleanup(func() { g.Close() })
	return g
}

func TestFindShortestPath(t *testing.T) {
	g := buildSampleGraph(t)

	path, err := bfs.FindShortestPath(g, 1, 6, nil)
	require.NoError(t, err)
	require.Len(t, path, 4)
	require.Equal(t, uint32(1), path[0])
	require.Equal(t, uint32(6), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		require.Contains(t, g.ForwardEdges(path[i-1]), path[i])
	}
}

func TestFindShortestPathSameVertex(t *testing.T) {
	g := buildSampleGraph(t)
	path, err := bfs.FindShortestPath(g, 3, 3, nil)
	require.NoError(t, err)
	require.Equal(t, []uint32{3}, path)
}

func TestFindShortestPathNoPath(t *testing.T) {
	b := graphfile.NewBuildGraph()
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(3, 4))
	g, err := b.Finalize()
	require.NoError(t, err)
	defer g.Close()

	path, err := bfs.FindShortestPath(g, 1, 4, nil)
	require.NoError(t, err)
	require.Nil(t, path)
}

func TestFindShortestPathInvalidVertex(t *testing.T) {
	g := buildSampleGraph(t)
	_, err := bfs.FindShortestPath(g, 0, 1, nil)
	require.ErrorIs(t, err, bfs.ErrInvalidVertex)

	_, err = bfs.FindShortestPath(g, 1, 100, nil)
	require.ErrorIs(t, err, bfs.ErrInvalidVertex)
}

func TestFindShortestPathNilGraph(t *testing.T) {
	_, err := bfs.FindShortestPath(nil, 1, 2, nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestFindShortestPathCollectsStats(t *testing.T) {
	g := buildSampleGraph(t)
	stats := bfs.NewCountingStats(nil)
	_, err := bfs.FindShortestPath(g, 1, 6, stats)
	require.NoError(t, err)
	require.Greater(t, stats.VerticesReached, int64(0))
	require.Greater(t, stats.VerticesExpanded, int64(0))
}
