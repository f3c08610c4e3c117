package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvasato/wikipath/bfs"
	"github.com/arvasato/wikipath/graphfile"
)

func TestFindShortestPathDag(t *testing.T) {
	g := buildSampleGraph(t)

	edges, err := bfs.FindShortestPathDag(g, 1, 6, nil)
	require.NoError(t, err)
	require.Equal(t, []bfs.Edge{
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 4}, {U: 3, V: 4}, {U: 4, V: 6},
	}, edges)
}

func TestFindShortestPathDagSameVertex(t *testing.T) {
	g := buildSampleGraph(t)
	edges, err := bfs.FindShortestPathDag(g, 3, 3, nil)
	require.NoError(t, err)
	require.Equal(t, []bfs.Edge{}, edges)
}

func TestFindShortestPathDagNoPath(t *testing.T) {
	b := graphfile.NewBuildGraph()
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(3, 4))
	g, err := b.Finalize()
	require.NoError(t, err)
	defer g.Close()

	edges, err := bfs.FindShortestPathDag(g, 1, 4, nil)
	require.NoError(t, err)
	require.Nil(t, edges)
}
