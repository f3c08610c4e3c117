package graphfile_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvasato/wikipath/graphfile"
)

func buildSample(t *testing.T) *graphfile.Graph {
	t.Helper()
	b := graphfile.NewBuildGraph()
	edges := [][2]uint32{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 5}, {4, 6}, {5, 6}}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g, err := b.Finalize()
	require.NoError(t, err)
	return g
}

func TestBuildGraphFinalize(t *testing.T) {
	g := buildSample(t)
	defer g.Close()

	require.EqualValues(t, 7, g.VertexCount())
	require.EqualValues(t, 7, g.EdgeCount())
	require.Equal(t, []uint32{2, 3}, g.ForwardEdges(1))
	require.Equal(t, []uint32{4}, g.ForwardEdges(2))
	require.Equal(t, []uint32{5, 6}, g.ForwardEdges(4))
	require.Empty(t, g.ForwardEdges(6))
	require.Equal(t, []uint32{1}, g.BackwardEdges(2))
	require.Equal(t, []uint32{2, 3}, g.BackwardEdges(4))
	require.Empty(t, g.BackwardEdges(1))
}

func TestBuildGraphDeduplicatesAndSorts(t *testing.T) {
	b := graphfile.NewBuildGraph()
	require.NoError(t, b.AddEdge(1, 3))
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(1, 2))
	g, err := b.Finalize()
	require.NoError(t, err)
	defer g.Close()

	require.Equal(t, []uint32{2, 3}, g.ForwardEdges(1))
	require.EqualValues(t, 2, g.EdgeCount())
}

func TestBuildGraphRejectsSelfLoopAndZero(t *testing.T) {
	b := graphfile.NewBuildGraph()
	require.ErrorIs(t, b.AddEdge(1, 1), graphfile.ErrSelfLoop)
	require.ErrorIs(t, b.AddEdge(0, 1), graphfile.ErrInvalidVertex)
	require.ErrorIs(t, b.AddEdge(1, 0), graphfile.ErrInvalidVertex)
}

func TestWriteRoundTrips(t *testing.T) {
	b := graphfile.NewBuildGraph()
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(2, 3))

	var buf bytes.Buffer
	require.NoError(t, graphfile.Write(&buf, b))
	require.True(t, buf.Len() > 0)

	encoded, err := b.Encode()
	require.NoError(t, err)
	require.Equal(t, encoded, buf.Bytes())
}
