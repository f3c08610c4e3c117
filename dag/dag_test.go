package dag_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvasato/wikipath/bfs"
	"github.com/arvasato/wikipath/dag"
)

type fakeReader struct {
	titles map[uint32]string
	texts  map[[2]uint32]string
}

func (f *fakeReader) PageTitle(id uint32) string {
	if t, ok := f.titles[id]; ok {
		return t
	}
	return "untitled"
}

func (f *fakeReader) LinkText(fromID, toID uint32) string {
	if t, ok := f.texts[[2]uint32{fromID, toID}]; ok {
		return t
	}
	return f.PageTitle(toID)
}

func sampleReader() *fakeReader {
	return &fakeReader{
		titles: map[uint32]string{
			1: "Start", 2: "Left", 3: "Right", 4: "Middle", 6: "Finish",
		},
		texts: map[[2]uint32]string{
			{1, 2}: "Left", {1, 3}: "Right", {2, 4}: "Middle", {3, 4}: "the middle page", {4, 6}: "Finish",
		},
	}
}

func sampleEdges() []bfs.Edge {
	return []bfs.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 4}, {U: 3, V: 4}, {U: 4, V: 6}}
}

func sampleEdgesSingle() []bfs.Edge {
	return []bfs.Edge{{U: 1, V: 2}}
}

func TestAnnotatedDagCountPaths(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
	require.NoError(t, err)
	require.EqualValues(t, 2, d.CountPaths())
	require.Equal(t, "Start", d.Start().Title())
	require.Equal(t, "Finish", d.Finish().Title())
}

func TestAnnotatedDagSameVertex(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 4, 4, []bfs.Edge{})
	require.NoError(t, err)
	require.EqualValues(t, 1, d.CountPaths())
}

func pathStrings(path []*dag.AnnotatedLink) string {
	s := ""
	for _, l := range path {
		s += fmt.Sprintf("%d->%d;", l.Src().ID(), l.Dst().ID())
	}
	return s
}

func TestEnumeratePathsRecursive(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
	require.NoError(t, err)

	var got []string
	d.EnumeratePaths(func(path []*dag.AnnotatedLink) bool {
		got = append(got, pathStrings(path))
		return true
	}, 0, dag.OrderByID)

	require.Equal(t, []string{"1->2;2->4;4->6;", "1->3;3->4;4->6;"}, got)
}

func TestEnumeratePathsOffset(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
	require.NoError(t, err)

	var got []string
	d.EnumeratePaths(func(path []*dag.AnnotatedLink) bool {
		got = append(got, pathStrings(path))
		return true
	}, 1, dag.OrderByID)

	require.Equal(t, []string{"1->3;3->4;4->6;"}, got)
}

func TestEnumeratePathsStopsEarly(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
	require.NoError(t, err)

	calls := 0
	ok := d.EnumeratePaths(func(path []*dag.AnnotatedLink) bool {
		calls++
		return false
	}, 0, dag.OrderByID)

	require.False(t, ok)
	require.Equal(t, 1, calls)
}

func TestRecursiveAndIterativeEnumeratorsAgree(t *testing.T) {
	for _, order := range []dag.LinkOrder{dag.OrderByID, dag.OrderByTitle, dag.OrderByText} {
		d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
		require.NoError(t, err)

		var recursive []string
		d.EnumeratePaths(func(path []*dag.AnnotatedLink) bool {
			recursive = append(recursive, pathStrings(path))
			return true
		}, 0, order)

		d2, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
		require.NoError(t, err)
		it := dag.NewPathIterator(d2, order)
		var iterative []string
		for {
			path, ok := it.Next()
			if !ok {
				break
			}
			iterative = append(iterative, pathStrings(path))
		}

		require.Equal(t, recursive, iterative, "order=%v", order)
	}
}

func TestPathIteratorAdvance(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
	require.NoError(t, err)

	it := dag.NewPathIterator(d, dag.OrderByID)
	require.True(t, it.Advance(1))
	path, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "1->3;3->4;4->6;", pathStrings(path))

	_, ok = it.Next()
	require.False(t, ok)
}

func TestPathIteratorAdvancePastEnd(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
	require.NoError(t, err)

	it := dag.NewPathIterator(d, dag.OrderByID)
	require.False(t, it.Advance(3))
}

func TestAnnotatedLinkText(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
	require.NoError(t, err)

	links := d.Start().Links(dag.OrderByID)
	require.Equal(t, "Left", links[0].Text())
	require.Equal(t, "#2 (Left)", links[0].ForwardRef())
}

func TestOrderByTitle(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
	require.NoError(t, err)

	links := d.Start().Links(dag.OrderByTitle)
	require.Equal(t, "Left", links[0].Dst().Title())
	require.Equal(t, "Right", links[1].Dst().Title())
}

func TestReaderNilRejected(t *testing.T) {
	_, err := dag.NewAnnotatedDag(nil, 1, 2, nil)
	require.ErrorIs(t, err, dag.ErrReaderNil)
}
