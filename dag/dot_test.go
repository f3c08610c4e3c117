package dag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvasato/wikipath/dag"
)

func TestWriteDot(t *testing.T) {
	d, err := dag.NewAnnotatedDag(sampleReader(), 1, 6, sampleEdges())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dag.WriteDot(&buf, d, dag.OrderByID))

	require.Equal(t, `digraph dag {
  1 [label="Start"];
  2 [label="Left"];
  1 -> 2;
  3 [label="Right"];
  1 -> 3;
  6 [label="Finish"];
  4 [label="Middle"];
  2 -> 4;
  3 -> 4 [label="the middle page"];
  4 -> 6;
}
`, buf.String())
}

func TestWriteDotEscapesQuotes(t *testing.T) {
	reader := &fakeReader{
		titles: map[uint32]string{1: `Say "hi"`, 2: "Plain"},
		texts:  map[[2]uint32]string{{1, 2}: "Plain"},
	}
	d, err := dag.NewAnnotatedDag(reader, 1, 2, sampleEdgesSingle())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dag.WriteDot(&buf, d, dag.OrderByID))

	require.Contains(t, buf.String(), `1 [label="Say \"hi\""];`)
}
