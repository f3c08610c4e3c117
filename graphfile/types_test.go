package graphfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeRejectsTooSmall(t *testing.T) {
	_, err := decode(make([]byte, 4), nil)
	require.ErrorIs(t, err, ErrTooSmall)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	buf := make([]byte, headerSize)
	_, err := decode(buf, nil)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestDecodeRejectsSizeMismatch(t *testing.T) {
	b := NewBuildGraph()
	require.NoError(t, b.AddEdge(1, 2))
	data, err := b.Encode()
	require.NoError(t, err)

	_, err = decode(data[:len(data)-1], nil)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestDecodeRoundTrip(t *testing.T) {
	b := NewBuildGraph()
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(2, 3))
	data, err := b.Encode()
	require.NoError(t, err)

	g, err := decode(data, nil)
	require.NoError(t, err)
	require.EqualValues(t, 4, g.VertexCount())
	require.NoError(t, g.Close())
}
