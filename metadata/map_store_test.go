package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvasato/wikipath/metadata"
)

func TestMapStoreRoundTrip(t *testing.T) {
	s := metadata.NewMapStore()
	s.PutPage(metadata.Page{ID: 1, Title: "Apple"})
	s.PutPage(metadata.Page{ID: 2, Title: "Banana"})
	s.PutLink(metadata.Link{FromID: 1, ToID: 2, Title: "fruit", HasTitle: true})

	p, ok, err := s.GetPageByID(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Apple", p.Title)

	p, ok, err = s.GetPageByTitle("Banana")
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 2, p.ID)

	l, ok, err := s.GetLink(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fruit", l.Title)
}

func TestMapStoreNotFound(t *testing.T) {
	s := metadata.NewMapStore()

	_, ok, err := s.GetPageByID(99)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = s.GetPageByTitle("Nonexistent")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = s.GetLink(1, 2)
	require.NoError(t, err)
	require.False(t, ok)
}
