package dag

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arvasato/wikipath/bfs"
)

// AnnotatedDag wraps a bfs.Edge list with lazily materialized page
// titles and link text, loaded through a PageTextReader. It supports
// efficient path counting and ordered, offset-skipping enumeration
// without ever materializing the full path set.
type AnnotatedDag struct {
	reader        PageTextReader
	start, finish *AnnotatedPage
	pages         []*AnnotatedPage
	pathCounter   prometheus.Counter
}

// NewAnnotatedDag builds an AnnotatedDag over edges, which must describe
// a DAG with start and finish as its unique source and sink layers (as
// produced by bfs.FindShortestPathDag). reader is used on demand to
// resolve titles and link text; it is not copied or closed by this
// function.
func NewAnnotatedDag(reader PageTextReader, start, finish uint32, edges []bfs.Edge) (*AnnotatedDag, error) {
	if reader == nil {
		return nil, ErrReaderNil
	}

	d := &AnnotatedDag{reader: reader}
	byID := make(map[uint32]*AnnotatedPage)

	reserve := func(id uint32) *AnnotatedPage {
		if p, ok := byID[id]; ok {
			return p
		}
		p := &AnnotatedPage{id: id}
		p.title = newLazyString(func() string { return reader.PageTitle(id) })
		byID[id] = p
		d.pages = append(d.pages, p)
		return p
	}

	// Pass 1: reserve a page for every id, including isolated start/finish,
	// before taking any pointers into page-local slices in pass 2.
	d.start = reserve(start)
	d.finish = reserve(finish)
	for _, e := range edges {
		reserve(e.U)
		reserve(e.V)
	}

	// Pass 2: wire up links now that every AnnotatedPage has a stable address.
	for _, e := range edges {
		src := byID[e.U]
		dst := byID[e.V]
		link := AnnotatedLink{src: src, dst: dst}
		link.text = newLazyString(func() string { return reader.LinkText(src.id, dst.id) })
		src.links = append(src.links, link)
	}

	return d, nil
}

// Start returns the DAG's single source page.
func (d *AnnotatedDag) Start() *AnnotatedPage { return d.start }

// Finish returns the DAG's single sink page.
func (d *AnnotatedDag) Finish() *AnnotatedPage { return d.finish }

// CountPaths returns the number of distinct shortest paths from Start
// to Finish, without enumerating them.
func (d *AnnotatedDag) CountPaths() int64 {
	return d.start.pathCount(d.finish)
}
