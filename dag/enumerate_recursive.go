package dag

import "github.com/prometheus/client_golang/prometheus"

// EnumeratePathsCallback is called once per path found by EnumeratePaths,
// with the path's links from Start to Finish in order. It returns false
// to stop enumeration early.
type EnumeratePathsCallback func(path []*AnnotatedLink) bool

// EnumeratePaths enumerates paths from Start to Finish in the given
// order, skipping the first offset of them. For each remaining path it
// calls callback with the path's links until callback returns false or
// every path has been visited, whichever comes first.
//
// It returns false if callback ever returned false, true otherwise
// (including when no paths exist, so callback was never called).
func (d *AnnotatedDag) EnumeratePaths(callback EnumeratePathsCallback, offset int64, order LinkOrder) bool {
	ctx := &enumerateContext{
		finish:   d.finish,
		callback: callback,
		offset:   offset,
		order:    order,
		counter:  d.pathCounter,
	}
	return ctx.run(d.start)
}

type enumerateContext struct {
	finish   *AnnotatedPage
	callback EnumeratePathsCallback
	offset   int64
	order    LinkOrder
	links    []*AnnotatedLink
	counter  prometheus.Counter
}

// run implements the same offset-skipping recursion as the iterative
// walk in enumerate_iterative.go: at each page, it uses the precomputed
// path count of each outgoing link's destination to skip whole subtrees
// in O(out-degree) instead of visiting every skipped path one at a time.
func (c *enumerateContext) run(page *AnnotatedPage) bool {
	if page == c.finish {
		if c.offset == 0 {
			if c.counter != nil {
				c.counter.Inc()
			}
			return c.callback(c.links)
		}
		return true
	}
	for i, link := range page.Links(c.order) {
		l := &page.links[i]
		c.links = append(c.links, l)
		if c.offset > 0 {
			if n := link.Dst().pathCount(c.finish); n <= c.offset {
				c.offset -= n
				c.links = c.links[:len(c.links)-1]
				continue
			}
		}
		if !c.run(link.Dst()) {
			return false
		}
		c.links = c.links[:len(c.links)-1]
	}
	return true
}
