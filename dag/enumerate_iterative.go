package dag

// PathIterator walks the paths of an AnnotatedDag one at a time using an
// explicit stack of link alternatives, rather than native recursion.
// Unlike AnnotatedDag.EnumeratePaths, a PathIterator keeps its own copy
// of each visited page's sorted link slice, so a caller may change sort
// order between calls, and it supports Advance, which skips forward by
// whole subtree counts instead of visiting one path at a time.
//
// A PathIterator is not safe for concurrent use.
type PathIterator struct {
	dag   *AnnotatedDag
	order LinkOrder

	stack       []iterFrame
	started     bool
	pendingStep bool
	done        bool
}

type iterFrame struct {
	page  *AnnotatedPage
	links []AnnotatedLink
	idx   int
}

// NewPathIterator returns an iterator over dag's paths from Start to
// Finish, in the given order, positioned before the first path.
func NewPathIterator(d *AnnotatedDag, order LinkOrder) *PathIterator {
	return &PathIterator{dag: d, order: order}
}

// SetOrder changes the sort order used for link alternatives pushed
// after this call. Frames already on the stack keep the order they were
// pushed with.
func (it *PathIterator) SetOrder(order LinkOrder) {
	it.order = order
}

func (it *PathIterator) push(page *AnnotatedPage) {
	links := append([]AnnotatedLink(nil), page.Links(it.order)...)
	it.stack = append(it.stack, iterFrame{page: page, links: links})
}

func (it *PathIterator) top() *iterFrame {
	return &it.stack[len(it.stack)-1]
}

// step pops the frame for the path just returned and advances its
// parent's cursor to the next alternative. It returns false once no
// frames remain, meaning the whole DAG has been exhausted.
func (it *PathIterator) step() bool {
	if len(it.stack) == 0 {
		return false
	}
	it.stack = it.stack[:len(it.stack)-1]
	if len(it.stack) == 0 {
		return false
	}
	it.top().idx++
	return true
}

// path returns the links making up the path currently sitting at the
// top of the stack, which must be Finish.
func (it *PathIterator) path() []*AnnotatedLink {
	path := make([]*AnnotatedLink, len(it.stack)-1)
	for i := 0; i < len(it.stack)-1; i++ {
		f := &it.stack[i]
		path[i] = &f.links[f.idx]
	}
	return path
}

func (it *PathIterator) resume() bool {
	if !it.started {
		it.started = true
		it.push(it.dag.start)
		return true
	}
	if it.pendingStep {
		it.pendingStep = false
		return it.step()
	}
	return true
}

// Next advances to the next path and returns its links, or returns
// ok=false once every path has been visited.
func (it *PathIterator) Next() (path []*AnnotatedLink, ok bool) {
	if it.done {
		return nil, false
	}
	if !it.resume() {
		it.done = true
		return nil, false
	}
	for {
		top := it.top()
		if top.page == it.dag.finish {
			it.pendingStep = true
			if it.dag.pathCounter != nil {
				it.dag.pathCounter.Inc()
			}
			return it.path(), true
		}
		if top.idx >= len(top.links) {
			if len(it.stack) == 1 {
				it.done = true
				return nil, false
			}
			it.stack = it.stack[:len(it.stack)-1]
			it.top().idx++
			continue
		}
		it.push(top.links[top.idx].dst)
	}
}

// Advance skips forward by skip paths from the current position,
// without visiting them individually: whenever the destination of the
// current link alternative has a precomputed path count no greater than
// the remaining skip, the whole alternative is skipped in one step. It
// returns false if fewer than skip paths remained, in which case the
// iterator is exhausted and subsequent calls to Next return false.
func (it *PathIterator) Advance(skip int64) bool {
	if it.done {
		return false
	}
	if !it.resume() {
		it.done = true
		return false
	}
	for skip > 0 {
		top := it.top()
		if top.page == it.dag.finish {
			skip--
			if !it.step() {
				it.done = true
				return skip == 0
			}
			continue
		}
		if top.idx >= len(top.links) {
			if len(it.stack) == 1 {
				it.done = true
				return false
			}
			it.stack = it.stack[:len(it.stack)-1]
			it.top().idx++
			continue
		}
		link := &top.links[top.idx]
		n := link.dst.pathCount(it.dag.finish)
		if n <= skip {
			skip -= n
			top.idx++
			continue
		}
		it.push(link.dst)
	}
	return true
}
