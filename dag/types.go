package dag

import "sync"

// PageTextReader supplies the page titles and link text an AnnotatedDag
// needs to materialize AnnotatedPage.Title and AnnotatedLink.Text. It is
// satisfied by *wikisearch.Reader; dag never imports wikisearch itself,
// to keep the dependency one-directional.
type PageTextReader interface {
	PageTitle(id uint32) string
	LinkText(fromID, toID uint32) string
}

// LinkOrder controls how AnnotatedPage.Links and AnnotatedDag.EnumeratePaths
// order outgoing links.
type LinkOrder int

const (
	// OrderByID orders links by destination page id. This is the default
	// and the cheapest: no metadata lookups are required.
	OrderByID LinkOrder = iota
	// OrderByTitle orders links by destination page title, using
	// locale-aware collation.
	OrderByTitle
	// OrderByText orders links by the link's display text, using
	// locale-aware collation.
	OrderByText
)

// lazyString memoizes a string computed on first access. It is the Go
// analogue of holding either a source to compute from, or the already
// computed value.
type lazyString struct {
	once  sync.Once
	value string
	fn    func() string
}

func newLazyString(fn func() string) *lazyString {
	return &lazyString{fn: fn}
}

func (l *lazyString) get() string {
	l.once.Do(func() {
		l.value = l.fn()
		l.fn = nil
	})
	return l.value
}

// AnnotatedPage is one vertex of an AnnotatedDag.
type AnnotatedPage struct {
	id    uint32
	title *lazyString

	links      []AnnotatedLink
	linksOrder LinkOrder
	linksSet   bool

	cachedPathCount    int64
	cachedPathCountSet bool
}

// ID returns the page's vertex id.
func (p *AnnotatedPage) ID() uint32 { return p.id }

// Title returns the page title, computed on first call.
func (p *AnnotatedPage) Title() string { return p.title.get() }

// Ref returns a reference of the form "#123 (Title)".
func (p *AnnotatedPage) Ref() string {
	return PageRef(p.id, p.Title())
}

// Links returns the page's outgoing links within the DAG, sorted
// according to order. The result is cached per order; requesting a
// different order than the last call re-sorts in place.
func (p *AnnotatedPage) Links(order LinkOrder) []AnnotatedLink {
	if !p.linksSet || p.linksOrder != order {
		sortLinks(p.links, order)
		p.linksOrder = order
		p.linksSet = true
	}
	return p.links
}

// AnnotatedLink is one edge of an AnnotatedDag, from Src to Dst.
type AnnotatedLink struct {
	src, dst *AnnotatedPage
	text     *lazyString
}

// Src returns the link's origin page.
func (l *AnnotatedLink) Src() *AnnotatedPage { return l.src }

// Dst returns the link's destination page.
func (l *AnnotatedLink) Dst() *AnnotatedPage { return l.dst }

// Text returns the link's display text, computed on first call.
func (l *AnnotatedLink) Text() string { return l.text.get() }

// ForwardRef describes Dst from the perspective of someone standing at
// Src, in the form "#<id> (<title>)", or "#<id> (<title>; displayed as:
// <text>)" when the link text differs from the destination title.
func (l *AnnotatedLink) ForwardRef() string {
	title := l.dst.Title()
	return LinkRef(l.dst.id, title, title, l.Text())
}

// BackwardRef describes Src from the perspective of someone standing at
// Dst.
func (l *AnnotatedLink) BackwardRef() string {
	return LinkRef(l.src.id, l.src.Title(), l.dst.Title(), l.Text())
}
