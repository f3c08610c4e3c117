package wikisearch

import "errors"

// Sentinel errors naming the failure conditions of page-argument
// resolution. RandomPageId and ParsePageArgument report these conditions
// by returning id 0 and logging a diagnostic; they do not return these
// values.
var (
	// ErrGraphEmpty names the case where the graph has fewer than two
	// vertices, so RandomPageId has no page to pick.
	ErrGraphEmpty = errors.New("wikisearch: graph is empty")

	// ErrInvalidReference names a malformed numeric reference, an
	// out-of-range id, or a title that does not resolve.
	ErrInvalidReference = errors.New("wikisearch: invalid page reference")
)
