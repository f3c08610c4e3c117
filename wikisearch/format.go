package wikisearch

import (
	"go.uber.org/zap"

	"github.com/arvasato/wikipath/dag"
)

// PageTitle returns the title of id, or "untitled" if no such page is
// known to the metadata store. Implements dag.PageTextReader.
func (r *Reader) PageTitle(id uint32) string {
	page, ok, err := r.metadata.GetPageByID(id)
	if err != nil {
		r.logger.Warn("metadata lookup failed", zap.Error(err))
		return "untitled"
	}
	if !ok {
		return "untitled"
	}
	return page.Title
}

// LinkText returns the text under which fromID's page links to toID's
// page: the link's explicit display title if present, else toID's
// title, else the pipe-trick transformation of that title if the link
// has an empty explicit title. Returns "unknown" if no link record
// exists.
func (r *Reader) LinkText(fromID, toID uint32) string {
	link, ok, err := r.metadata.GetLink(fromID, toID)
	if err != nil {
		r.logger.Warn("metadata lookup failed", zap.Error(err))
		return "unknown"
	}
	if !ok {
		return "unknown"
	}
	if link.HasTitle && link.Title != "" {
		return link.Title
	}
	targetTitle := r.PageTitle(toID)
	if !link.HasTitle {
		return targetTitle
	}
	return dag.ResolvePipeTrick(targetTitle)
}

// PageRef formats a page reference as "#<id> (<title>)".
func (r *Reader) PageRef(id uint32) string {
	return dag.PageRef(id, r.PageTitle(id))
}

// ForwardLinkRef describes toID from the perspective of someone
// standing at fromID.
func (r *Reader) ForwardLinkRef(fromID, toID uint32) string {
	title := r.PageTitle(toID)
	return dag.LinkRef(toID, title, title, r.LinkText(fromID, toID))
}

// BackwardLinkRef describes fromID from the perspective of someone
// standing at toID.
func (r *Reader) BackwardLinkRef(fromID, toID uint32) string {
	return dag.LinkRef(fromID, r.PageTitle(fromID), r.PageTitle(toID), r.LinkText(fromID, toID))
}
