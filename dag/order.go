package dag

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator is shared across all locale-ordered sorts. golang.org/x/text's
// collate.Collator is safe for concurrent use by multiple goroutines as
// long as they only call its read methods, which is all Compare does.
var collator = collate.New(language.Und)

func sortLinks(links []AnnotatedLink, order LinkOrder) {
	switch order {
	case OrderByID:
		sort.Slice(links, func(i, j int) bool {
			return links[i].dst.id < links[j].dst.id
		})
	case OrderByTitle:
		sort.Slice(links, func(i, j int) bool {
			return collator.CompareString(links[i].dst.Title(), links[j].dst.Title()) < 0
		})
	case OrderByText:
		sort.Slice(links, func(i, j int) bool {
			return collator.CompareString(links[i].Text(), links[j].Text()) < 0
		})
	}
}
