package dag

import (
	"fmt"
	"io"
	"strings"
)

// WriteDot writes d as a GraphViz digraph: one node statement per page,
// labeled with its title, and one edge statement per link, labeled with
// its text unless the text equals the destination's title. Each page is
// labeled only the first time it is emitted.
func WriteDot(w io.Writer, d *AnnotatedDag, order LinkOrder) error {
	if _, err := fmt.Fprintln(w, "digraph dag {"); err != nil {
		return err
	}

	labeled := make(map[uint32]bool, len(d.pages))
	emitNode := func(p *AnnotatedPage) error {
		if labeled[p.id] {
			return nil
		}
		labeled[p.id] = true
		_, err := fmt.Fprintf(w, "  %d [label=%s];\n", p.id, dotQuote(p.Title()))
		return err
	}

	if err := emitNode(d.start); err != nil {
		return err
	}
	for _, p := range d.pages {
		if err := emitNode(p); err != nil {
			return err
		}
		for _, link := range p.Links(order) {
			if err := emitNode(link.dst); err != nil {
				return err
			}
			text := link.Text()
			if text == link.dst.Title() {
				if _, err := fmt.Fprintf(w, "  %d -> %d;\n", p.id, link.dst.id); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(w, "  %d -> %d [label=%s];\n", p.id, link.dst.id, dotQuote(text)); err != nil {
					return err
				}
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// dotQuote quotes s as a DOT string literal, escaping only the
// character that would otherwise terminate the literal.
func dotQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
