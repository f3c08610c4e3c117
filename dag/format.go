package dag

import "fmt"

// PageRef formats a page reference as "#123 (Title)".
func PageRef(id uint32, title string) string {
	return fmt.Sprintf("#%d (%s)", id, title)
}

// LinkRef formats a reference to a page with id and title, noting the
// link's actual target title and display text when they differ, as
// "#123 (Title; displayed as: Text)".
func LinkRef(id uint32, title, linkTarget, linkText string) string {
	if linkText != linkTarget {
		return fmt.Sprintf("#%d (%s; displayed as: %s)", id, title, linkText)
	}
	return fmt.Sprintf("#%d (%s)", id, title)
}
