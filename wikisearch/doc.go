// Package wikisearch ties a graphfile.Graph and a metadata.Store
// together into a single Reader, and provides the small amount of
// input-parsing and output-formatting logic that every search tool
// needs: resolving a page argument from the command line, picking a
// random page to search from, and rendering page and link references
// for humans.
package wikisearch
