package mdcourse

import (
	"io/fs"
	"path"
	"slices"
	"strings"
)

const markdownExt = ".md"

// entry is one child of a course, chapter or sequential directory.
type entry struct {
	name  string
	path  string // slash-separated, relative to the course root
	isDir bool
	order orderKey

	// doc caches the parsed Markdown file read for its sort key.
	doc *document
}

func (e entry) isMarkdown() bool {
	return !e.isDir && path.Ext(e.name) == markdownExt
}

// compareEntries orders by (order, name). Names are unique within one
// directory, so the order is total.
func compareEntries(a, b entry) int {
	if c := a.order.compare(b.order); c != 0 {
		return c
	}
	return strings.Compare(a.name, b.name)
}

// sortEntries keys every entry and sorts them in place.
//
// A Markdown file is keyed by its own frontmatter order. Directories and
// other files are keyed (9999, name): a chapter's or sequential's index.md
// order does not move the directory itself.
func (w *walker) sortEntries(entries []entry) error {
	for i := range entries {
		entries[i].order = intKey(defaultOrder)
		if !entries[i].isMarkdown() {
			continue
		}
		doc, err := w.read(entries[i].path)
		if err != nil {
			return err
		}
		entries[i].doc = doc
		entries[i].order = doc.fm.orderKey()
	}

	slices.SortStableFunc(entries, compareEntries)
	return nil
}

// listEntries returns the children of dir accepted by keep.
func (w *walker) listEntries(dir string, keep func(entry) bool) ([]entry, error) {
	dirEntries, err := fs.ReadDir(w.fsys, dir)
	if err != nil {
		return nil, w.readError(dir, err)
	}

	entries := make([]entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		p := path.Join(dir, d.Name())
		e := entry{name: d.Name(), path: p, isDir: w.isDir(p, d)}
		if keep(e) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// isDir reports whether d is a directory, following symlinks.
func (w *walker) isDir(p string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.IsDir()
	}
	info, err := fs.Stat(w.fsys, p)
	if err != nil {
		return false // dangling link
	}
	return info.IsDir()
}
