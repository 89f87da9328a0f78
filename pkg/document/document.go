// Package document implements the repodoc text format: a markdown document
// holding a project structure tree followed by one fenced section per file,
// and the parser that recovers the files from such a document.
package document

import (
	"path"
	"strings"
)

// Entry is one source file inside a document: its '/'-separated relative
// path plus content. Binary entries carry no content in the document body;
// their bytes travel in the assets side channel.
type Entry struct {
	Path    string // relative path, forward slashes
	Content string
	Binary  bool
}

// Document is an ordered set of entries under a cosmetic root name.
// Entry order is emission order; Render never reorders.
type Document struct {
	Root    string
	Entries []Entry
}

// ParsedEntry is one file section recovered from a document.
type ParsedEntry struct {
	Path    string
	Content string
}

// ValidPath reports whether p is usable as an entry path: relative,
// forward-slash separated, with no empty, "." or ".." segments.
func ValidPath(p string) bool {
	if p == "" || strings.HasPrefix(p, "/") {
		return false
	}
	if p != path.Clean(p) {
		return false
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}
