package document

import (
	"regexp"
	"strings"
)

// Line patterns of the format grammar. The fence-end pattern is a strict
// subset of fence-start, so end is always checked first while in content.
var (
	headerRe     = regexp.MustCompile(`^##\s+File:\s+(.+?)\s*$`)
	fenceStartRe = regexp.MustCompile("^```[a-zA-Z0-9_-]*\\s*$")
	fenceEndRe   = regexp.MustCompile("^```\\s*$")
)

// parseState drives the single-pass line scan.
type parseState int

const (
	seekingHeader parseState = iota
	seekingFenceStart
	inContent
	sectionDone // fence closed; skip until the next header
)

// Parse recovers file entries from a rendered document in one pass over
// its lines.
//
// A header line opens a new section in every state: the scan is
// deliberately not fence-aware, so a header-like line embedded verbatim in
// a file's content splits the document there. Within a section the first
// fence-start opens the content and the first fence-end closes it; a
// section with no fence yields an empty entry, and an unclosed fence runs
// to the next header or end of document. A document with no headers
// yields no entries. All of this is permissive by design; Parse never
// fails.
func Parse(text string) []ParsedEntry {
	var entries []ParsedEntry
	var cur *ParsedEntry
	var content []string
	state := seekingHeader

	flush := func() {
		if cur == nil {
			return
		}
		cur.Content = strings.Join(content, "\n")
		entries = append(entries, *cur)
		cur = nil
	}

	for _, line := range splitLines(text) {
		if m := headerRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &ParsedEntry{Path: m[1]}
			content = nil
			state = seekingFenceStart
			continue
		}

		switch state {
		case seekingFenceStart:
			if fenceStartRe.MatchString(line) {
				state = inContent
			}
		case inContent:
			if fenceEndRe.MatchString(line) {
				state = sectionDone
				continue
			}
			content = append(content, line)
		}
	}
	flush()
	return entries
}

// splitLines splits on '\n', tolerating CRLF documents and a final
// newline (which does not count as an extra empty line).
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
