package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	entries := []Entry{
		{Path: "main.go", Content: "package main\n\nfunc main() {}\n"},
		{Path: "docs/guide.md", Content: "# Guide\n\nSome *markdown* prose."},
		{Path: "empty.txt", Content: ""},
		{Path: "data/values.csv", Content: "a,b\n1,2\n\n"},
		{Path: "unicode.txt", Content: "Привет, мир\n"},
	}

	parsed := Parse(Render("proj", entries))
	require.Len(t, parsed, len(entries))
	for i, e := range entries {
		assert.Equal(t, e.Path, parsed[i].Path, "path order must be preserved")
		assert.Equal(t, e.Content, parsed[i].Content, "content of %s", e.Path)
	}
}

func TestParseEmbeddedFenceEndTruncates(t *testing.T) {
	// A content line equal to the fence-end marker closes the block
	// early. The documented behavior is truncation at that line.
	entries := []Entry{
		{Path: "snippet.md", Content: "before\n```\nafter"},
	}

	parsed := Parse(Render("proj", entries))
	require.Len(t, parsed, 1)
	assert.Equal(t, "before", parsed[0].Content)
}

func TestParseHeaderInsideFence(t *testing.T) {
	// The header scan is not fence-aware: a header-pattern line embedded
	// in content splits the document there, producing a phantom entry.
	entries := []Entry{
		{Path: "a.txt", Content: "before\n## File: phantom.txt\nafter"},
	}

	parsed := Parse(Render("proj", entries))
	require.Len(t, parsed, 2)

	assert.Equal(t, "a.txt", parsed[0].Path)
	assert.Equal(t, "before", parsed[0].Content)

	// The phantom section adopts the real section's closing fence as its
	// opening fence and swallows the separator that follows.
	assert.Equal(t, "phantom.txt", parsed[1].Path)
	assert.Equal(t, "\n---", parsed[1].Content)
}

func TestParseNoHeaders(t *testing.T) {
	assert.Empty(t, Parse("just some prose\n\n```\ncode\n```\n"))
	assert.Empty(t, Parse(""))
}

func TestParseSectionWithoutFence(t *testing.T) {
	parsed := Parse("## File: bare.txt\n\nprose, no fence here\n")
	require.Len(t, parsed, 1)
	assert.Equal(t, "bare.txt", parsed[0].Path)
	assert.Equal(t, "", parsed[0].Content)
}

func TestParseUnclosedFence(t *testing.T) {
	doc := "## File: tail.txt\n\n```\nline one\nline two\n"
	parsed := Parse(doc)
	require.Len(t, parsed, 1)
	assert.Equal(t, "line one\nline two", parsed[0].Content)
}

func TestParseUnclosedFenceStopsAtNextHeader(t *testing.T) {
	doc := "## File: first.txt\n\n```\nfirst body\n## File: second.txt\n\n```\nsecond body\n```\n"
	parsed := Parse(doc)
	require.Len(t, parsed, 2)
	assert.Equal(t, "first body", parsed[0].Content)
	assert.Equal(t, "second body", parsed[1].Content)
}

func TestParseIgnoresContentAfterFenceClose(t *testing.T) {
	doc := "## File: one.txt\n\n```\nkept\n```\ndropped prose\n```\nalso dropped\n```\n"
	parsed := Parse(doc)
	require.Len(t, parsed, 1)
	assert.Equal(t, "kept", parsed[0].Content)
}

func TestParseCRLF(t *testing.T) {
	doc := "## File: win.txt\r\n\r\n```\r\nhello\r\nworld\r\n```\r\n"
	parsed := Parse(doc)
	require.Len(t, parsed, 1)
	assert.Equal(t, "win.txt", parsed[0].Path)
	assert.Equal(t, "hello\nworld", parsed[0].Content)
}

func TestParseFenceWithLanguageTag(t *testing.T) {
	doc := "## File: app.py\n\n```python\nprint('x')\n```\n"
	parsed := Parse(doc)
	require.Len(t, parsed, 1)
	assert.Equal(t, "print('x')", parsed[0].Content)
}

func TestParseStructureSectionNotMistakenForEntry(t *testing.T) {
	// The structure tree's fenced block precedes any header, so its
	// fences must not confuse the scan.
	entries := []Entry{{Path: "x.txt", Content: "payload"}}
	parsed := Parse(Render("proj", entries))
	require.Len(t, parsed, 1)
	assert.Equal(t, "x.txt", parsed[0].Path)
	assert.Equal(t, "payload", parsed[0].Content)
}
