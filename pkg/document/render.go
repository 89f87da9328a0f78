package document

import (
	"strings"
)

const (
	titlePrefix  = "# Project: "
	headerPrefix = "## File: "
	fenceMarker  = "```"
	// AssetsName is the side-channel archive expected next to a document.
	AssetsName = "assets.zip"
)

// Render serializes entries into one markdown document: a title, a
// structure tree, then a fenced section per text entry in input order.
// Binary entries appear only in a trailing manifest note; their bytes are
// the caller's problem (see pkg/archive). Rendering is deterministic:
// the same entry list always yields the same bytes.
func Render(root string, entries []Entry) string {
	var b strings.Builder

	textPaths := make([]string, 0, len(entries))
	binaryPaths := make([]string, 0)
	for _, e := range entries {
		if e.Binary {
			binaryPaths = append(binaryPaths, e.Path)
		} else {
			textPaths = append(textPaths, e.Path)
		}
	}

	b.WriteString(titlePrefix + root + "\n\n")
	b.WriteString("## Structure\n")
	b.WriteString(fenceMarker + "text\n")
	b.WriteString(StructureTree(root, append(textPaths, binaryPaths...)))
	b.WriteString("\n" + fenceMarker + "\n")
	writeRule(&b)

	for _, e := range entries {
		if e.Binary {
			continue
		}
		b.WriteString(headerPrefix + e.Path + "\n\n")
		b.WriteString(fenceMarker + LanguageTag(e.Path) + "\n")
		b.WriteString(e.Content)
		// One separator newline before the closing fence; Parse folds it
		// back so a trailing newline in the content survives a round trip.
		b.WriteString("\n" + fenceMarker + "\n")
		writeRule(&b)
	}

	if len(binaryPaths) > 0 {
		b.WriteString("## Binary assets\n\n")
		b.WriteString("Non-text files are not embedded here. They are packed into " +
			AssetsName + " next to this document, under the same relative paths:\n\n")
		for _, p := range binaryPaths {
			b.WriteString("- " + p + "\n")
		}
		writeRule(&b)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeRule(b *strings.Builder) {
	b.WriteString("\n---\n\n")
}
