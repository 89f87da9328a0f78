package gather

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// sampleSize is how many leading bytes the classifier inspects.
const sampleSize = 2048

// textExtensions force a file to be treated as text without sniffing.
var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".rst": true, ".markdown": true,
	".py": true, ".pyi": true, ".toml": true, ".ini": true, ".cfg": true,
	".conf": true, ".cnf": true, ".yaml": true, ".yml": true,
	".json": true, ".jsonc": true, ".csv": true, ".tsv": true, ".log": true,
	".gitignore": true, ".gitattributes": true,
	".sh": true, ".bash": true, ".zsh": true, ".ps1": true, ".bat": true,
	".cmd": true, ".reg": true,
	".html": true, ".htm": true, ".xhtml": true, ".xml": true,
	".css": true, ".scss": true, ".sass": true, ".less": true, ".styl": true,
	".js": true, ".mjs": true, ".cjs": true, ".jsx": true,
	".ts": true, ".tsx": true,
	".vue": true, ".svelte": true,
	".php": true, ".rb": true, ".pl": true, ".pm": true,
	".java": true, ".kt": true, ".kts": true, ".groovy": true,
	".gradle": true, ".properties": true,
	".cs": true, ".fs": true, ".vb": true,
	".go": true, ".rs": true, ".c": true, ".h": true, ".cpp": true,
	".hpp": true, ".cc": true, ".hh": true,
	".swift": true, ".objc": true, ".m": true, ".mm": true,
	".sql": true, ".dockerfile": true, ".env": true, ".dotenv": true,
	".makefile": true, ".mk": true, ".nuspec": true,
	".tex": true, ".bib": true,
}

// textNames are extension-less files that are always text.
var textNames = map[string]bool{
	"makefile":   true,
	"dockerfile": true,
}

// IsText classifies a file from its path and a sample of its leading
// bytes. Known text extensions win outright; otherwise a NUL byte or a
// high ratio of C1 control bytes marks the file binary. Empty files are
// text.
func IsText(path string, sample []byte) bool {
	if textExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}
	if textNames[strings.ToLower(filepath.Base(path))] {
		return true
	}

	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}
	if len(sample) == 0 {
		return true
	}

	nontext := 0
	for _, b := range sample {
		if b > 0x7F && b < 0xA0 {
			nontext++
		}
	}
	return float64(nontext)/float64(len(sample)) < 0.30
}

// IsTextFile reads a sample from the file and classifies it.
func IsTextFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	sample := make([]byte, sampleSize)
	n, err := f.Read(sample)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return IsText(path, sample[:n]), nil
}
