package document

import (
	"path"
	"strings"
)

// languageTags maps file extensions to fence language tags for syntax
// highlighting. Unknown extensions get an untagged fence.
var languageTags = map[string]string{
	".py":     "python",
	".js":     "javascript",
	".jsx":    "jsx",
	".ts":     "typescript",
	".tsx":    "tsx",
	".json":   "json",
	".yaml":   "yaml",
	".yml":    "yaml",
	".toml":   "toml",
	".ini":    "ini",
	".md":     "markdown",
	".html":   "html",
	".css":    "css",
	".sh":     "bash",
	".ps1":    "powershell",
	".bat":    "bat",
	".cmd":    "bat",
	".xml":    "xml",
	".sql":    "sql",
	".vue":    "vue",
	".svelte": "svelte",
	".java":   "java",
	".kt":     "kotlin",
	".cs":     "csharp",
	".go":     "go",
	".rs":     "rust",
	".c":      "c",
	".h":      "c",
	".cpp":    "cpp",
	".hpp":    "cpp",
}

// LanguageTag returns the fence language tag for a file path, or "" when
// the extension has no known mapping.
func LanguageTag(p string) string {
	return languageTags[strings.ToLower(path.Ext(p))]
}
