package ignore

import (
	"regexp"
	"strings"
)

// Precompiled regular expressions used in pattern parsing.
var (
	doubleStarMiddlePattern   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailingPattern = regexp.MustCompile(`/\*\*$`)
	doubleStarLeadingPattern  = regexp.MustCompile(`^\*\*/`)
	singleStarPattern         = regexp.MustCompile(`\*`)
	directoryEndPattern       = regexp.MustCompile(`/$`)
	rootRelativePattern       = regexp.MustCompile(`^/`)
)

// defaultPatterns excludes VCS metadata, editor state, dependency and
// build output directories, and hidden files.
var defaultPatterns = []string{
	".git/", ".hg/", ".svn/",
	".idea/", ".vscode/", ".vs/",
	"__pycache__/", ".pytest_cache/", ".mypy_cache/", ".ruff_cache/",
	"node_modules/", "dist/", "build/", ".next/", ".nuxt/", ".turbo/", ".cache/",
	"venv/", ".venv/", "env/", ".tox/",
	".DS_Store", "Thumbs.db",
	".scannerwork/", "coverage/", "target/", "out/",
	".*",
}

// escapeSpecialChars escapes regex special characters except for '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	specialChars := `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// handleDoubleStarPatterns replaces '**' patterns with appropriate regex.
func handleDoubleStarPatterns(pattern string) string {
	pattern = doubleStarMiddlePattern.ReplaceAllString(pattern, `(/|/.+/)`)
	pattern = doubleStarTrailingPattern.ReplaceAllString(pattern, `(/.*)?`)
	pattern = doubleStarLeadingPattern.ReplaceAllString(pattern, `(.*/)?`)
	return pattern
}

// wildcardToRegex converts wildcard patterns '*' and '?' to regex equivalents.
func wildcardToRegex(pattern string) string {
	pattern = singleStarPattern.ReplaceAllString(pattern, `[^/]*`)
	return strings.ReplaceAll(pattern, "?", ".")
}

// anchorPattern anchors the regex pattern to match the entire path.
func anchorPattern(pattern string, originalPattern string) string {
	if directoryEndPattern.MatchString(originalPattern) {
		pattern += "(.*)?$"
	} else {
		pattern += "(|/.*)?$"
	}

	if rootRelativePattern.MatchString(originalPattern) {
		return "^" + pattern
	}
	return "^(|.*/)" + pattern
}
