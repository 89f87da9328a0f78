// Package ignore filters source paths with gitignore-style patterns drawn
// from built-in defaults, a .repodocignore file in the source root, and
// command-line lines.
package ignore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// IgnoreFileName is looked up in the source root during generation.
const IgnoreFileName = ".repodocignore"

// Pattern is one compiled ignore rule.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled form of the pattern line.
	Negate bool           // True when the line started with '!'.
	Line   string         // Original pattern line.
	LineNo int            // 1-based line number in the source.
}

// Matcher holds an ordered list of ignore patterns. Later patterns win,
// so a negation can re-include a path a default excluded.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty Matcher.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Load builds the full matcher for a generation run: built-in defaults,
// then the optional global file, then the source root's .repodocignore,
// then extra command-line lines. Missing files are not errors.
func Load(sourceRoot, globalPath string, extraLines []string, logger *zap.Logger) (*Matcher, error) {
	m := New(logger)
	m.CompileLines(defaultPatterns...)

	if globalPath != "" {
		if err := m.CompileFile(globalPath); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	if err := m.CompileFile(filepath.Join(sourceRoot, IgnoreFileName)); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	m.CompileLines(extraLines...)

	m.logger.Debug("Loaded ignore patterns", zap.Int("totalPatterns", len(m.patterns)))
	return m, nil
}

// CompileLines compiles pattern lines and appends them to the matcher.
func (m *Matcher) CompileLines(lines ...string) {
	for i, line := range lines {
		re, negate := parsePatternLine(line)
		if re == nil {
			continue
		}
		p := &Pattern{
			Regexp: re,
			Negate: negate,
			Line:   line,
			LineNo: i + 1,
		}
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled ignore pattern",
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// CompileFile reads an ignore file and compiles its lines.
func (m *Matcher) CompileFile(fpath string) error {
	content, err := os.ReadFile(fpath)
	if err != nil {
		return err
	}
	m.CompileLines(strings.Split(string(content), "\n")...)
	m.logger.Debug("Compiled ignore file", zap.String("filePath", fpath))
	return nil
}

// MatchesPath reports whether the relative path matches the ignore set.
func (m *Matcher) MatchesPath(path string) bool {
	matched, _ := m.MatchesPathWithPattern(path)
	return matched
}

// MatchesPathWithPattern reports whether the relative path is ignored and
// which pattern decided it. Patterns are evaluated in order; the last
// match wins, with negations flipping the result back to included.
func (m *Matcher) MatchesPathWithPattern(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	matched := false
	var winner *Pattern
	for _, p := range m.patterns {
		if p.Regexp.MatchString(normalized) {
			matched = !p.Negate
			winner = p
		}
	}
	return matched, winner
}

// parsePatternLine turns one ignore-file line into a compiled regexp and
// a negation flag. Comments and blank lines yield nil.
func parsePatternLine(line string) (*regexp.Regexp, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}
	if strings.HasPrefix(trimmed, "\\#") || strings.HasPrefix(trimmed, "\\!") {
		trimmed = trimmed[1:]
	}

	expr := escapeSpecialChars(trimmed)
	expr = handleDoubleStarPatterns(expr)
	expr = wildcardToRegex(expr)
	expr = anchorPattern(expr, trimmed)

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, false
	}
	return re, negate
}
