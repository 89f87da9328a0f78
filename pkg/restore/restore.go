// Package restore writes parsed document entries back into a directory
// tree. The whole run is best-effort batch: one bad entry is counted and
// reported, never fatal to the rest.
package restore

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"repodoc/pkg/document"
)

// ErrPathEscape marks an entry whose path would resolve outside the
// destination root. Such entries are rejected per-entry, never written.
var ErrPathEscape = errors.New("entry path escapes destination root")

// Options configures the write phase.
type Options struct {
	// NoClobber skips entries whose target file already exists instead
	// of overwriting it. The default matches the reference behavior:
	// overwrite unconditionally.
	NoClobber bool
}

// Result summarizes a restore run.
type Result struct {
	Restored int // entries written
	Failed   int // rejected or unwritable entries
	Skipped  int // pre-existing targets left alone under NoClobber
}

// Write materializes entries under destRoot, creating parent directories
// as needed. Each entry is written exactly once; failures are isolated,
// logged, and tallied in the result.
func Write(entries []document.ParsedEntry, destRoot string, opts Options, logger *zap.Logger) Result {
	var res Result

	for _, e := range entries {
		rel, err := sanitizePath(e.Path)
		if err != nil {
			logger.Warn("Rejecting entry", zap.String("path", e.Path), zap.Error(err))
			res.Failed++
			continue
		}

		target := filepath.Join(destRoot, filepath.FromSlash(rel))
		if opts.NoClobber {
			if _, statErr := os.Stat(target); statErr == nil {
				logger.Debug("Target exists, skipping", zap.String("path", rel))
				res.Skipped++
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			logger.Warn("Failed to create parent directory", zap.String("path", rel), zap.Error(err))
			res.Failed++
			continue
		}
		if err := os.WriteFile(target, []byte(e.Content), 0o644); err != nil {
			logger.Warn("Failed to write entry", zap.String("path", rel), zap.Error(err))
			res.Failed++
			continue
		}

		logger.Debug("Restored entry", zap.String("path", rel))
		res.Restored++
	}

	return res
}

// sanitizePath normalizes a header path and rejects anything that could
// land outside the destination root: absolute paths, drive letters, or
// parent-directory traversal that survives cleaning.
func sanitizePath(p string) (string, error) {
	rel := filepath.ToSlash(strings.TrimSpace(p))
	if rel == "" {
		return "", fmt.Errorf("%w: empty path", ErrPathEscape)
	}

	rel = path.Clean(rel)
	if !document.ValidPath(rel) || !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, p)
	}
	return rel, nil
}
