// Package gather snapshots a source tree into the ordered entry list the
// document serializer consumes: traversal with ignore filtering and size
// caps, text/binary classification, and a concurrent read phase that
// preserves traversal order.
package gather

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"repodoc/pkg/document"
	"repodoc/pkg/ignore"
)

// File is one candidate found during traversal.
type File struct {
	AbsPath string
	RelPath string // forward slashes, relative to the source root
	Binary  bool
}

// Collect walks the source root and returns the files to serialize, in
// traversal order. Ignored directories are pruned, ignored and oversized
// files skipped, and each survivor classified as text or binary.
// maxFileSizeKB <= 0 disables the size cap.
func Collect(root string, m *ignore.Matcher, maxFileSizeKB int, logger *zap.Logger) ([]File, error) {
	var files []File

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			logger.Warn("Failed to compute relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if m.MatchesPath(rel + "/") {
				logger.Debug("Skipping ignored directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}
		if m.MatchesPath(rel) {
			logger.Debug("Skipping ignored file", zap.String("file", path))
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			logger.Warn("Failed to stat file", zap.String("file", path), zap.Error(infoErr))
			return nil
		}
		if maxFileSizeKB > 0 && info.Size() > int64(maxFileSizeKB)*1024 {
			logger.Debug("Skipping file over size limit",
				zap.String("file", path),
				zap.Int64("sizeBytes", info.Size()),
				zap.Int("maxSizeKB", maxFileSizeKB))
			return nil
		}

		isText, textErr := IsTextFile(path)
		if textErr != nil {
			logger.Warn("Failed to classify file, treating as binary", zap.String("file", path), zap.Error(textErr))
			isText = false
		}

		files = append(files, File{AbsPath: path, RelPath: rel, Binary: !isText})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	logger.Debug("Completed file collection", zap.Int("files", len(files)))
	return files, nil
}

// readJob carries the traversal index so results can be merged back in
// order. Document order is a correctness invariant, not cosmetics.
type readJob struct {
	index int
	file  File
}

// ReadEntries reads the collected files with a worker pool and returns
// document entries in the same order Collect produced them. Text files
// are decoded best-effort; a file that cannot be read is demoted to a
// binary entry so generation keeps going.
func ReadEntries(files []File, maxWorkers int, logger *zap.Logger) []document.Entry {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", maxWorkers))
	}

	entries := make([]document.Entry, len(files))
	jobs := make(chan readJob, len(files))
	var wg sync.WaitGroup

	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		workerLogger := logger.With(zap.Int("workerID", w))
		go func() {
			defer wg.Done()
			for j := range jobs {
				entries[j.index] = readEntry(j.file, workerLogger)
			}
		}()
	}

	for i, f := range files {
		jobs <- readJob{index: i, file: f}
	}
	close(jobs)
	wg.Wait()

	logger.Debug("All files read", zap.Int("entries", len(entries)))
	return entries
}

func readEntry(f File, logger *zap.Logger) document.Entry {
	if f.Binary {
		return document.Entry{Path: f.RelPath, Binary: true}
	}

	raw, err := os.ReadFile(f.AbsPath)
	if err != nil {
		logger.Warn("Failed to read file, routing to side channel",
			zap.String("file", f.AbsPath), zap.Error(err))
		return document.Entry{Path: f.RelPath, Binary: true}
	}

	return document.Entry{Path: f.RelPath, Content: DecodeBestEffort(raw)}
}
