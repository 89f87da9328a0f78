// Package archive handles the assets.zip side channel: non-text entries
// are packed into a deflate archive next to the document, addressed by
// the same relative paths the document uses.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"
)

// WriteAssets packs the given source-root-relative paths into a zip at
// zipPath. A file that cannot be read is logged and skipped; the archive
// keeps the rest. Returns the number of files packed.
func WriteAssets(zipPath, sourceRoot string, relPaths []string, logger *zap.Logger) (int, error) {
	out, err := os.Create(zipPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create archive %s: %w", zipPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	packed := 0
	for _, rel := range relPaths {
		if err := addFile(zw, sourceRoot, rel); err != nil {
			logger.Warn("Failed to add file to archive", zap.String("file", rel), zap.Error(err))
			continue
		}
		packed++
	}

	if err := zw.Close(); err != nil {
		return packed, fmt.Errorf("failed to finalize archive: %w", err)
	}
	logger.Debug("Wrote assets archive", zap.String("archive", zipPath), zap.Int("files", packed))
	return packed, nil
}

func addFile(zw *zip.Writer, sourceRoot, rel string) error {
	src, err := os.Open(filepath.Join(sourceRoot, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := zw.Create(rel)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

// Extract unpacks an assets archive under destRoot. Entries whose names
// would escape destRoot are rejected; other per-entry failures are logged
// and counted but do not stop the extraction. Returns extracted and
// failed counts.
func Extract(zipPath, destRoot string, logger *zap.Logger) (extracted, failed int, err error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open archive %s: %w", zipPath, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := extractFile(f, destRoot); err != nil {
			logger.Warn("Failed to extract archive entry", zap.String("entry", f.Name), zap.Error(err))
			failed++
			continue
		}
		extracted++
	}
	return extracted, failed, nil
}

func extractFile(f *zip.File, destRoot string) error {
	name := filepath.ToSlash(f.Name)
	if !filepath.IsLocal(filepath.FromSlash(name)) || strings.HasPrefix(name, "/") {
		return fmt.Errorf("entry path escapes destination: %s", f.Name)
	}

	target := filepath.Join(destRoot, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
