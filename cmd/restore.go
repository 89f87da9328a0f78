package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repodoc/pkg/archive"
	"repodoc/pkg/document"
	"repodoc/pkg/restore"
)

var restoreOpts struct {
	out       string
	noClobber bool
}

// PartialFailureError reports a restore run in which some entries could
// not be written. main translates it into the partial-failure exit code.
type PartialFailureError struct {
	Restored int
	Failed   int
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("restored %d entries, %d failed", e.Restored, e.Failed)
}

var restoreCmd = &cobra.Command{
	Use:   "restore <document.md>",
	Short: "Rebuild a directory tree from a generated document",
	Long: `Restore parses a generated markdown document and writes every file
section back to disk under the output directory. A sibling assets.zip, if
present, is unpacked into the same directory. Failures are per entry; the
run continues and the summary reports the counts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRestore(args[0], logger)
	},
}

func runRestore(docPath string, logger *zap.Logger) error {
	docPath, err := filepath.Abs(docPath)
	if err != nil {
		return fmt.Errorf("failed to resolve document path: %w", err)
	}
	raw, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	destRoot := restoreOpts.out
	if destRoot == "" {
		base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
		base = strings.TrimSuffix(base, "_documentation")
		destRoot = filepath.Join(filepath.Dir(docPath), base)
	}
	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	entries := document.Parse(string(raw))
	if len(entries) == 0 {
		logger.Warn("Document contains no file sections; nothing restored",
			zap.String("document", docPath))
	}

	res := restore.Write(entries, destRoot, restore.Options{NoClobber: restoreOpts.noClobber}, logger)

	// Unpack the side channel when it sits next to the document.
	zipPath := filepath.Join(filepath.Dir(docPath), document.AssetsName)
	if _, statErr := os.Stat(zipPath); statErr == nil {
		extracted, failed, err := archive.Extract(zipPath, destRoot, logger)
		if err != nil {
			logger.Warn("Failed to open assets archive", zap.String("archive", zipPath), zap.Error(err))
			res.Failed++
		} else {
			res.Restored += extracted
			res.Failed += failed
		}
	}

	logger.Info("Restore finished",
		zap.String("destination", destRoot),
		zap.Int("restored", res.Restored),
		zap.Int("failed", res.Failed),
		zap.Int("skipped", res.Skipped))

	if res.Failed > 0 {
		return &PartialFailureError{Restored: res.Restored, Failed: res.Failed}
	}
	return nil
}

func init() {
	restoreCmd.Flags().StringVarP(&restoreOpts.out, "out", "o", "", "Output directory (default derived from the document name)")
	restoreCmd.Flags().BoolVar(&restoreOpts.noClobber, "no-clobber", false, "Skip entries whose target file already exists")

	RootCmd.AddCommand(restoreCmd)
}
