package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repodoc/pkg/archive"
	"repodoc/pkg/document"
	"repodoc/pkg/gather"
	"repodoc/pkg/ignore"
)

var generateOpts struct {
	out            string
	zipBinaries    bool
	maxFileSizeKB  int
	maxWorkers     int
	ignorePatterns []string
	globalIgnore   string
}

var generateCmd = &cobra.Command{
	Use:   "generate <directory>",
	Short: "Serialize a directory tree into one markdown document",
	Long: `Generate walks the given directory, filters it through the ignore
rules, and writes a single markdown document holding a structure tree and
every text file's content. With --zip-binaries, non-text files are packed
into an assets.zip next to the document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args[0], logger)
	},
}

func runGenerate(dir string, logger *zap.Logger) error {
	startTime := time.Now()

	sourceRoot, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve source directory: %w", err)
	}
	info, err := os.Stat(sourceRoot)
	if err != nil {
		return fmt.Errorf("source directory not found: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path is not a directory: %s", sourceRoot)
	}

	rootName := filepath.Base(sourceRoot)
	logger.Info("Starting generation", zap.String("directory", sourceRoot))

	matcher, err := ignore.Load(sourceRoot, generateOpts.globalIgnore, generateOpts.ignorePatterns, logger)
	if err != nil {
		return fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	files, err := gather.Collect(sourceRoot, matcher, generateOpts.maxFileSizeKB, logger)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No files to serialize after filtering")
	}

	entries := gather.ReadEntries(files, generateOpts.maxWorkers, logger)
	text := document.Render(rootName, entries)

	outPath := generateOpts.out
	if outPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		outPath = filepath.Join(cwd, rootName+"_documentation.md")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	var binaryPaths []string
	for _, e := range entries {
		if e.Binary {
			binaryPaths = append(binaryPaths, e.Path)
		}
	}
	if generateOpts.zipBinaries && len(binaryPaths) > 0 {
		zipPath := filepath.Join(filepath.Dir(outPath), document.AssetsName)
		packed, err := archive.WriteAssets(zipPath, sourceRoot, binaryPaths, logger)
		if err != nil {
			return fmt.Errorf("failed to write assets archive: %w", err)
		}
		logger.Info("Wrote assets archive", zap.String("archive", zipPath), zap.Int("files", packed))
	} else if len(binaryPaths) > 0 {
		logger.Warn("Binary files detected but not archived; pass --zip-binaries to pack them",
			zap.Int("binaryFileCount", len(binaryPaths)))
	}

	logger.Info("Documentation created",
		zap.String("document", outPath),
		zap.Int("textFiles", len(entries)-len(binaryPaths)),
		zap.Int("binaryFiles", len(binaryPaths)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateOpts.out, "out", "o", "", "Output document path (default <dir>_documentation.md in the working directory)")
	generateCmd.Flags().BoolVar(&generateOpts.zipBinaries, "zip-binaries", false, "Pack non-text files into assets.zip next to the document")
	generateCmd.Flags().IntVar(&generateOpts.maxFileSizeKB, "max-file-size", 1024, "Maximum size of files to include, in KB (0 disables the cap)")
	generateCmd.Flags().IntVar(&generateOpts.maxWorkers, "workers", 4, "Number of concurrent file readers")
	generateCmd.Flags().StringArrayVar(&generateOpts.ignorePatterns, "ignore", nil, "Additional ignore pattern (repeatable)")
	generateCmd.Flags().StringVar(&generateOpts.globalIgnore, "global-ignore", "", "Path to a global ignore file")

	RootCmd.AddCommand(generateCmd)
}
