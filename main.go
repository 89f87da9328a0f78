package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"repodoc/cmd"
	"repodoc/pkg/logging"
	"repodoc/pkg/version"
)

func main() {
	if err := logging.Setup(false, "Repodoc", version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	err := cmd.Execute(logger)

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if err != nil {
		var partial *cmd.PartialFailureError
		if errors.As(err, &partial) {
			logger.Warn("repodoc finished with partial failures", zap.Error(err))
			os.Exit(2)
		}
		logger.Error("repodoc execution failed", zap.Error(err))
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
