package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repodoc/pkg/logging"
	"repodoc/pkg/version"
)

// logger is shared by all subcommands; Execute installs it.
var logger *zap.Logger

var verbose bool

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "repodoc",
	Short: "Repodoc turns a project tree into one markdown document and back",
	Long: `Repodoc serializes a directory tree into a single human-readable
markdown document (structure tree plus fenced file sections) and restores
the tree from such a document. Non-text files travel in an assets.zip
side channel next to the document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			if err := logging.Setup(true, "Repodoc", version.Get().Version); err != nil {
				return err
			}
			logger = logging.Logger
		}
		return nil
	},
}

// Execute wires the logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
