// Package cli implements the command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tolarian-archive/scryglass/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "scryglass",
	Short: "Telegram inline bot for Magic: The Gathering card search",
	Long: `Scryglass answers Telegram inline queries with Magic: The Gathering
card images, searching Scryfall and paginating results on demand.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.scryglass)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
