// Package cli implements the readable command surface.
//
// Commands read text from a file argument or stdin, hand it to the
// readability library, and render the results. All filesystem and
// terminal concerns live here; the library stays pure.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/readable-cli/internal/config"
	"github.com/custodia-labs/readable-cli/internal/logger"
)

var version = "0.3.0"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "readable",
	Short: "Readability metrics for plain text and HTML",
	Long: `Computes standard readability metrics (Flesch-Kincaid, Gunning Fog,
SMOG, LIX and others) for text read from a file or stdin. HTML input
is stripped to plain text before scoring.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// prefs caches the preference store for the process lifetime.
var prefs *config.Store

// preferences opens the TOML preference store on first use. A nil
// return means preferences are unavailable; callers fall back to
// built-in defaults.
func preferences() *config.Store {
	if prefs == nil {
		store, err := config.NewStore(os.Getenv("READABLE_CONFIG_DIR"))
		if err != nil {
			logger.Warn("preference store unavailable: %v", err)
			return nil
		}
		prefs = store
	}
	return prefs
}
