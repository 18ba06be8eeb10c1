// Flashdeck is a terminal flashcard viewer.
//
// It loads a deck of text cards from one or more files and shows one card
// at a time, centred in the terminal. Step through the deck with the
// arrow keys, Enter/Tab and Backspace/Shift-Tab; press q to quit.
//
// Usage:
//
//	flashdeck [files...] [flags]
//
// Running without files opens the deck named in the config file, or
// ./test.md. See 'flashdeck --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/flashdeck/internal/logging"
	"github.com/muurk/flashdeck/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "flashdeck [files...]",
	Short: "Terminal flashcard viewer",
	Long: `A terminal viewer that shows one flashcard at a time.

Cards are read from plain text files. The first line containing '#' is a
card's title, a line of "---" starts a new card, and each file adds one or
more cards to the deck.

Keys:
  ←, Backspace, Shift-Tab   previous card
  →, Enter, Tab             next card
  q                         quit`,
	Example: `  # View a single deck
  flashdeck spanish.md

  # Combine several files into one deck
  flashdeck chapter1.md chapter2.md

  # Log navigation to a file while viewing
  flashdeck cards.md --log-level debug --log-file /tmp/flashdeck.log`,
	Version:       version.Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logging.Options{Level: logLevel, Output: logFile})
	},
	RunE: runView,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: OS config dir)/flashdeck/config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log destination; overrides "+logging.LogFileEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "flashdeck %s\n", version.Full())
	},
}
