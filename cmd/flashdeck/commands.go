package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/flashdeck/internal/config"
	"github.com/muurk/flashdeck/internal/deck"
	"github.com/muurk/flashdeck/internal/logging"
	"github.com/muurk/flashdeck/internal/terminal"
	"github.com/muurk/flashdeck/internal/ui"
	"github.com/muurk/flashdeck/internal/viewer"
)

// defaultDeck is opened when neither arguments nor config name a deck.
const defaultDeck = "test.md"

// View command flags
var (
	interval    time.Duration
	forceConfig bool
)

func init() {
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "Pause between redraws (default from config, 16ms)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configInitCmd.Flags().BoolVar(&forceConfig, "force", false, "Overwrite an existing config file")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	paths := resolvePaths(args, cfg)
	d, err := deck.Load(paths)
	if err != nil {
		return err
	}

	if !ui.IsInteractive() {
		return errors.New("flashdeck needs an interactive terminal; use 'flashdeck list' to print the deck")
	}

	loopCfg, err := cfg.ViewerConfig()
	if err != nil {
		return err
	}
	if interval > 0 {
		loopCfg.Interval = interval
	}
	loopCfg.Exit = func(code int) {
		logging.Info("Viewer closed", zap.Int("exit_code", code))
		logging.Sync()
		os.Exit(code)
	}

	loop, err := viewer.NewLoop(terminal.NewTcell(), d, loopCfg)
	if err != nil {
		return err
	}

	logging.Info("Starting viewer",
		zap.Strings("sources", paths),
		zap.Int("cards", d.Len()),
		zap.Duration("interval", loopCfg.Interval),
	)

	if err := loop.Run(); err != nil {
		return fmt.Errorf("viewer stopped: %w", err)
	}
	return nil
}

// listCmd prints the deck without entering the viewer
var listCmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "Print the cards in a deck",
	Long: `Print every card in the deck with its number, title and a short preview.

Files are parsed exactly as the viewer parses them, so this is a quick way
to check titles and card separators.`,
	Example: `  flashdeck list spanish.md
  flashdeck list chapter1.md chapter2.md | less -R`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	paths := resolvePaths(args, cfg)
	d, err := deck.Load(paths)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(outWriter(cmd))
	return p.Show(ui.RenderDeckSummary(d, paths, p.Width()))
}

// keysCmd prints the active key bindings
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the viewer key bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		p := ui.NewPrinter(outWriter(cmd))
		return p.Show(ui.RenderKeyHelp(cfg.KeyMap(), p.Width()))
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the flashdeck config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := targetConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceConfig {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}

		if err := config.NewConfig().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := targetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// outWriter returns the command's output writer, or nil for stdout so the
// printer can detect a terminal.
func outWriter(cmd *cobra.Command) io.Writer {
	if w := cmd.OutOrStdout(); w != os.Stdout {
		return w
	}
	return nil
}

func targetConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// resolvePaths picks the deck sources: arguments first, then the config
// file's deck, then ./test.md.
func resolvePaths(args []string, cfg *config.Config) []string {
	if len(args) > 0 {
		return args
	}
	if cfg.Deck != "" {
		return []string{expandHome(cfg.Deck)}
	}
	return []string{defaultDeck}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
