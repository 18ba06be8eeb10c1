// Package config provides user configuration management for flashdeck.
//
// This package manages an optional YAML file holding the default deck path,
// the redraw interval and key binding overrides. The viewer itself never
// reads configuration; the CLI loads it and passes the result in as a
// viewer.Config.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/flashdeck/config.yaml or $HOME/.config/flashdeck/config.yaml
//   - macOS: $HOME/.config/flashdeck/config.yaml
//   - Windows: %LOCALAPPDATA%\flashdeck\config.yaml
//
// # File Format
//
//	version: 1
//	deck: ~/cards/spanish.md
//	tick_interval: 16ms
//	keys:
//	  previous: [left, backspace, shift+tab, h]
//	  next: [right, enter, tab, l]
//	  quit: [q]
//
// A missing file is equivalent to the defaults above without a deck.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	loopCfg, err := cfg.ViewerConfig()
//	if err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Save is serialised by a package mutex and writes through a temporary file
// and rename, so readers never observe a half-written file.
package config
