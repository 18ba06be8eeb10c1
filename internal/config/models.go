package config

import (
	"fmt"
	"time"

	"github.com/muurk/flashdeck/internal/viewer"
)

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// DefaultTickInterval is the frame interval written to new config files.
const DefaultTickInterval = "16ms"

// Config represents the entire user configuration file.
type Config struct {
	Version      int    `yaml:"version"`
	Deck         string `yaml:"deck,omitempty"`          // Card source opened when no files are given
	TickInterval string `yaml:"tick_interval,omitempty"` // Go duration between redraws, e.g. "16ms"
	Keys         *Keys  `yaml:"keys,omitempty"`
}

// Keys overrides the viewer key bindings. Each list holds key names such
// as "left", "enter", "shift+tab" or a single character. An empty list
// keeps the default binding for that action.
type Keys struct {
	Previous []string `yaml:"previous,omitempty"`
	Next     []string `yaml:"next,omitempty"`
	Quit     []string `yaml:"quit,omitempty"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:      CurrentVersion,
		TickInterval: DefaultTickInterval,
		Keys: &Keys{
			Previous: append([]string(nil), viewer.DefaultPreviousKeys...),
			Next:     append([]string(nil), viewer.DefaultNextKeys...),
			Quit:     append([]string(nil), viewer.DefaultQuitKeys...),
		},
	}
}

// Interval parses TickInterval. An empty value yields the viewer default.
func (c *Config) Interval() (time.Duration, error) {
	if c.TickInterval == "" {
		return viewer.DefaultInterval, nil
	}

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid tick_interval %q: %w", c.TickInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid tick_interval %q: must be positive", c.TickInterval)
	}
	return d, nil
}

// KeyMap builds the viewer key map from the configured bindings.
func (c *Config) KeyMap() viewer.KeyMap {
	if c.Keys == nil {
		return viewer.DefaultKeyMap()
	}
	return viewer.NewKeyMap(c.Keys.Previous, c.Keys.Next, c.Keys.Quit)
}

// Validate checks the fields that can be checked without touching disk.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	return nil
}

// ViewerConfig translates the file settings into loop settings.
func (c *Config) ViewerConfig() (viewer.Config, error) {
	interval, err := c.Interval()
	if err != nil {
		return viewer.Config{}, err
	}

	keys := c.KeyMap()
	return viewer.Config{
		Interval: interval,
		Keys:     &keys,
	}, nil
}
