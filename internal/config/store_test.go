package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/muurk/flashdeck/internal/terminal"
	"github.com/muurk/flashdeck/internal/viewer"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Setenv("LOCALAPPDATA", `C:\Users\test\AppData\Local`)
		want := filepath.Join(`C:\Users\test\AppData\Local`, "flashdeck")
		if got, err := GetConfigDir(); err != nil || got != want {
			t.Errorf("GetConfigDir() = %v, %v; want %v", got, err, want)
		}
		return
	}

	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
		got, err := GetConfigDir()
		if err != nil {
			t.Fatalf("GetConfigDir() error = %v", err)
		}
		if want := filepath.Join("/tmp/xdg-test", "flashdeck"); got != want {
			t.Errorf("GetConfigDir() = %v, want %v", got, want)
		}
	})

	t.Run("home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		got, err := GetConfigDir()
		if err != nil {
			t.Fatalf("GetConfigDir() error = %v", err)
		}
		if want := filepath.Join(home, ".config", "flashdeck"); got != want {
			t.Errorf("GetConfigDir() = %v, want %v", got, want)
		}
	})
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
	if cfg.TickInterval != DefaultTickInterval {
		t.Errorf("TickInterval = %q, want %q", cfg.TickInterval, DefaultTickInterval)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Deck = "/home/user/cards.md"
	cfg.TickInterval = "33ms"
	cfg.Keys.Next = []string{"l", "right"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after Save()")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Deck != cfg.Deck {
		t.Errorf("Deck = %q, want %q", loaded.Deck, cfg.Deck)
	}

	interval, err := loaded.Interval()
	if err != nil {
		t.Fatalf("Interval() error = %v", err)
	}
	if interval != 33*time.Millisecond {
		t.Errorf("Interval() = %v, want 33ms", interval)
	}

	keys := loaded.KeyMap()
	if got := keys.Action(terminal.RuneEvent('l')); got != viewer.ActionNext {
		t.Errorf("loaded KeyMap Action(l) = %v, want next", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad version", content: "version: 2\n", wantErr: "unsupported config version"},
		{name: "bad interval", content: "version: 1\ntick_interval: soon\n", wantErr: "invalid tick_interval"},
		{name: "negative interval", content: "version: 1\ntick_interval: -5ms\n", wantErr: "must be positive"},
		{name: "bad yaml", content: "version: [1\n", wantErr: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ViewerConfig(t *testing.T) {
	cfg := &Config{Version: CurrentVersion}

	vc, err := cfg.ViewerConfig()
	if err != nil {
		t.Fatalf("ViewerConfig() error = %v", err)
	}
	if vc.Interval != viewer.DefaultInterval {
		t.Errorf("Interval = %v, want %v", vc.Interval, viewer.DefaultInterval)
	}
	if vc.Keys == nil {
		t.Fatal("Keys should not be nil")
	}
	if got := vc.Keys.Action(terminal.KeyEvent(terminal.KeyTab)); got != viewer.ActionNext {
		t.Errorf("default Action(tab) = %v, want next", got)
	}
}
