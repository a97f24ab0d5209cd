package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "miniplayer"

type Config struct {
	Transition TransitionConfig `koanf:"transition"`
	UI         UIConfig         `koanf:"ui"`
	Track      TrackConfig      `koanf:"track"`
}

// TransitionConfig holds the coordinator's policy constants and the base
// animation duration.
type TransitionConfig struct {
	CommitThreshold      float64 `koanf:"commit_threshold"`       // release progress needed to commit (0-1, default: 0.2)
	CancelDurationFactor float64 `koanf:"cancel_duration_factor"` // duration scale for cancelled runs (default: 0.5)
	DurationMs           int     `koanf:"duration_ms"`            // full transition duration (default: 400)
}

// Duration returns the base transition duration.
func (t TransitionConfig) Duration() time.Duration {
	return time.Duration(t.DurationMs) * time.Millisecond
}

// UIConfig holds rendering settings.
type UIConfig struct {
	FPS     int      `koanf:"fps"`     // frame rate for animation ticks (default: 30)
	Palette []string `koanf:"palette"` // background gradient stops, hex colors
}

// TrackConfig is the fake track shown in the player.
type TrackConfig struct {
	Title       string `koanf:"title"`
	Artist      string `koanf:"artist"`
	Album       string `koanf:"album"`
	DurationSec int    `koanf:"duration_sec"`
}

// Load reads config files in priority order (XDG config dir, then ./config.toml,
// last wins) and applies defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Default returns a config with every default applied, without touching the
// filesystem.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func getConfigPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		"config.toml",
	}
}

// applyDefaults fills in and range-checks every setting so downstream code
// never re-validates.
func (c *Config) applyDefaults() {
	if c.Transition.CommitThreshold <= 0 || c.Transition.CommitThreshold >= 1 {
		c.Transition.CommitThreshold = 0.2
	}
	if c.Transition.CancelDurationFactor < 0 || c.Transition.CancelDurationFactor > 2 {
		c.Transition.CancelDurationFactor = 0.5
	}
	if c.Transition.DurationMs <= 0 || c.Transition.DurationMs > 5000 {
		c.Transition.DurationMs = 400
	}

	if c.UI.FPS < 10 || c.UI.FPS > 120 {
		c.UI.FPS = 30
	}
	if len(c.UI.Palette) == 0 {
		c.UI.Palette = []string{"#1a1a2e", "#16213e", "#0f3460", "#533483"}
	}

	if c.Track.Title == "" {
		c.Track.Title = "Midnight City"
	}
	if c.Track.Artist == "" {
		c.Track.Artist = "M83"
	}
	if c.Track.Album == "" {
		c.Track.Album = "Hurry Up, We're Dreaming"
	}
	if c.Track.DurationSec <= 0 {
		c.Track.DurationSec = 243
	}
}
