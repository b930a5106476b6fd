// Package config loads the TOML configuration file, falling back to
// built-in defaults when no file is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Canvas  CanvasConfig  `toml:"canvas"`
	Replay  ReplayConfig  `toml:"replay"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

type CanvasConfig struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	PickRadius float64 `toml:"pick_radius"` // in pixels
}

type ReplayConfig struct {
	Delay time.Duration `toml:"delay"`
}

type StorageConfig struct {
	AutosavePath string `toml:"autosave_path"`
	Autosave     bool   `toml:"autosave"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the config file at path. A missing file is not an error; the
// defaults apply. A present but malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:      800,
			Height:     800,
			PickRadius: 8,
		},
		Replay: ReplayConfig{
			Delay: time.Second,
		},
		Storage: StorageConfig{
			AutosavePath: "points.json",
			Autosave:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
