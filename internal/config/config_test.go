package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if *cfg != *def {
		t.Fatalf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geosketch.toml")
	content := `
[canvas]
width = 1024
pick_radius = 12.0

[replay]
delay = 250000000

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 1024 || cfg.Canvas.PickRadius != 12 {
		t.Fatalf("canvas = %+v", cfg.Canvas)
	}
	if cfg.Replay.Delay != 250*time.Millisecond {
		t.Fatalf("delay = %v", cfg.Replay.Delay)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Canvas.Height != 800 || !cfg.Storage.Autosave {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geosketch.toml")
	if err := os.WriteFile(path, []byte("[canvas\nwidth="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
