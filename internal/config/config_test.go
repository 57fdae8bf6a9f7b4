package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded TreasureConfig
	if err := yaml.Unmarshal(defaultTreasureYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if embedded != DefaultTreasureConfig() {
		t.Errorf("embedded defaults drifted from DefaultTreasureConfig:\n%+v\n%+v", embedded, DefaultTreasureConfig())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadTreasureCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treasure.yaml")
	data := []byte("gameplay:\n  lives: 7\ncanvas:\n  width: 1024\n  height: 768\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTreasure(path)
	if err != nil {
		t.Fatalf("LoadTreasure: %v", err)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Canvas.Width != 1024 {
		t.Errorf("overrides not applied: %+v", cfg.Gameplay)
	}
	// Unspecified keys keep their defaults.
	if cfg.Scoring.Treasure != 100 || cfg.Classic.Player.Width != 30 {
		t.Errorf("defaults lost on partial override: %+v", cfg.Scoring)
	}
}

func TestLoadTreasureErrors(t *testing.T) {
	if _, err := LoadTreasure(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("canvas: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTreasure(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	small := filepath.Join(t.TempDir(), "small.yaml")
	if err := os.WriteFile(small, []byte("canvas:\n  width: 320\n  height: 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTreasure(small); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("small canvas error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TreasureConfig)
	}{
		{"narrow canvas", func(c *TreasureConfig) { c.Canvas.Width = 399 }},
		{"short canvas", func(c *TreasureConfig) { c.Canvas.Height = 299 }},
		{"no lives", func(c *TreasureConfig) { c.Gameplay.Lives = 0 }},
		{"zero treasure", func(c *TreasureConfig) { c.Placement.TreasureSize = 0 }},
		{"zero budget", func(c *TreasureConfig) { c.Placement.ObstacleAttempts = 0 }},
		{"zero player", func(c *TreasureConfig) { c.Platformer.Player.Height = 0 }},
		{"inverted platform widths", func(c *TreasureConfig) { c.Platformer.Platforms.MaxWidth = 10 }},
		{"negative lives", func(c *TreasureConfig) { c.Gameplay.Lives = -1 }},
		{"negative burst", func(c *TreasureConfig) { c.Particles.Burst = -1 }},
		{"negative particle life", func(c *TreasureConfig) { c.Particles.Life = -1 }},
		{"negative treasure award", func(c *TreasureConfig) { c.Scoring.Treasure = -100 }},
		{"negative level-up award", func(c *TreasureConfig) { c.Scoring.LevelUp = -1 }},
		{"zero max fall speed", func(c *TreasureConfig) { c.Platformer.Physics.MaxFallSpeed = 0 }},
		{"zero leash radius", func(c *TreasureConfig) { c.Obstacles.LeashRadius = 0 }},
		{"zero treasure budget", func(c *TreasureConfig) { c.Placement.TreasureAttempts = 0 }},
		{"zero platform budget", func(c *TreasureConfig) { c.Placement.PlatformAttempts = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTreasureConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}

	min := DefaultTreasureConfig()
	min.Canvas = CanvasConfig{Width: MinCanvasWidth, Height: MinCanvasHeight}
	if err := min.Validate(); err != nil {
		t.Errorf("minimum canvas should be valid: %v", err)
	}
}

func TestCurve(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		level int
		want  float64
	}{
		{"linear", Curve{Base: 10, PerLevel: 3}, 1, 13},
		{"linear level 3", Curve{Base: 10, PerLevel: 3}, 3, 19},
		{"capped", Curve{Base: 3, PerLevel: 2, Max: 25}, 20, 25},
		{"below cap", Curve{Base: 3, PerLevel: 2, Max: 25}, 2, 7},
		{"fractional", Curve{Base: 5, PerLevel: 0.3, Max: 8}, 2, 5.6},
		{"first level override", Curve{Base: 5, PerLevel: 0.3, Max: 8, First: 5}, 1, 5},
		{"override only on level 1", Curve{Base: 5, PerLevel: 0.3, Max: 8, First: 5}, 2, 5.6},
		{"override ignores cap", Curve{Base: 0, PerLevel: 1, Max: 2, First: 3}, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.curve.At(tt.level)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("At(%d) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}

	if n := (Curve{Base: 2, PerLevel: 1, Max: 12}).Count(1); n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
	if n := (Curve{Base: -5}).Count(1); n != 0 {
		t.Errorf("negative Count = %d, want 0", n)
	}
}

func TestApplyTreasurePreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		staticPad float64
	}{
		{DifficultyEasy, 5, 50},
		{DifficultyNormal, 3, 40},
		{DifficultyHard, 2, 30},
		{"", 3, 40},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTreasureConfig()
			ApplyTreasurePreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Placement.StaticPadding != tt.staticPad {
				t.Errorf("static padding = %v, want %v", cfg.Placement.StaticPadding, tt.staticPad)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("treasure")) == 0 || len(GetDefaultYAML("treasure_platformer")) == 0 {
		t.Error("treasure variants should have embedded YAML")
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no YAML")
	}
}
