package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Minimum canvas the placement generator can work with.
const (
	MinCanvasWidth  = 400
	MinCanvasHeight = 300
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("invalid config")

// LoadTreasure loads Treasure Dash configuration.
// Search order: customPath -> ~/.arcade/configs/treasure.yaml -> ./configs/treasure.yaml -> embedded default
func LoadTreasure(customPath string) (TreasureConfig, error) {
	cfg := DefaultTreasureConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("treasure.yaml"), filepath.Join("configs", "treasure.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultTreasureConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if err := candidate.Validate(); err != nil {
			return candidate, fmt.Errorf("config %s: %w", path, err)
		}
		return candidate, nil
	}

	// Use embedded default YAML
	var embedded TreasureConfig
	if err := yaml.Unmarshal(defaultTreasureYAML, &embedded); err != nil {
		return DefaultTreasureConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c TreasureConfig) Validate() error {
	if c.Canvas.Width < MinCanvasWidth || c.Canvas.Height < MinCanvasHeight {
		return fmt.Errorf("%w: canvas %.0fx%.0f is smaller than %dx%d",
			ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height, MinCanvasWidth, MinCanvasHeight)
	}
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	}
	if c.Scoring.Treasure < 0 || c.Scoring.LevelUp < 0 {
		return fmt.Errorf("%w: scoring awards must not be negative", ErrInvalidConfig)
	}
	if c.Particles.Burst < 0 || c.Particles.Life < 0 || c.Particles.Speed < 0 {
		return fmt.Errorf("%w: particle burst, life and speed must not be negative", ErrInvalidConfig)
	}
	if c.Obstacles.LeashRadius <= 0 || c.Obstacles.MaxSpeed < 0 {
		return fmt.Errorf("%w: obstacle leash_radius must be positive and max_speed non-negative", ErrInvalidConfig)
	}
	if c.Placement.TreasureSize <= 0 {
		return fmt.Errorf("%w: treasure size must be positive", ErrInvalidConfig)
	}
	if c.Placement.ObstacleAttempts <= 0 || c.Placement.TreasureAttempts <= 0 || c.Placement.PlatformAttempts <= 0 {
		return fmt.Errorf("%w: placement attempt budgets must be positive", ErrInvalidConfig)
	}
	variants := []struct {
		name string
		v    VariantConfig
	}{{"classic", c.Classic}, {"platformer", c.Platformer}}
	for _, vc := range variants {
		name, v := vc.name, vc.v
		if v.Player.Width <= 0 || v.Player.Height <= 0 {
			return fmt.Errorf("%w: %s player size must be positive", ErrInvalidConfig, name)
		}
		if v.Player.Width >= c.Canvas.Width || v.Player.Height >= c.Canvas.Height/2 {
			return fmt.Errorf("%w: %s player does not fit the canvas", ErrInvalidConfig, name)
		}
	}
	if c.Platformer.Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("%w: platformer max_fall_speed must be positive", ErrInvalidConfig)
	}
	p := c.Platformer.Platforms
	if p.Height <= 0 || p.MinWidth <= 0 || p.MaxWidth < p.MinWidth || p.LedgeWidth <= 0 {
		return fmt.Errorf("%w: platform sizes must be positive with max_width >= min_width", ErrInvalidConfig)
	}
	return nil
}
