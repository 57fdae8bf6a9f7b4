package config

import "math"

// Curve is a linear function of the level number capped at Max.
// A zero Max means uncapped. A non-zero First replaces the value on level 1.
type Curve struct {
	Base     float64 `yaml:"base"`
	PerLevel float64 `yaml:"per_level"`
	Max      float64 `yaml:"max"`
	First    float64 `yaml:"first,omitempty"`
}

// At evaluates the curve for a 1-based level.
func (c Curve) At(level int) float64 {
	if level <= 1 && c.First != 0 {
		return c.First
	}
	v := c.Base + c.PerLevel*float64(level)
	if c.Max > 0 {
		v = math.Min(v, c.Max)
	}
	return v
}

// Count evaluates the curve and truncates it to a non-negative integer.
func (c Curve) Count(level int) int {
	n := int(c.At(level))
	if n < 0 {
		return 0
	}
	return n
}

// ApplyTreasurePreset modifies the config based on a difficulty preset.
func ApplyTreasurePreset(cfg *TreasureConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Placement.StaticPadding += 10
		cfg.Placement.MovingPadding += 10
	case DifficultyNormal:
		cfg.Gameplay.Lives = 3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Placement.StaticPadding = math.Max(0, cfg.Placement.StaticPadding-10)
		cfg.Placement.MovingPadding = math.Max(0, cfg.Placement.MovingPadding-10)
	}
}
