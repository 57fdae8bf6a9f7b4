// Package config provides YAML-based game configuration loading and
// difficulty presets for Treasure Dash.
package config

// TreasureConfig contains all configuration for both Treasure Dash variants.
type TreasureConfig struct {
	Canvas     CanvasConfig    `yaml:"canvas"`
	Gameplay   GameplayConfig  `yaml:"gameplay"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	Particles  ParticleConfig  `yaml:"particles"`
	Placement  PlacementConfig `yaml:"placement"`
	Obstacles  ObstacleConfig  `yaml:"obstacles"`
	Classic    VariantConfig   `yaml:"classic"`
	Platformer VariantConfig   `yaml:"platformer"`
}

// CanvasConfig defines the fixed world bounds in world units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameplayConfig defines session-wide rules.
type GameplayConfig struct {
	Lives           int `yaml:"lives"`
	MovingFromLevel int `yaml:"moving_from_level"` // First level with moving obstacles
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	Treasure int `yaml:"treasure"`
	LevelUp  int `yaml:"level_up"`
}

// ParticleConfig defines the collection burst effect.
type ParticleConfig struct {
	Burst int     `yaml:"burst"` // Particles per collected treasure
	Life  int     `yaml:"life"`  // Lifetime in ticks
	Speed float64 `yaml:"speed"` // Velocity spread per axis
}

// KeepOut is a forbidden zone around the spawn pose: x < X and |y - spawnY| < Y.
type KeepOut struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlacementConfig defines the rejection sampling parameters.
type PlacementConfig struct {
	ObstacleAttempts int     `yaml:"obstacle_attempts"`
	TreasureAttempts int     `yaml:"treasure_attempts"`
	PlatformAttempts int     `yaml:"platform_attempts"`
	TreasureSize     float64 `yaml:"treasure_size"`
	StaticPadding    float64 `yaml:"static_padding"` // Treasure halo around static obstacles
	MovingPadding    float64 `yaml:"moving_padding"` // Treasure halo around moving obstacles
	ObstacleKeepOut  KeepOut `yaml:"obstacle_keep_out"`
	TreasureKeepOut  KeepOut `yaml:"treasure_keep_out"`
}

// ObstacleConfig defines moving obstacle motion.
type ObstacleConfig struct {
	LeashRadius float64 `yaml:"leash_radius"`
	MaxSpeed    float64 `yaml:"max_speed"` // Velocity components are drawn from [-MaxSpeed, MaxSpeed)
}

// VariantConfig holds everything that differs between classic and platformer.
type VariantConfig struct {
	Player      PlayerConfig      `yaml:"player"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Platforms   PlatformConfig    `yaml:"platforms"`
	Progression ProgressionConfig `yaml:"progression"`
}

// PlayerConfig defines the player's size and spawn column.
// The spawn row is always the vertical middle of the canvas.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
}

// PhysicsConfig defines platformer motion. Classic ignores it.
type PhysicsConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
	JumpPower    float64 `yaml:"jump_power"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlatformConfig defines platform generation. Classic ignores it.
type PlatformConfig struct {
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	Height      float64 `yaml:"height"`
	Clearance   float64 `yaml:"clearance"`    // Vertical gap kept free between platforms
	TopMargin   float64 `yaml:"top_margin"`   // Platforms never spawn above this line
	LedgeX      float64 `yaml:"ledge_x"`      // Spawn ledge left edge
	LedgeWidth  float64 `yaml:"ledge_width"`  // Spawn ledge width
	TreasureGap float64 `yaml:"treasure_gap"` // Space between a platform top and its treasure
}

// ProgressionConfig defines how the level number scales the game.
type ProgressionConfig struct {
	DeathZone      Curve `yaml:"death_zone"`
	Treasures      Curve `yaml:"treasures"`
	Obstacles      Curve `yaml:"obstacles"`
	ObstacleWidth  Curve `yaml:"obstacle_width"`
	ObstacleHeight Curve `yaml:"obstacle_height"`
	Platforms      Curve `yaml:"platforms"`
	Speed          Curve `yaml:"speed"` // Classic move speed, platformer max run speed
}

// Variant returns the block for the named variant.
func (c TreasureConfig) Variant(platformer bool) VariantConfig {
	if platformer {
		return c.Platformer
	}
	return c.Classic
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
// Unknown values return the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
