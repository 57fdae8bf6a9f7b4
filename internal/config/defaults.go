package config

import (
	_ "embed"
)

//go:embed defaults/treasure.yaml
var defaultTreasureYAML []byte

// DefaultTreasureConfig returns the hard-coded Treasure Dash configuration.
// It mirrors defaults/treasure.yaml and is used when the embedded file fails to parse.
func DefaultTreasureConfig() TreasureConfig {
	return TreasureConfig{
		Canvas: CanvasConfig{Width: 800, Height: 600},
		Gameplay: GameplayConfig{
			Lives:           3,
			MovingFromLevel: 3,
		},
		Scoring: ScoringConfig{
			Treasure: 100,
			LevelUp:  500,
		},
		Particles: ParticleConfig{
			Burst: 8,
			Life:  30,
			Speed: 4,
		},
		Placement: PlacementConfig{
			ObstacleAttempts: 50,
			TreasureAttempts: 100,
			PlatformAttempts: 100,
			TreasureSize:     20,
			StaticPadding:    40,
			MovingPadding:    60,
			ObstacleKeepOut:  KeepOut{X: 100, Y: 50},
			TreasureKeepOut:  KeepOut{X: 120, Y: 60},
		},
		Obstacles: ObstacleConfig{
			LeashRadius: 50,
			MaxSpeed:    1,
		},
		Classic: VariantConfig{
			Player: PlayerConfig{Width: 30, Height: 30, SpawnX: 50},
			Progression: ProgressionConfig{
				DeathZone:      Curve{Base: 10, PerLevel: 3},
				Treasures:      Curve{Base: 3, PerLevel: 2, Max: 25},
				Obstacles:      Curve{Base: 2, PerLevel: 1, Max: 12},
				ObstacleWidth:  Curve{Base: 40, PerLevel: 8, Max: 160},
				ObstacleHeight: Curve{Base: 40, PerLevel: 4, Max: 100},
				Speed:          Curve{Base: 5, PerLevel: 0.3, Max: 8, First: 5},
			},
		},
		Platformer: VariantConfig{
			Player: PlayerConfig{Width: 24, Height: 30, SpawnX: 50},
			Physics: PhysicsConfig{
				Acceleration: 0.8,
				Friction:     0.85,
				JumpPower:    -9,
				Gravity:      0.3,
				MaxFallSpeed: 10,
			},
			Platforms: PlatformConfig{
				MinWidth:    80,
				MaxWidth:    160,
				Height:      14,
				Clearance:   50,
				TopMargin:   60,
				LedgeX:      20,
				LedgeWidth:  120,
				TreasureGap: 6,
			},
			Progression: ProgressionConfig{
				DeathZone:      Curve{Base: 10, PerLevel: 3},
				Treasures:      Curve{Base: 3, PerLevel: 1, Max: 12},
				Obstacles:      Curve{Base: 1, PerLevel: 1, Max: 8},
				ObstacleWidth:  Curve{Base: 24, PerLevel: 4, Max: 64},
				ObstacleHeight: Curve{Base: 24, PerLevel: 2, Max: 40},
				Platforms:      Curve{Base: 5, PerLevel: 1, Max: 10},
				Speed:          Curve{Base: 5.75, PerLevel: 0.25, Max: 8},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "treasure", "treasure_platformer":
		return defaultTreasureYAML
	default:
		return nil
	}
}
