package treasure

import "github.com/vovakirdan/treasure-dash/internal/config"

// Params are the level-dependent parameters of one level.
type Params struct {
	Level     int
	DeathZone float64
	Treasures int
	Obstacles int
	Moving    int
	Platforms int // Random platforms, excluding the spawn ledge
	ObstacleW float64
	ObstacleH float64
	Speed     float64
}

// Policy maps a level number to Params.
type Policy struct {
	prog       config.ProgressionConfig
	movingFrom int
}

// NewPolicy builds the policy for a variant.
func NewPolicy(cfg config.TreasureConfig, v Variant) Policy {
	return Policy{
		prog:       cfg.Variant(v == VariantPlatformer).Progression,
		movingFrom: cfg.Gameplay.MovingFromLevel,
	}
}

// DeathZone returns the height of the lethal band at the bottom of the canvas.
func (p Policy) DeathZone(level int) float64 {
	return p.prog.DeathZone.At(level)
}

// MovingCount returns how many of n obstacles move on the given level.
func (p Policy) MovingCount(level, n int) int {
	if p.movingFrom <= 0 || level < p.movingFrom {
		return 0
	}
	return n / 2
}

// At evaluates every curve for a level.
func (p Policy) At(level int) Params {
	obstacles := p.prog.Obstacles.Count(level)
	return Params{
		Level:     level,
		DeathZone: p.DeathZone(level),
		Treasures: p.prog.Treasures.Count(level),
		Obstacles: obstacles,
		Moving:    p.MovingCount(level, obstacles),
		Platforms: p.prog.Platforms.Count(level),
		ObstacleW: p.prog.ObstacleWidth.At(level),
		ObstacleH: p.prog.ObstacleHeight.At(level),
		Speed:     p.prog.Speed.At(level),
	}
}
