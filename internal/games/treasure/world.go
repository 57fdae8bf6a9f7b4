package treasure

import (
	"math/rand"

	"github.com/vovakirdan/treasure-dash/internal/config"
	"github.com/vovakirdan/treasure-dash/internal/core"
)

// World is the complete simulation state of one session.
// It owns the player and every placed entity; the collections are replaced
// wholesale whenever a level is generated.
type World struct {
	Width, Height float64
	Variant       Variant

	Level int
	Score int
	Lives int
	Phase Phase
	Tick  uint64

	Player    Player
	Treasures []Treasure
	Obstacles []Obstacle
	Platforms []Platform
	Particles []Particle

	params Params
	policy Policy
	cfg    config.TreasureConfig
	rng    *rand.Rand
	events []Event
}

// NewWorld creates a world in the Idle phase with level 1 generated.
// The config must have passed Validate.
func NewWorld(cfg config.TreasureConfig, variant Variant, seed int64) *World {
	w := &World{
		Width:   cfg.Canvas.Width,
		Height:  cfg.Canvas.Height,
		Variant: variant,
		policy:  NewPolicy(cfg, variant),
		cfg:     cfg,
		rng:     core.NewRand(seed),
	}
	w.Reset()
	return w
}

// Params returns the parameters of the current level.
func (w *World) Params() Params {
	return w.params
}

// DeathZone returns the current death zone height.
func (w *World) DeathZone() float64 {
	return w.params.DeathZone
}

// Floor returns the y-coordinate of the top of the death zone.
func (w *World) Floor() float64 {
	return w.Height - w.params.DeathZone
}

// SpawnPose returns the player's spawn position.
func (w *World) SpawnPose() (x, y float64) {
	return w.variantConfig().Player.SpawnX, w.Height / 2
}

func (w *World) variantConfig() config.VariantConfig {
	return w.cfg.Variant(w.Variant == VariantPlatformer)
}

// resetPlayer puts the player back on the spawn pose with zero velocity.
func (w *World) resetPlayer() {
	pc := w.variantConfig().Player
	x, y := w.SpawnPose()
	w.Player = Player{
		X:     x,
		Y:     y,
		W:     pc.Width,
		H:     pc.Height,
		Speed: w.params.Speed,
	}
}

// loadLevel sets the level parameters and regenerates every placed entity.
// Platforms come first so obstacles and treasures can avoid them.
func (w *World) loadLevel(level int) {
	w.Level = level
	w.params = w.policy.At(level)
	w.Platforms = w.generatePlatforms()
	w.Obstacles = w.generateObstacles()
	w.Treasures = w.generateTreasures()
	w.Particles = nil
	w.resetPlayer()
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// AllCollected reports whether the level is cleared.
// An empty treasure set never counts as cleared.
func (w *World) AllCollected() bool {
	if len(w.Treasures) == 0 {
		return false
	}
	for _, t := range w.Treasures {
		if !t.Collected {
			return false
		}
	}
	return true
}

// Remaining returns the number of uncollected treasures.
func (w *World) Remaining() int {
	n := 0
	for _, t := range w.Treasures {
		if !t.Collected {
			n++
		}
	}
	return n
}
