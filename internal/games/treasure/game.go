// Package treasure implements Treasure Dash, a single-screen collect-em-up.
// The player gathers treasures while dodging static and drifting obstacles
// and a death zone that grows from the bottom of the screen every level.
// The platformer variant adds gravity, jumping and platforms.
package treasure

import (
	"github.com/vovakirdan/treasure-dash/internal/config"
	"github.com/vovakirdan/treasure-dash/internal/core"
	"github.com/vovakirdan/treasure-dash/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the configuration the way Reset does.
func LoadConfig() (config.TreasureConfig, error) {
	cfg, err := config.LoadTreasure(configPath)
	if err != nil {
		return config.DefaultTreasureConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyTreasurePreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	variant  Variant
	world    *World
	runtime  core.RuntimeConfig
	cfg      config.TreasureConfig
	cfgErr   error
	injected bool // cfg came from NewWithConfig and is never reloaded
}

// New creates a classic Treasure Dash game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewPlatformer creates a platformer Treasure Dash game.
func NewPlatformer() *Game {
	return &Game{variant: VariantPlatformer}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(v Variant, cfg config.TreasureConfig) *Game {
	return &Game{variant: v, cfg: cfg, injected: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantPlatformer {
		return "treasure_platformer"
	}
	return "treasure"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantPlatformer {
		return "Treasure Dash (Platformer)"
	}
	return "Treasure Dash"
}

// Reset builds a fresh world for the runtime seed.
// A config that fails to load or validate falls back to the defaults;
// ConfigErr reports what went wrong.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfgErr = nil
	if !g.injected {
		g.cfg, g.cfgErr = LoadConfig()
	}
	if err := g.cfg.Validate(); err != nil {
		g.cfgErr = err
		g.cfg = config.DefaultTreasureConfig()
	}
	g.world = NewWorld(g.cfg, g.variant, runtime.Seed)
}

// ConfigErr returns the config problem found by the last Reset, if any.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Step handles session triggers, then advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
		g.world.Start()
	}
	if in.Has(core.ActionPause) {
		g.world.TogglePause()
	}

	events := g.world.Step(in)

	var notices []core.Notice
	for _, e := range events {
		if n, ok := NoticeFor(e); ok {
			notices = append(notices, n)
		}
	}
	return core.StepResult{State: g.State(), Notices: notices}
}

// Start begins an idle session.
func (g *Game) Start() bool {
	return g.world.Start()
}

// TogglePause pauses or resumes a running session.
func (g *Game) TogglePause() bool {
	return g.world.TogglePause()
}

// Restart returns the session to Idle on level 1.
func (g *Game) Restart() {
	g.world.Reset()
}

// Score returns the current score.
func (g *Game) Score() int { return g.world.Score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.world.Lives }

// Level returns the current level.
func (g *Game) Level() int { return g.world.Level }

// Phase returns the session phase.
func (g *Game) Phase() Phase { return g.world.Phase }

// World exposes the simulation state for inspection.
func (g *Game) World() *World { return g.world }

// Snapshot returns the current world state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:    w.Score,
		Lives:    w.Lives,
		Level:    w.Level,
		Running:  w.Phase == PhaseRunning,
		GameOver: w.Phase == PhaseGameOver,
		Paused:   w.Phase == PhasePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("treasure", func() registry.Game {
		return New()
	})
	registry.Register("treasure_platformer", func() registry.Game {
		return NewPlatformer()
	})
}
