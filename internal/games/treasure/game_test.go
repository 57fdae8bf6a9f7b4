package treasure

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/treasure-dash/internal/config"
	"github.com/vovakirdan/treasure-dash/internal/core"
	"github.com/vovakirdan/treasure-dash/internal/registry"
)

func newTestGame(t *testing.T, v Variant) *Game {
	t.Helper()
	g := NewWithConfig(v, config.DefaultTreasureConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"treasure", "treasure_platformer"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
	}
}

func TestGameSessionFlow(t *testing.T) {
	g := newTestGame(t, VariantClassic)

	if g.Phase() != PhaseIdle {
		t.Fatalf("new game phase = %s, want idle", g.Phase())
	}
	if s := g.State(); s.Lives != 3 || s.Level != 1 || s.Score != 0 || s.Running {
		t.Errorf("initial state = %+v", s)
	}

	res := g.Step(press(core.ActionConfirm))
	if !res.State.Running {
		t.Fatal("confirm should start the game")
	}

	res = g.Step(press(core.ActionPause))
	if !res.State.Paused || res.State.Running {
		t.Errorf("pause: state = %+v", res.State)
	}
	res = g.Step(press(core.ActionPause))
	if res.State.Paused || !res.State.Running {
		t.Errorf("unpause: state = %+v", res.State)
	}

	g.World().Lives = 1
	g.World().Player.Y = g.World().Floor()
	res = g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if len(res.Notices) != 2 || res.Notices[1].Title != "Game Over" {
		t.Errorf("notices = %+v", res.Notices)
	}

	res = g.Step(press(core.ActionRestart))
	if res.State.GameOver || res.State.Lives != 3 || g.Phase() != PhaseIdle {
		t.Errorf("restart: state = %+v phase %s", res.State, g.Phase())
	}
}

func TestGameLevelUpNotice(t *testing.T) {
	g := newTestGame(t, VariantClassic)
	g.Start()
	collectAllButLast(g.World())

	res := g.Step(core.NewInputFrame())
	if len(res.Notices) != 1 {
		t.Fatalf("notices = %+v, want one level-up banner", res.Notices)
	}
	if res.Notices[0].Title != "Level 2!" {
		t.Errorf("title = %q", res.Notices[0].Title)
	}
	if g.Level() != 2 || g.Score() != 600 {
		t.Errorf("level %d score %d", g.Level(), g.Score())
	}
}

func TestNoticeForMovingObstacles(t *testing.T) {
	n, ok := NoticeFor(LevelUpEvent{Params: Params{Level: 3, Obstacles: 5, Moving: 2, Treasures: 9, DeathZone: 19}})
	if !ok {
		t.Fatal("level up should produce a notice")
	}
	if !strings.Contains(strings.Join(n.Lines, "\n"), "Moving obstacles: 2") {
		t.Errorf("lines = %v", n.Lines)
	}

	if _, ok := NoticeFor(TreasureCollectedEvent{}); ok {
		t.Error("treasure pickups should not raise a banner")
	}
}

func TestGameRender(t *testing.T) {
	for _, v := range []Variant{VariantClassic, VariantPlatformer} {
		g := newTestGame(t, v)
		screen := core.NewScreen(80, 24)
		g.Render(screen)

		out := screen.String()
		if !strings.Contains(out, "Score: 0") {
			t.Errorf("%s: HUD missing score:\n%s", v, out)
		}
		if !strings.Contains(out, "ENTER to start") {
			t.Errorf("%s: idle overlay missing:\n%s", v, out)
		}
		if !strings.ContainsRune(out, TreasureChar) {
			t.Errorf("%s: no treasure drawn", v)
		}
		if n := strings.Count(screen.Row(23), string(DeathZoneChar)); n < 60 {
			t.Errorf("%s: death zone covers %d cells of the bottom row", v, n)
		}

		g.Start()
		screen.Clear()
		g.Render(screen)
		px, py := newViewport(g.World(), screen).point(g.World().Player.X, g.World().Player.Y)
		if c := screen.GetCell(px, py); c.Rune != PlayerChar || c.Color != core.ColorBrightRed {
			t.Errorf("%s: player cell = %+v", v, c)
		}
	}
}

func TestGameRenderSmallWindow(t *testing.T) {
	g := newTestGame(t, VariantClassic)
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected size warning:\n%s", screen.String())
	}
}

func TestGameResetFallsBackOnInvalidConfig(t *testing.T) {
	cfg := config.DefaultTreasureConfig()
	cfg.Canvas.Width = 100
	g := NewWithConfig(VariantClassic, cfg)
	g.Reset(core.DefaultConfig())

	if g.ConfigErr() == nil {
		t.Error("expected a config error")
	}
	if g.World().Width != 800 {
		t.Errorf("width = %v, want default 800", g.World().Width)
	}
}

func TestGameResetRejectsNegativeBurst(t *testing.T) {
	cfg := config.DefaultTreasureConfig()
	cfg.Particles.Burst = -1
	g := NewWithConfig(VariantClassic, cfg)
	g.Reset(core.DefaultConfig())

	if !errors.Is(g.ConfigErr(), config.ErrInvalidConfig) {
		t.Fatalf("ConfigErr = %v, want ErrInvalidConfig", g.ConfigErr())
	}
	burst := spawnBurst(g.World(), 100, 100)
	if len(burst) != config.DefaultTreasureConfig().Particles.Burst {
		t.Errorf("burst = %d particles, want the default count", len(burst))
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, VariantPlatformer)
		g.Step(press(core.ActionConfirm))
		for i := 0; i < 1000; i++ {
			g.Step(scriptedInput(i))
		}
		snap := g.Snapshot()
		return snap.Hash()
	}
	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}
