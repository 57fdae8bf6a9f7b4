package treasure

import (
	"math"

	"github.com/vovakirdan/treasure-dash/internal/config"
	"github.com/vovakirdan/treasure-dash/internal/core"
)

// candidate draws a uniformly random w x h rectangle above the death zone.
func (w *World) candidate(cw, ch float64) core.RectF {
	x := core.RandRange(w.rng, 0, w.Width-cw)
	y := core.RandRange(w.rng, 0, w.Floor()-ch)
	return core.NewRectF(x, y, cw, ch)
}

// sample draws candidates until one is not blocked or the budget runs out.
// The last candidate is returned either way; ok reports whether it is clean.
func sample(budget int, draw func() core.RectF, blocked func(core.RectF) bool) (r core.RectF, ok bool) {
	for attempt := 0; attempt < budget; attempt++ {
		r = draw()
		if !blocked(r) {
			return r, true
		}
	}
	return r, false
}

// inKeepOut reports whether a candidate's top-left corner sits in the zone
// reserved around the spawn pose.
func (w *World) inKeepOut(r core.RectF, k config.KeepOut) bool {
	_, spawnY := w.SpawnPose()
	return r.X < k.X && math.Abs(r.Y-spawnY) < k.Y
}

func overlapsAny[T interface{ Rect() core.RectF }](r core.RectF, items []T) bool {
	for _, it := range items {
		if r.Overlaps(it.Rect()) {
			return true
		}
	}
	return false
}

// generatePlatforms builds the spawn ledge followed by random platforms.
// Classic levels have no platforms.
func (w *World) generatePlatforms() []Platform {
	if w.Variant != VariantPlatformer {
		return nil
	}

	pc := w.cfg.Platformer.Platforms
	_, spawnY := w.SpawnPose()
	plats := make([]Platform, 0, w.params.Platforms+1)
	plats = append(plats, Platform{
		X: pc.LedgeX,
		Y: spawnY + w.cfg.Platformer.Player.Height,
		W: pc.LedgeWidth,
		H: pc.Height,
	})

	// Lowest platform top that still leaves room to stand above the death zone.
	maxY := w.Floor() - pc.Height - w.cfg.Platformer.Player.Height
	draw := func() core.RectF {
		pw := core.RandRange(w.rng, pc.MinWidth, pc.MaxWidth)
		x := core.RandRange(w.rng, 0, w.Width-pw)
		y := core.RandRange(w.rng, pc.TopMargin, maxY)
		return core.NewRectF(x, y, pw, pc.Height)
	}
	blocked := func(r core.RectF) bool {
		halo := core.NewRectF(r.X, r.Y-pc.Clearance, r.W, r.H+2*pc.Clearance)
		return overlapsAny(halo, plats)
	}

	for i := 0; i < w.params.Platforms; i++ {
		r, _ := sample(w.cfg.Placement.PlatformAttempts, draw, blocked)
		plats = append(plats, Platform{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	return plats
}

// generateObstacles places the level's obstacles. The first Moving of them move.
func (w *World) generateObstacles() []Obstacle {
	p := w.params
	obs := make([]Obstacle, 0, p.Obstacles)

	draw := func() core.RectF { return w.candidate(p.ObstacleW, p.ObstacleH) }
	blocked := func(r core.RectF) bool {
		return overlapsAny(r, obs) ||
			w.inKeepOut(r, w.cfg.Placement.ObstacleKeepOut) ||
			overlapsAny(r, w.Platforms)
	}

	for i := 0; i < p.Obstacles; i++ {
		r, _ := sample(w.cfg.Placement.ObstacleAttempts, draw, blocked)
		obs = append(obs, w.newObstacle(r, i < p.Moving))
	}
	return obs
}

func (w *World) newObstacle(r core.RectF, moving bool) Obstacle {
	o := Obstacle{X: r.X, Y: r.Y, W: r.W, H: r.H, Moving: moving}
	if moving {
		speed := w.cfg.Obstacles.MaxSpeed
		o.VX = core.RandSigned(w.rng, speed)
		o.VY = core.RandSigned(w.rng, speed)
		o.OriginX, o.OriginY = r.X, r.Y
		o.Leash = w.cfg.Obstacles.LeashRadius
	}
	return o
}

// treasureBlocked applies the rules shared by both variants: no overlap with an
// obstacle or its padding halo, and nothing in the spawn keep-out.
func (w *World) treasureBlocked(r core.RectF) bool {
	pl := w.cfg.Placement
	for _, o := range w.Obstacles {
		pad := pl.StaticPadding
		if o.Moving {
			pad = pl.MovingPadding
		}
		if r.Overlaps(o.Rect().Inflate(pad)) {
			return true
		}
	}
	return w.inKeepOut(r, pl.TreasureKeepOut)
}

func (w *World) generateTreasures() []Treasure {
	if w.Variant == VariantPlatformer {
		return w.generatePlatformTreasures()
	}

	size := w.cfg.Placement.TreasureSize
	n := w.params.Treasures
	ts := make([]Treasure, 0, n)
	draw := func() core.RectF { return w.candidate(size, size) }
	for i := 0; i < n; i++ {
		r, _ := sample(w.cfg.Placement.TreasureAttempts, draw, w.treasureBlocked)
		ts = append(ts, newTreasure(r))
	}
	return ts
}

// generatePlatformTreasures seeds one treasure above each random platform,
// then samples the shortfall. A sample that exhausts its budget is skipped,
// but the level never ends up without treasure.
func (w *World) generatePlatformTreasures() []Treasure {
	size := w.cfg.Placement.TreasureSize
	gap := w.cfg.Platformer.Platforms.TreasureGap
	n := w.params.Treasures
	ts := make([]Treasure, 0, n)

	for _, plat := range w.Platforms[min(1, len(w.Platforms)):] {
		if len(ts) >= n {
			break
		}
		r := core.NewRectF(plat.X+(plat.W-size)/2, plat.Y-gap-size, size, size)
		if r.Y < 0 || w.treasureBlocked(r) {
			continue
		}
		ts = append(ts, newTreasure(r))
	}

	draw := func() core.RectF { return w.candidate(size, size) }
	blocked := func(r core.RectF) bool {
		return w.treasureBlocked(r) || overlapsAny(r, w.Platforms) || overlapsAny(r, ts)
	}

	var last core.RectF
	for shortfall := n - len(ts); shortfall > 0; shortfall-- {
		r, ok := sample(w.cfg.Placement.TreasureAttempts, draw, blocked)
		last = r
		if ok {
			ts = append(ts, newTreasure(r))
		}
	}

	if len(ts) == 0 && n > 0 {
		ts = append(ts, newTreasure(last))
	}
	return ts
}

func newTreasure(r core.RectF) Treasure {
	return Treasure{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
