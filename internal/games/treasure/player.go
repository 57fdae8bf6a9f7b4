package treasure

import (
	"github.com/vovakirdan/treasure-dash/internal/core"
)

// Status is the outcome of a player update.
type Status int

const (
	StatusAlive Status = iota
	StatusDeath
)

func (s Status) String() string {
	if s == StatusDeath {
		return "death"
	}
	return "alive"
}

// contactEpsilon absorbs float drift when testing which side a contact came from.
const contactEpsilon = 1e-6

// UpdatePlayer advances the player by one tick and reports whether it
// reached the death zone.
func UpdatePlayer(w *World, in core.InputFrame) Status {
	if w.Variant == VariantPlatformer {
		updatePlatformer(w, in)
	} else {
		updateClassic(w, in)
	}

	if w.Player.Bottom() >= w.Floor() {
		return StatusDeath
	}
	return StatusAlive
}

func updateClassic(w *World, in core.InputFrame) {
	p := &w.Player
	if in.Held(core.DirUp) {
		p.Y = max(0, p.Y-p.Speed)
	}
	if in.Held(core.DirDown) {
		p.Y = min(w.Height-p.H, p.Y+p.Speed)
	}
	if in.Held(core.DirLeft) {
		p.X = max(0, p.X-p.Speed)
	}
	if in.Held(core.DirRight) {
		p.X = min(w.Width-p.W, p.X+p.Speed)
	}
}

func updatePlatformer(w *World, in core.InputFrame) {
	phys := w.cfg.Platformer.Physics
	p := &w.Player

	if in.Held(core.DirLeft) {
		p.VX -= phys.Acceleration
	}
	if in.Held(core.DirRight) {
		p.VX += phys.Acceleration
	}
	p.VX = core.ClampF(p.VX, -p.Speed, p.Speed)
	p.VX *= phys.Friction

	if (in.Held(core.DirUp) || in.Has(core.ActionJump)) && p.OnGround {
		p.VY = phys.JumpPower
		p.OnGround = false
	}

	p.VY = min(p.VY+phys.Gravity, phys.MaxFallSpeed)

	prevX, prevY := p.X, p.Y
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 {
		p.X = 0
		p.VX = 0
	} else if p.X > w.Width-p.W {
		p.X = w.Width - p.W
		p.VX = 0
	}
	if p.Y < 0 {
		p.Y = 0
		if p.VY < 0 {
			p.VY = 0
		}
	}

	p.OnGround = false
	for _, plat := range w.Platforms {
		resolvePlatform(p, plat, prevX, prevY)
	}

	// A side push can shove the player past the canvas edge.
	if x := core.ClampF(p.X, 0, w.Width-p.W); x != p.X {
		p.X = x
		p.VX = 0
	}
}

// resolvePlatform pushes the player out of a platform it penetrates.
// The side is picked from where the player was before integrating.
func resolvePlatform(p *Player, plat Platform, prevX, prevY float64) {
	if !p.Rect().Overlaps(plat.Rect()) {
		return
	}

	switch {
	case p.VY >= 0 && prevY+p.H <= plat.Y+contactEpsilon:
		p.Y = plat.Y - p.H
		p.VY = 0
		p.OnGround = true
	case p.VY < 0 && prevY >= plat.Y+plat.H-contactEpsilon:
		p.Y = plat.Y + plat.H
		p.VY = 0
	default:
		fromLeft := prevX+p.W <= plat.X+contactEpsilon
		fromRight := prevX >= plat.X+plat.W-contactEpsilon
		if !fromLeft && !fromRight {
			// Already inside: leave through the nearer edge.
			pcx, _ := p.Rect().Center()
			qcx, _ := plat.Rect().Center()
			fromLeft = pcx < qcx
		}
		if fromLeft {
			p.X = plat.X - p.W
		} else {
			p.X = plat.X + plat.W
		}
		p.VX = 0
	}
}
