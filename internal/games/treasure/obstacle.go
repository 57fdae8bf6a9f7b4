package treasure

import "github.com/vovakirdan/treasure-dash/internal/core"

// UpdateObstacle moves a moving obstacle one tick inside [0, width] x [0, floor].
// Static obstacles are left untouched.
func UpdateObstacle(o *Obstacle, width, floor float64) {
	if !o.Moving {
		return
	}

	o.X += o.VX
	o.Y += o.VY

	if o.X <= 0 || o.X+o.W >= width {
		o.VX = -o.VX
		o.X = core.ClampF(o.X, 0, width-o.W)
	}

	if o.Y <= 0 || o.Y+o.H >= floor {
		o.VY = -o.VY
		o.Y = core.ClampF(o.Y, 0, floor-o.H)
	}

	// Soft leash: reverse once too far, the obstacle may overshoot briefly.
	if core.Distance(o.OriginX, o.OriginY, o.X, o.Y) > o.Leash {
		o.VX = -o.VX
		o.VY = -o.VY
	}
}

// ObstacleHits reports whether the obstacle overlaps the player.
func ObstacleHits(o Obstacle, p Player) bool {
	return o.Rect().Overlaps(p.Rect())
}
