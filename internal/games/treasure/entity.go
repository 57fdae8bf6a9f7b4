package treasure

import "github.com/vovakirdan/treasure-dash/internal/core"

// Player is the avatar. It is repositioned on death and level up, never destroyed.
type Player struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64 // Platformer velocity
	Speed    float64 // Classic move speed, platformer max run speed
	OnGround bool
}

// Rect returns the player's hitbox.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// Treasure is a collectible. Collected only ever goes from false to true.
type Treasure struct {
	X, Y      float64
	W, H      float64
	Collected bool
}

// Rect returns the treasure's hitbox.
func (t Treasure) Rect() core.RectF {
	return core.NewRectF(t.X, t.Y, t.W, t.H)
}

// Obstacle is a lethal block. Moving obstacles drift around their origin.
type Obstacle struct {
	X, Y             float64
	W, H             float64
	Moving           bool
	VX, VY           float64
	OriginX, OriginY float64
	Leash            float64
}

// Rect returns the obstacle's hitbox.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Platform is a static ledge the platformer player can stand on.
type Platform struct {
	X, Y float64
	W, H float64
}

// Rect returns the platform's bounds.
func (p Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Particle is a short-lived visual spark.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
}

// Variant selects the movement model.
type Variant int

const (
	VariantClassic    Variant = iota // Free four-way movement
	VariantPlatformer                // Gravity, jumping, platforms
)

// String returns the CLI name of the variant.
func (v Variant) String() string {
	if v == VariantPlatformer {
		return "platformer"
	}
	return "classic"
}
