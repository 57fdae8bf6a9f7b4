package treasure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticObstacleNeverMoves(t *testing.T) {
	o := Obstacle{X: 100, Y: 100, W: 40, H: 40, VX: 3, VY: 3}
	UpdateObstacle(&o, 800, 587)
	assert.Equal(t, 100.0, o.X)
	assert.Equal(t, 100.0, o.Y)
}

func TestMovingObstacleBounces(t *testing.T) {
	tests := []struct {
		name           string
		o              Obstacle
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{
			name:  "left edge",
			o:     Obstacle{X: 0.5, Y: 100, W: 40, H: 40, VX: -1, VY: 0, OriginX: 10, OriginY: 100, Leash: 50},
			wantX: 0, wantY: 100, wantVX: 1, wantVY: 0,
		},
		{
			name:  "right edge",
			o:     Obstacle{X: 759.5, Y: 100, W: 40, H: 40, VX: 1, VY: 0, OriginX: 750, OriginY: 100, Leash: 50},
			wantX: 760, wantY: 100, wantVX: -1, wantVY: 0,
		},
		{
			name:  "top edge",
			o:     Obstacle{X: 300, Y: 0.5, W: 40, H: 40, VX: 0, VY: -1, OriginX: 300, OriginY: 10, Leash: 50},
			wantX: 300, wantY: 0, wantVX: 0, wantVY: 1,
		},
		{
			name:  "death zone",
			o:     Obstacle{X: 300, Y: 546.5, W: 40, H: 40, VX: 0, VY: 1, OriginX: 300, OriginY: 540, Leash: 50},
			wantX: 300, wantY: 547, wantVX: 0, wantVY: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.o
			o.Moving = true
			UpdateObstacle(&o, 800, 587)
			assert.InDelta(t, tt.wantX, o.X, 1e-9)
			assert.InDelta(t, tt.wantY, o.Y, 1e-9)
			assert.Equal(t, tt.wantVX, o.VX)
			assert.Equal(t, tt.wantVY, o.VY)
		})
	}
}

func TestMovingObstacleLeash(t *testing.T) {
	o := Obstacle{X: 349.5, Y: 200, W: 40, H: 40, Moving: true, VX: 1, VY: 0.5, OriginX: 300, OriginY: 200, Leash: 50}
	UpdateObstacle(&o, 800, 587)
	assert.Equal(t, -1.0, o.VX, "past the leash both components reverse")
	assert.Equal(t, -0.5, o.VY)

	// The leash is soft: the obstacle heads back but stays where it overshot.
	assert.InDelta(t, 350.5, o.X, 1e-9)
}

func TestMovingObstacleStaysNearOrigin(t *testing.T) {
	o := Obstacle{X: 300, Y: 300, W: 40, H: 40, Moving: true, VX: 0.9, VY: -0.7, OriginX: 300, OriginY: 300, Leash: 50}
	for i := 0; i < 5000; i++ {
		UpdateObstacle(&o, 800, 587)
		dx, dy := o.X-o.OriginX, o.Y-o.OriginY
		assert.LessOrEqual(t, dx*dx+dy*dy, 52.0*52.0, "tick %d", i)
		assert.GreaterOrEqual(t, o.Y, 0.0)
		assert.LessOrEqual(t, o.Y+o.H, 587.0)
	}
}

func TestObstacleHits(t *testing.T) {
	o := Obstacle{X: 100, Y: 100, W: 40, H: 40}
	assert.True(t, ObstacleHits(o, Player{X: 120, Y: 120, W: 30, H: 30}))
	assert.False(t, ObstacleHits(o, Player{X: 140, Y: 100, W: 30, H: 30}), "touching is not a hit")
	assert.False(t, ObstacleHits(o, Player{X: 400, Y: 400, W: 30, H: 30}))
}
