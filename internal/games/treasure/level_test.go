package treasure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/treasure-dash/internal/config"
)

func TestPolicyClassic(t *testing.T) {
	p := NewPolicy(config.DefaultTreasureConfig(), VariantClassic)

	tests := []struct {
		level int
		want  Params
	}{
		{1, Params{Level: 1, DeathZone: 13, Treasures: 5, Obstacles: 3, Moving: 0, ObstacleW: 48, ObstacleH: 44, Speed: 5}},
		{2, Params{Level: 2, DeathZone: 16, Treasures: 7, Obstacles: 4, Moving: 0, ObstacleW: 56, ObstacleH: 48, Speed: 5.6}},
		{3, Params{Level: 3, DeathZone: 19, Treasures: 9, Obstacles: 5, Moving: 2, ObstacleW: 64, ObstacleH: 52, Speed: 5.9}},
		{20, Params{Level: 20, DeathZone: 70, Treasures: 25, Obstacles: 12, Moving: 6, ObstacleW: 160, ObstacleH: 100, Speed: 8}},
	}
	for _, tt := range tests {
		got := p.At(tt.level)
		assert.InDelta(t, tt.want.Speed, got.Speed, 1e-9, "level %d speed", tt.level)
		got.Speed = tt.want.Speed
		assert.Equal(t, tt.want, got, "level %d", tt.level)
	}
}

func TestPolicyPlatformer(t *testing.T) {
	p := NewPolicy(config.DefaultTreasureConfig(), VariantPlatformer)

	l1 := p.At(1)
	assert.Equal(t, 13.0, l1.DeathZone)
	assert.Equal(t, 4, l1.Treasures)
	assert.Equal(t, 2, l1.Obstacles)
	assert.Equal(t, 6, l1.Platforms)
	assert.Equal(t, 28.0, l1.ObstacleW)
	assert.Equal(t, 26.0, l1.ObstacleH)
	assert.InDelta(t, 6.0, l1.Speed, 1e-9)

	capped := p.At(50)
	assert.Equal(t, 12, capped.Treasures)
	assert.Equal(t, 8, capped.Obstacles)
	assert.Equal(t, 10, capped.Platforms)
	assert.Equal(t, 64.0, capped.ObstacleW)
	assert.Equal(t, 40.0, capped.ObstacleH)
	assert.Equal(t, 8.0, capped.Speed)
	assert.Equal(t, 4, capped.Moving)
}

func TestMovingCount(t *testing.T) {
	p := NewPolicy(config.DefaultTreasureConfig(), VariantClassic)
	assert.Equal(t, 0, p.MovingCount(1, 3))
	assert.Equal(t, 0, p.MovingCount(2, 4))
	assert.Equal(t, 2, p.MovingCount(3, 5))
	assert.Equal(t, 3, p.MovingCount(4, 6))

	cfg := config.DefaultTreasureConfig()
	cfg.Gameplay.MovingFromLevel = 0
	assert.Equal(t, 0, NewPolicy(cfg, VariantClassic).MovingCount(10, 12), "zero start level disables moving obstacles")
}

func TestDeathZoneGrowsEveryLevel(t *testing.T) {
	for _, v := range []Variant{VariantClassic, VariantPlatformer} {
		p := NewPolicy(config.DefaultTreasureConfig(), v)
		for level := 1; level < 30; level++ {
			assert.Equal(t, 3.0, p.DeathZone(level+1)-p.DeathZone(level), "%s level %d", v, level)
		}
	}
}
