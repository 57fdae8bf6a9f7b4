package treasure

import "math"

// Snapshot is a flat copy of the world used for determinism checks.
// Float positions are stored as their IEEE bit patterns so equal hashes mean
// bit-identical state.
type Snapshot struct {
	Tick      uint64
	Variant   int
	Phase     int
	Level     int
	Score     int
	Lives     int
	Remaining int

	// Player: X, Y, VX, VY as float bits, OnGround as 0/1
	PlayerData []uint64

	// Each treasure is 3 values: X, Y, Collected
	TreasureData []uint64

	// Each obstacle is 5 values: X, Y, VX, VY, Moving
	ObstacleData []uint64

	// Each platform is 3 values: X, Y, W
	PlatformData []uint64

	ParticleCount int
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	p := w.Player
	snap := Snapshot{
		Tick:      w.Tick,
		Variant:   int(w.Variant),
		Phase:     int(w.Phase),
		Level:     w.Level,
		Score:     w.Score,
		Lives:     w.Lives,
		Remaining: w.Remaining(),
		PlayerData: []uint64{
			math.Float64bits(p.X), math.Float64bits(p.Y),
			math.Float64bits(p.VX), math.Float64bits(p.VY),
			boolBits(p.OnGround),
		},
		TreasureData:  make([]uint64, 0, len(w.Treasures)*3),
		ObstacleData:  make([]uint64, 0, len(w.Obstacles)*5),
		PlatformData:  make([]uint64, 0, len(w.Platforms)*3),
		ParticleCount: len(w.Particles),
	}

	for _, t := range w.Treasures {
		snap.TreasureData = append(snap.TreasureData,
			math.Float64bits(t.X), math.Float64bits(t.Y), boolBits(t.Collected))
	}
	for _, o := range w.Obstacles {
		snap.ObstacleData = append(snap.ObstacleData,
			math.Float64bits(o.X), math.Float64bits(o.Y),
			math.Float64bits(o.VX), math.Float64bits(o.VY), boolBits(o.Moving))
	}
	for _, pl := range w.Platforms {
		snap.PlatformData = append(snap.PlatformData,
			math.Float64bits(pl.X), math.Float64bits(pl.Y), math.Float64bits(pl.W))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Variant)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation

	for _, data := range [][]uint64{snap.PlayerData, snap.TreasureData, snap.ObstacleData, snap.PlatformData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + v
		}
	}
	return h
}
