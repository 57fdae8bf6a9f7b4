package treasure

import "github.com/vovakirdan/treasure-dash/internal/core"

// spawnBurst creates the collection sparkle at (x, y).
func spawnBurst(w *World, x, y float64) []Particle {
	pc := w.cfg.Particles
	burst := make([]Particle, pc.Burst)
	for i := range burst {
		burst[i] = Particle{
			X:       x,
			Y:       y,
			VX:      core.RandSigned(w.rng, pc.Speed/2),
			VY:      core.RandSigned(w.rng, pc.Speed/2),
			Life:    pc.Life,
			MaxLife: pc.Life,
		}
	}
	return burst
}

// UpdateParticles ages every particle and drops the expired ones in place.
func UpdateParticles(ps []Particle) []Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	return alive
}
