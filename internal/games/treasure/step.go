package treasure

import "github.com/vovakirdan/treasure-dash/internal/core"

// Step advances the world by one tick and returns the events it raised.
// Ticks outside the Running phase do nothing.
func (w *World) Step(in core.InputFrame) []Event {
	if w.Phase != PhaseRunning {
		return nil
	}
	w.events = nil
	w.Tick++

	if UpdatePlayer(w, in) == StatusDeath {
		if w.loseLife(CauseDeathZone) {
			return w.events
		}
	}

	w.Particles = UpdateParticles(w.Particles)

	floor := w.Floor()
	for i := range w.Obstacles {
		UpdateObstacle(&w.Obstacles[i], w.Width, floor)
	}

	for i := range w.Treasures {
		CollectTreasure(w, i)
	}

	// Only the first obstacle hit counts; the player is back on spawn after it.
	for _, o := range w.Obstacles {
		if ObstacleHits(o, w.Player) {
			if w.loseLife(CauseObstacle) {
				return w.events
			}
			break
		}
	}

	if w.AllCollected() {
		w.levelUp()
	}
	return w.events
}

// loseLife takes a life for cause and reports whether the game is over.
func (w *World) loseLife(cause Cause) bool {
	w.Lives--
	w.emit(LifeLostEvent{Cause: cause, Lives: max(w.Lives, 0)})
	if w.Lives <= 0 {
		w.Lives = 0
		w.Phase = PhaseGameOver
		w.emit(GameOverEvent{Score: w.Score, Level: w.Level})
		return true
	}
	w.resetPlayer()
	return false
}

func (w *World) levelUp() {
	w.Score += w.cfg.Scoring.LevelUp
	w.loadLevel(w.Level + 1)
	w.emit(LevelUpEvent{Params: w.params})
}
