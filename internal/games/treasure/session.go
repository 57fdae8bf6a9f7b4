package treasure

// Phase is the session state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Start moves an idle session to Running. It reports whether the phase changed.
func (w *World) Start() bool {
	if w.Phase != PhaseIdle {
		return false
	}
	w.Phase = PhaseRunning
	return true
}

// TogglePause flips between Running and Paused. Other phases are unaffected.
func (w *World) TogglePause() bool {
	switch w.Phase {
	case PhaseRunning:
		w.Phase = PhasePaused
	case PhasePaused:
		w.Phase = PhaseRunning
	default:
		return false
	}
	return true
}

// Reset returns the session to Idle on level 1 with full lives.
// It is valid from any phase.
func (w *World) Reset() {
	w.Phase = PhaseIdle
	w.Score = 0
	w.Lives = w.cfg.Gameplay.Lives
	w.Tick = 0
	w.events = nil
	w.loadLevel(1)
}
