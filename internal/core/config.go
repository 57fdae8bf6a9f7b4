package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Current level (1-based)
	Running  bool // Whether the simulation is advancing (started and not paused)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Notice is a message a game emits for the UI to show without blocking the
// simulation (level-up banners, life-lost flashes).
type Notice struct {
	Title string
	Lines []string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any notices raised during the tick.
type StepResult struct {
	State   GameState
	Notices []Notice
}
