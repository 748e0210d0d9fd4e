package core

// RuntimeConfig contains configuration passed to the engine at initialization.
// The seed makes a whole run reproducible: two engines reset with the same
// seed and fed the same input frames produce identical state and pixels.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use the engine's fixed default seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// GameState communicates engine status to the platform after each tick.
type GameState struct {
	Score    int  // Current score (0-65535, wraps like the original counter)
	Lives    int  // Remaining lives (0-3)
	GameOver bool // Whether the run has ended
	Active   bool // Whether the simulation is advancing (Playing or HitPause)
}

// StepResult is returned by Engine.Step after each simulation tick.
type StepResult struct {
	State GameState
}
