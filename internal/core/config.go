package core

// RuntimeConfig is what a frontend hands to Game.Reset: the drawable area,
// the fixed step rate and the seed a recorded session replays with.
type RuntimeConfig struct {
	ScreenW  int   // cells
	ScreenH  int   // cells, footer excluded
	TickRate int   // steps per second
	Seed     int64 // 0 is replaced by the clock in cmd/pacman
}

// DefaultConfig fits the classic 28x31 maze plus the status rows.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		Seed:     0,
	}
}

// TickSeconds returns the duration of one simulation tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the frontend-facing summary of a round, used for the footer,
// recording outcomes and replay verification.
type GameState struct {
	Score    int
	Lives    int
	Level    int // 1-based
	GameOver bool
	Paused   bool
}

// StepResult wraps the state after one Step.
type StepResult struct {
	State GameState
}
