package core

// RuntimeConfig is what a front end hands a game on Reset.
type RuntimeConfig struct {
	ScreenW, ScreenH int // terminal cells, or window pixels

	// TickRate is Step calls per second. Games derive their per-tick
	// speeds and timers from it.
	TickRate int

	// Seed drives every random choice a game makes. Front ends replace 0
	// with the clock before starting a session.
	Seed int64
}

// DefaultConfig is an 80×24 terminal at 60 ticks per second with no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the part of a game's state a front end reacts to.
type GameState struct {
	Score    int
	GameOver bool // lost or won; only Restart changes it
	Won      bool
	Paused   bool
}

// StepResult is returned by every Step.
type StepResult struct {
	State GameState
}
