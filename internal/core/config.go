package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	Level    int  // 1-based campaign level, 0 in endless mode
	Turns    int  // Turns played, reverted swaps included
	GameOver bool // Out of moves, or the campaign is finished
	Won      bool // The last campaign level was cleared
	Paused   bool
	Busy     bool // A cascade is being animated; input is ignored
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
