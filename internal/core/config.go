package core

// RuntimeConfig contains per-run settings chosen by the front end.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (0 for window front ends)
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
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

// Mode is the active state of a game session. Exactly one mode is active.
type Mode int

const (
	ModeMenu Mode = iota
	ModeRunning
	ModeWon
	ModeLost
)

// String returns a lower-case name for the mode, used in logs.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeRunning:
		return "running"
	case ModeWon:
		return "won"
	case ModeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Finished reports whether the mode ends a round.
func (m Mode) Finished() bool {
	return m == ModeWon || m == ModeLost
}

// GameState is the externally visible state of a session.
type GameState struct {
	Mode    Mode
	Score   int     // +10 per coin
	Coins   int     // Coins collected this round
	Elapsed float64 // Seconds since the round started
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // Sound and music triggers raised during the tick
	Quit   bool    // The player asked to exit the process
}
