package state

// GameState represents the current state of a run
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Running reports whether the simulation advances in this state
func (s GameState) Running() bool {
	return s == StatePlaying
}

// Finished reports whether the run has ended
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateVictory
}

// TogglePause flips between Playing and Paused. Finished states are unchanged.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
