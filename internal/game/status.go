package game

// ActionStatus is the outcome of one ApplyAction call.
type ActionStatus int

const (
	Continue ActionStatus = iota
	InvalidMove
	Win
	NoMoreMoves
)

// String returns a short machine-friendly name.
func (a ActionStatus) String() string {
	switch a {
	case Continue:
		return "continue"
	case InvalidMove:
		return "invalid_move"
	case Win:
		return "win"
	case NoMoreMoves:
		return "no_more_moves"
	default:
		return "unknown"
	}
}

// Description returns a human-readable message for display.
func (a ActionStatus) Description() string {
	switch a {
	case Continue:
		return "Keep going"
	case InvalidMove:
		return "Invalid move! Try another direction"
	case Win:
		return "You won! 2048 reached"
	case NoMoreMoves:
		return "No more moves. Game over"
	default:
		return "Unknown status"
	}
}

// Ended reports whether the status finishes the game.
func (a ActionStatus) Ended() bool {
	return a == Win || a == NoMoreMoves
}
