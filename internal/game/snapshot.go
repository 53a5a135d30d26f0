package game

// Snapshot captures the observable game state for display and recording.
type Snapshot struct {
	Score      int
	Grid       Grid
	MaxTile    int
	EmptyCells int
	Won        bool
	Terminated bool
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Score:      s.score,
		Grid:       s.grid,
		MaxTile:    MaxTile(s.grid),
		EmptyCells: s.EmptyCount(),
		Won:        s.HasWon(),
		Terminated: s.IsTerminated(),
	}
}
