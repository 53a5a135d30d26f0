// Package game implements the 2048 game state: the grid, the score and the
// slide, merge and spawn mechanics used both for play and for search.
package game

import (
	"math/rand"
)

const (
	// TargetTile is the tile value that wins the game.
	TargetTile = 2048

	// MinWinScore is the lowest score at which a 2048 tile can exist.
	MinWinScore = 18432

	// Spawn4Probability is the chance that a spawned tile is a 4 instead of a 2.
	Spawn4Probability = 0.1
)

// staleCount marks the cached empty-cell count as invalid.
const staleCount = -1

// State is a single-owner game state. It is not safe for concurrent use;
// search branches work on clones.
type State struct {
	grid  Grid
	score int
	rng   *rand.Rand

	// emptyCount caches the number of empty cells, or staleCount.
	emptyCount int
}

// New creates a game with two random tiles, seeded for reproducible play.
func New(seed int64) *State {
	s := &State{
		rng:        rand.New(rand.NewSource(seed)),
		emptyCount: staleCount,
	}
	s.AddRandomTile()
	s.AddRandomTile()
	return s
}

// FromGrid creates a game from an existing grid and score.
// The seed drives tiles spawned by later actions.
func FromGrid(g Grid, score int, seed int64) *State {
	return &State{
		grid:       g,
		score:      score,
		rng:        rand.New(rand.NewSource(seed)),
		emptyCount: staleCount,
	}
}

// Clone returns an independent copy of the state. The clone has its own
// grid storage; it shares the random source, which search never draws from.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Grid returns a copy of the current grid.
func (s *State) Grid() Grid {
	return s.grid
}

// Score returns the accumulated score.
func (s *State) Score() int {
	return s.score
}

// MaxTile returns the highest tile on the board.
func (s *State) MaxTile() int {
	return MaxTile(s.grid)
}

// Move slides and merges the grid in dir without spawning a tile.
// The gained points are added to the score and returned.
func (s *State) Move(dir Direction) int {
	next, points := Slide(s.grid, dir)
	if next != s.grid {
		s.grid = next
		s.emptyCount = staleCount
	}
	s.score += points
	return points
}

// EmptyCells returns the empty cells in row-major order.
func (s *State) EmptyCells() []Cell {
	return EmptyCells(s.grid)
}

// EmptyCount returns the number of empty cells.
func (s *State) EmptyCount() int {
	if s.emptyCount == staleCount {
		s.emptyCount = countEmpty(s.grid)
	}
	return s.emptyCount
}

// SetEmptyCell places value at (row, col) if that cell is empty.
// Filled cells are left untouched.
func (s *State) SetEmptyCell(row, col, value int) {
	if s.grid[row][col] != 0 {
		return
	}
	s.grid[row][col] = value
	s.emptyCount = staleCount
}

// AddRandomTile spawns a 2 (or a 4 with Spawn4Probability) in a uniformly
// chosen empty cell. Returns false if the grid is full.
func (s *State) AddRandomTile() bool {
	cells := s.EmptyCells()
	if len(cells) == 0 {
		return false
	}

	cell := cells[s.rng.Intn(len(cells))]

	value := 2
	if s.rng.Float64() < Spawn4Probability {
		value = 4
	}

	s.SetEmptyCell(cell.Row, cell.Col, value)
	return true
}

// HasWon reports whether the target tile exists. The score floor rules out
// boards that could not have produced the tile by merging.
func (s *State) HasWon() bool {
	if s.score < MinWinScore {
		return false
	}
	return MaxTile(s.grid) >= TargetTile
}

// IsTerminated reports whether the board is full and no direction merges.
// A won board is never terminated.
func (s *State) IsTerminated() bool {
	if s.HasWon() || s.EmptyCount() > 0 {
		return false
	}

	for _, dir := range Directions {
		if _, points := Slide(s.grid, dir); points > 0 {
			return false
		}
	}
	return true
}

// ApplyAction performs a full turn: move, spawn a tile when the move did
// something, and report the outcome.
func (s *State) ApplyAction(dir Direction) ActionStatus {
	before := s.grid
	points := s.Move(dir)

	if before == s.grid && points == 0 {
		if s.IsTerminated() {
			return NoMoreMoves
		}
		return InvalidMove
	}

	s.AddRandomTile()

	if points >= TargetTile {
		return Win
	}
	if s.IsTerminated() {
		return NoMoreMoves
	}
	return Continue
}
