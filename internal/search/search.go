// Package search chooses 2048 moves with a two-ply adversarial search: the
// player picks a direction to maximize the evaluation, nature places a 2 or a
// 4 in the worst possible empty cell.
package search

import (
	"errors"

	"github.com/vovakirdan/t2048-solver/internal/game"
)

// ErrNoLegalMove is returned when search finds no direction to recommend.
// Callers treat it as the end of the game.
var ErrNoLegalMove = errors.New("search: no legal move")

// Role identifies whose turn a ply represents.
type Role int

const (
	// Player chooses a direction.
	Player Role = iota
	// Nature places a new tile.
	Nature
)

// String returns the role name.
func (r Role) String() string {
	if r == Player {
		return "player"
	}
	return "nature"
}

// tileValues are the tiles nature may place, in scan order.
var tileValues = [2]int{2, 4}

// Result is the outcome of one search call.
type Result struct {
	// Direction is the best direction found; only meaningful if HasDirection.
	Direction    game.Direction
	HasDirection bool
	Score        int
}

// FindBestMove runs alpha-beta search from s and returns the recommended
// direction. depth <= 0 evaluates s as a leaf, which never yields a direction.
// s is not modified.
func FindBestMove(s *game.State, depth int) (game.Direction, error) {
	res := AlphaBeta(s, depth, minScore, maxScore, Player)
	if !res.HasDirection {
		return 0, ErrNoLegalMove
	}
	return res.Direction, nil
}

// playerMove applies dir to a clone of s. It reports false when the move
// neither changes the grid nor gains points.
func playerMove(s *game.State, dir game.Direction) (*game.State, bool) {
	child := s.Clone()
	points := child.Move(dir)
	if points == 0 && game.Equal(s.Grid(), child.Grid()) {
		return nil, false
	}
	return child, true
}
