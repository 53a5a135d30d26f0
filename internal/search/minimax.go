package search

import (
	"github.com/vovakirdan/t2048-solver/internal/game"
)

// Minimax searches without pruning. It is the slow reference for AlphaBeta
// and scores every leaf, terminated or not, with the heuristic.
func Minimax(s *game.State, depth int, role Role) Result {
	if depth <= 0 || s.IsTerminated() {
		return Result{Score: Evaluate(s)}
	}

	if role == Player {
		best := Result{Score: minScore}
		for _, dir := range game.Directions {
			child, ok := playerMove(s, dir)
			if !ok {
				continue
			}

			score := Minimax(child, depth-1, Nature).Score
			if score > best.Score {
				best.Score = score
				best.Direction = dir
				best.HasDirection = true
			}
		}
		return best
	}

	cells := s.EmptyCells()
	if len(cells) == 0 {
		return Result{Score: 0}
	}

	best := maxScore
	for _, cell := range cells {
		for _, value := range tileValues {
			child := s.Clone()
			child.SetEmptyCell(cell.Row, cell.Col, value)

			best = min(best, Minimax(child, depth-1, Player).Score)
		}
	}
	return Result{Score: best}
}
