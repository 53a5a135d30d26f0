package search

import (
	"math"

	"github.com/vovakirdan/t2048-solver/internal/game"
)

const (
	minScore = math.MinInt
	maxScore = math.MaxInt
)

// AlphaBeta searches with alpha-beta pruning. Terminated boards score
// maxScore when won and at most 1 otherwise, so a loss never beats a
// surviving leaf. FindBestMove calls it with the full window.
func AlphaBeta(s *game.State, depth, alpha, beta int, role Role) Result {
	if s.IsTerminated() {
		if s.HasWon() {
			return Result{Score: maxScore}
		}
		return Result{Score: min(s.Score(), 1)}
	}
	if depth <= 0 {
		return Result{Score: Evaluate(s)}
	}

	if role == Player {
		var res Result
		for _, dir := range game.Directions {
			child, ok := playerMove(s, dir)
			if !ok {
				continue
			}

			score := AlphaBeta(child, depth-1, alpha, beta, Nature).Score
			if score > alpha {
				alpha = score
				res.Direction = dir
				res.HasDirection = true
			}
			if beta <= alpha {
				break // beta cutoff
			}
		}
		res.Score = alpha
		return res
	}

	cells := s.EmptyCells()
	if len(cells) == 0 {
		return Result{Score: 0}
	}

scan:
	for _, cell := range cells {
		for _, value := range tileValues {
			child := s.Clone()
			child.SetEmptyCell(cell.Row, cell.Col, value)

			score := AlphaBeta(child, depth-1, alpha, beta, Player).Score
			if score < beta {
				beta = score
			}
			if beta <= alpha {
				break scan // alpha cutoff
			}
		}
	}
	return Result{Score: beta}
}
