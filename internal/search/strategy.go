package search

import (
	"github.com/vovakirdan/t2048-solver/internal/game"
	"github.com/vovakirdan/t2048-solver/internal/registry"
)

// AlphaBetaStrategy recommends moves with pruned search.
type AlphaBetaStrategy struct{}

// ID returns the strategy identifier.
func (AlphaBetaStrategy) ID() string { return "alphabeta" }

// Title returns the display name.
func (AlphaBetaStrategy) Title() string { return "Alpha-beta pruning" }

// BestMove implements registry.Strategy.
func (AlphaBetaStrategy) BestMove(s *game.State, depth int) (game.Direction, error) {
	return FindBestMove(s, depth)
}

// MinimaxStrategy recommends moves with exhaustive minimax. It is much slower
// than AlphaBetaStrategy and only practical at shallow depths.
type MinimaxStrategy struct{}

// ID returns the strategy identifier.
func (MinimaxStrategy) ID() string { return "minimax" }

// Title returns the display name.
func (MinimaxStrategy) Title() string { return "Minimax (no pruning)" }

// BestMove implements registry.Strategy.
func (MinimaxStrategy) BestMove(s *game.State, depth int) (game.Direction, error) {
	res := Minimax(s, depth, Player)
	if !res.HasDirection {
		return 0, ErrNoLegalMove
	}
	return res.Direction, nil
}

func init() {
	registry.Register("alphabeta", func() registry.Strategy {
		return AlphaBetaStrategy{}
	})
	registry.Register("minimax", func() registry.Strategy {
		return MinimaxStrategy{}
	})
}
