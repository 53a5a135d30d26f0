package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048-solver/internal/game"
	"github.com/vovakirdan/t2048-solver/internal/registry"
)

var stuckGrid = game.Grid{
	{2, 4, 8, 16},
	{32, 64, 128, 256},
	{512, 1024, 2048, 4096},
	{8192, 16384, 32768, 65536},
}

// earlyStates returns sparse, reachable boards where no node within a few
// plies can be terminated.
func earlyStates(t *testing.T) []*game.State {
	t.Helper()

	var states []*game.State
	for seed := int64(1); seed <= 6; seed++ {
		s := game.New(seed)
		for i := range int(seed % 4) {
			s.ApplyAction(game.Directions[i])
		}
		states = append(states, s)
	}
	return states
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	for _, s := range earlyStates(t) {
		for depth := 1; depth <= 3; depth++ {
			mm := Minimax(s, depth, Player)
			ab := AlphaBeta(s, depth, math.MinInt, math.MaxInt, Player)

			require.Equal(t, mm.Score, ab.Score,
				"depth %d on\n%v\nalpha-beta and minimax should agree on the score", depth, s.Grid())
			require.True(t, ab.HasDirection, "a sparse board always has a legal move")
		}
	}
}

func TestSearchDoesNotMutateState(t *testing.T) {
	s := game.New(3)
	s.ApplyAction(game.Left)
	grid, score, empty := s.Grid(), s.Score(), s.EmptyCount()

	_, err := FindBestMove(s, 3)
	require.NoError(t, err)
	Minimax(s, 2, Player)

	require.Equal(t, grid, s.Grid(), "search must work on clones")
	require.Equal(t, score, s.Score())
	require.Equal(t, empty, s.EmptyCount())
}

func TestFindBestMoveTerminatedBoard(t *testing.T) {
	s := game.FromGrid(stuckGrid, 0, 1)

	_, err := FindBestMove(s, 3)
	require.ErrorIs(t, err, ErrNoLegalMove, "a stuck board has no legal move")
}

func TestFindBestMoveDepthZero(t *testing.T) {
	s := game.New(1)

	for _, depth := range []int{0, -1} {
		_, err := FindBestMove(s, depth)
		require.ErrorIs(t, err, ErrNoLegalMove, "depth %d is a leaf evaluation", depth)
	}

	res := AlphaBeta(s, 0, math.MinInt, math.MaxInt, Player)
	require.False(t, res.HasDirection)
	require.Equal(t, Evaluate(s), res.Score)
}

func TestFindBestMoveSingleLegalMove(t *testing.T) {
	// Only Down changes this grid.
	s := game.FromGrid(game.Grid{{2, 4, 8, 16}}, 0, 1)

	for depth := 1; depth <= 3; depth++ {
		dir, err := FindBestMove(s, depth)
		require.NoError(t, err)
		require.Equal(t, game.Down, dir, "depth %d", depth)
	}
}

func TestFindBestMoveTieBreaksInDirectionOrder(t *testing.T) {
	// Right and Left both merge the pair; Right comes first.
	s := game.FromGrid(game.Grid{{1024, 1024, 0, 0}}, 0, 1)

	dir, err := FindBestMove(s, 1)
	require.NoError(t, err)
	require.Equal(t, game.Right, dir)
}

func TestFindBestMovePrefersMerge(t *testing.T) {
	s := game.FromGrid(game.Grid{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{8, 0, 0, 0},
	}, 0, 1)

	dir, err := FindBestMove(s, 1)
	require.NoError(t, err)
	require.Contains(t, []game.Direction{game.Up, game.Down}, dir, "only vertical moves merge the column")
}

func TestAlphaBetaTerminatedScores(t *testing.T) {
	lost := game.FromGrid(stuckGrid, 500, 1)
	require.Equal(t, 1, AlphaBeta(lost, 3, math.MinInt, math.MaxInt, Player).Score,
		"a lost board scores at most 1 regardless of accumulated score")

	lostAtZero := game.FromGrid(stuckGrid, 0, 1)
	require.Equal(t, 0, AlphaBeta(lostAtZero, 3, math.MinInt, math.MaxInt, Nature).Score)
}

// checkerboard is full and has no equal neighbours, but its clustering
// penalty is small, so the heuristic stays far above 1.
var checkerboard = game.Grid{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func TestTerminatedBoardScoringDiffers(t *testing.T) {
	s := game.FromGrid(checkerboard, 5000, 1)
	require.True(t, s.IsTerminated())

	eval := Evaluate(s)
	require.Greater(t, eval, 1, "the heuristic must not bottom out on this board")

	require.Equal(t, 1, AlphaBeta(s, 3, math.MinInt, math.MaxInt, Player).Score,
		"alpha-beta scores a lost board min(score, 1)")
	require.Equal(t, eval, Minimax(s, 3, Player).Score,
		"minimax scores a lost board with the heuristic")
}

func TestNatureWithoutEmptyCellsScoresZero(t *testing.T) {
	// Full, but a merge is still available, so the board is not terminated.
	grid := stuckGrid
	grid[0][1] = 2
	s := game.FromGrid(grid, 64, 1)
	require.False(t, s.IsTerminated())

	require.Equal(t, 0, Minimax(s, 2, Nature).Score)
	require.Equal(t, 0, AlphaBeta(s, 2, math.MinInt, math.MaxInt, Nature).Score)
}

func TestMinimaxPlayerWithoutMoves(t *testing.T) {
	// An empty grid is not terminated but no direction changes it.
	s := game.FromGrid(game.Grid{}, 0, 1)

	res := Minimax(s, 2, Player)
	require.False(t, res.HasDirection)
	require.Equal(t, math.MinInt, res.Score)
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		name                     string
		score, empty, clustering int
		want                     int
	}{
		{"zero score skips logarithm", 0, 16, 0, 0},
		{"zero score floored at zero", 0, 5, 100, 0},
		{"no empty cells", 100, 0, 0, 100},
		{"truncates toward zero", 100, 2, 10, 99},
		{"floored at one", 4, 3, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Heuristic(tt.score, tt.empty, tt.clustering))
		})
	}
}

func TestClusteringScore(t *testing.T) {
	tests := []struct {
		name string
		grid game.Grid
		want int
	}{
		{"empty grid", game.Grid{}, 0},
		{"lone tile has no neighbours", game.Grid{{0, 0, 0, 0}, {0, 64, 0, 0}}, 0},
		{"horizontal pair", game.Grid{{2, 4}}, 4},
		{"diagonal pair", game.Grid{{2, 0}, {0, 8}}, 12},
		{"row of three", game.Grid{{2, 4, 8}}, 2 + 3 + 4},
		{"integer division", game.Grid{{2, 4}, {4, 8}}, 3 + 2 + 2 + 4},
		{"equal tiles", game.Grid{{8, 8, 8, 8}, {8, 8, 8, 8}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClusteringScore(tt.grid))
		})
	}
}

func TestRegisteredStrategies(t *testing.T) {
	s := game.FromGrid(game.Grid{{2, 4, 8, 16}}, 0, 1)

	for _, id := range []string{"alphabeta", "minimax"} {
		strat, err := registry.Create(id)
		require.NoError(t, err)
		require.Equal(t, id, strat.ID())

		dir, err := strat.BestMove(s, 2)
		require.NoError(t, err)
		require.Equal(t, game.Down, dir)

		_, err = strat.BestMove(game.FromGrid(stuckGrid, 0, 1), 2)
		require.ErrorIs(t, err, ErrNoLegalMove)
	}
}
