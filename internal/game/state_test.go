package game

import (
	"errors"
	"testing"
)

// stuckGrid has no empty cells and no equal neighbours.
var stuckGrid = Grid{
	{2, 4, 8, 16},
	{32, 64, 128, 256},
	{512, 1024, 2048, 4096},
	{8192, 16384, 32768, 65536},
}

func TestNewPlacesTwoTiles(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		s := New(seed)
		grid := s.Grid()

		if TileCount(grid) != 2 {
			t.Fatalf("seed %d: tile count = %d, want 2", seed, TileCount(grid))
		}
		for r := range Size {
			for c := range Size {
				if v := grid[r][c]; v != 0 && v != 2 && v != 4 {
					t.Fatalf("seed %d: unexpected starting tile %d", seed, v)
				}
			}
		}
		if s.Score() != 0 {
			t.Fatalf("seed %d: score = %d, want 0", seed, s.Score())
		}
	}
}

func TestDeterministicSpawn(t *testing.T) {
	a := New(12345)
	b := New(12345)

	if a.Grid() != b.Grid() {
		t.Errorf("Same seed should produce same initial grid:\n%v\nvs\n%v", a.Grid(), b.Grid())
	}
}

func TestMoveScenario(t *testing.T) {
	s := FromGrid(Grid{{2, 2, 0, 0}}, 0, 1)

	points := s.Move(Left)

	if points != 4 {
		t.Errorf("Move(Left) points = %d, want 4", points)
	}
	want := Grid{{4, 0, 0, 0}}
	if s.Grid() != want {
		t.Errorf("Move(Left) grid:\n%v\nwant\n%v", s.Grid(), want)
	}
	if s.Score() != 4 {
		t.Errorf("Score = %d, want 4", s.Score())
	}
}

func TestMoveNoOpLeavesState(t *testing.T) {
	grid := Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s := FromGrid(grid, 8, 1)

	if points := s.Move(Left); points != 0 {
		t.Errorf("Move(Left) points = %d, want 0", points)
	}
	if !Equal(s.Grid(), grid) {
		t.Error("no-op move should leave the grid unchanged")
	}
	if s.Score() != 8 {
		t.Errorf("Score = %d, want 8", s.Score())
	}
}

func TestGridAccessorReturnsCopy(t *testing.T) {
	s := FromGrid(Grid{{2, 0, 0, 0}}, 0, 1)

	g := s.Grid()
	g[0][0] = 1024

	if s.Grid()[0][0] != 2 {
		t.Error("modifying the returned grid must not change the state")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := FromGrid(Grid{{2, 2, 0, 0}}, 0, 1)
	c := s.Clone()

	c.Move(Left)
	c.SetEmptyCell(3, 3, 4)

	if s.Grid() != (Grid{{2, 2, 0, 0}}) {
		t.Errorf("original grid changed after mutating clone:\n%v", s.Grid())
	}
	if s.Score() != 0 {
		t.Errorf("original score = %d, want 0", s.Score())
	}
	if s.EmptyCount() != 14 {
		t.Errorf("original EmptyCount = %d, want 14", s.EmptyCount())
	}
}

func TestEmptyCountCache(t *testing.T) {
	s := FromGrid(Grid{{2, 2, 0, 0}}, 0, 1)

	if got := s.EmptyCount(); got != 14 {
		t.Fatalf("EmptyCount = %d, want 14", got)
	}

	s.SetEmptyCell(1, 1, 2)
	if got := s.EmptyCount(); got != 13 {
		t.Errorf("EmptyCount after SetEmptyCell = %d, want 13", got)
	}

	s.Move(Left)
	if got := s.EmptyCount(); got != 14 {
		t.Errorf("EmptyCount after merge = %d, want 14", got)
	}
}

func TestSetEmptyCellIgnoresFilledCell(t *testing.T) {
	s := FromGrid(Grid{{2, 0, 0, 0}}, 0, 1)

	s.SetEmptyCell(0, 0, 4)

	if s.Grid()[0][0] != 2 {
		t.Errorf("SetEmptyCell overwrote a filled cell: got %d", s.Grid()[0][0])
	}
}

func TestAddRandomTileSingleEmptyCell(t *testing.T) {
	grid := stuckGrid
	grid[2][1] = 0

	for seed := int64(1); seed <= 20; seed++ {
		s := FromGrid(grid, 0, seed)

		if !s.AddRandomTile() {
			t.Fatalf("seed %d: AddRandomTile returned false with one empty cell", seed)
		}
		if v := s.Grid()[2][1]; v != 2 && v != 4 {
			t.Fatalf("seed %d: cell (2,1) = %d, want 2 or 4", seed, v)
		}
		if s.EmptyCount() != 0 {
			t.Fatalf("seed %d: EmptyCount = %d, want 0", seed, s.EmptyCount())
		}
	}
}

func TestAddRandomTileFullGrid(t *testing.T) {
	s := FromGrid(stuckGrid, 0, 1)

	if s.AddRandomTile() {
		t.Error("AddRandomTile should return false on a full grid")
	}
	if s.Grid() != stuckGrid {
		t.Error("AddRandomTile must not change a full grid")
	}
}

func TestAddRandomTileDistribution(t *testing.T) {
	fours := 0
	const trials = 2000
	for seed := range int64(trials) {
		s := FromGrid(Grid{}, 0, seed)
		s.AddRandomTile()
		if MaxTile(s.Grid()) == 4 {
			fours++
		}
	}

	// Expect roughly 10% fours.
	if fours < trials/20 || fours > trials/5 {
		t.Errorf("spawned %d fours out of %d, want about %d", fours, trials, trials/10)
	}
}

func TestHasWonRequiresScoreAndTile(t *testing.T) {
	tests := []struct {
		name  string
		grid  Grid
		score int
		want  bool
	}{
		{"score without tile", Grid{{1024, 512, 0, 0}}, 20000, false},
		{"tile without score", Grid{{2048, 0, 0, 0}}, 100, false},
		{"score and tile", Grid{{2048, 0, 0, 0}}, MinWinScore, true},
		{"bigger tile", Grid{{4096, 0, 0, 0}}, 50000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromGrid(tt.grid, tt.score, 1)
			if got := s.HasWon(); got != tt.want {
				t.Errorf("HasWon() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTerminated(t *testing.T) {
	if !FromGrid(stuckGrid, 0, 1).IsTerminated() {
		t.Error("full grid with no merges should be terminated")
	}

	withMerge := stuckGrid
	withMerge[0][1] = 2
	if FromGrid(withMerge, 0, 1).IsTerminated() {
		t.Error("grid with a possible merge should not be terminated")
	}

	withEmpty := stuckGrid
	withEmpty[2][2] = 0
	if FromGrid(withEmpty, 0, 1).IsTerminated() {
		t.Error("grid with an empty cell should not be terminated")
	}

	// A won board is never terminated.
	if FromGrid(stuckGrid, 100000, 1).IsTerminated() {
		t.Error("won grid should not be terminated")
	}
}

func TestApplyActionInvalidMove(t *testing.T) {
	grid := Grid{{4, 2, 0, 0}}
	s := FromGrid(grid, 0, 1)

	if got := s.ApplyAction(Left); got != InvalidMove {
		t.Errorf("ApplyAction(Left) = %v, want %v", got, InvalidMove)
	}
	if s.Grid() != grid {
		t.Error("invalid move must not spawn a tile")
	}
}

func TestApplyActionContinue(t *testing.T) {
	s := FromGrid(Grid{{2, 2, 0, 0}}, 0, 1)

	if got := s.ApplyAction(Left); got != Continue {
		t.Errorf("ApplyAction(Left) = %v, want %v", got, Continue)
	}
	if s.Score() != 4 {
		t.Errorf("Score = %d, want 4", s.Score())
	}
	if TileCount(s.Grid()) != 2 {
		t.Errorf("tile count = %d, want 2 (merged tile plus spawn)", TileCount(s.Grid()))
	}
}

func TestApplyActionWin(t *testing.T) {
	s := FromGrid(Grid{{1024, 1024, 0, 0}}, 0, 1)

	if got := s.ApplyAction(Left); got != Win {
		t.Errorf("ApplyAction(Left) = %v, want %v", got, Win)
	}
}

func TestApplyActionNoMoreMoves(t *testing.T) {
	// Sliding the bottom row left frees one cell; the spawned tile in the
	// corner cannot merge with 8 or 64.
	grid := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 8},
		{0, 16, 32, 64},
	}

	for seed := int64(1); seed <= 10; seed++ {
		s := FromGrid(grid, 0, seed)
		if got := s.ApplyAction(Left); got != NoMoreMoves {
			t.Fatalf("seed %d: ApplyAction(Left) = %v, want %v\n%v", seed, got, NoMoreMoves, s.Grid())
		}
	}
}

func TestApplyActionOnTerminatedBoard(t *testing.T) {
	for _, dir := range Directions {
		s := FromGrid(stuckGrid, 0, 1)
		if got := s.ApplyAction(dir); got != NoMoreMoves {
			t.Errorf("ApplyAction(%v) on stuck grid = %v, want %v", dir, got, NoMoreMoves)
		}
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := New(7)
	prev := s.Score()

	for i := range 500 {
		status := s.ApplyAction(Directions[i%len(Directions)])
		if s.Score() < prev {
			t.Fatalf("score decreased from %d to %d", prev, s.Score())
		}
		prev = s.Score()
		if status.Ended() {
			break
		}
	}
}

func TestActionStatusDescriptions(t *testing.T) {
	for _, st := range []ActionStatus{Continue, InvalidMove, Win, NoMoreMoves} {
		if st.Description() == "" || st.Description() == "Unknown status" {
			t.Errorf("%v has no description", st)
		}
	}
	if !Win.Ended() || !NoMoreMoves.Ended() || Continue.Ended() || InvalidMove.Ended() {
		t.Error("only Win and NoMoreMoves should end the game")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"up", Up},
		{"UP", Up},
		{"8", Up},
		{"right", Right},
		{"6", Right},
		{" down ", Down},
		{"2", Down},
		{"left", Left},
		{"4", Left},
		{"a", Left},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	for _, bad := range []string{"", "5", "north", "9"} {
		if _, err := ParseDirection(bad); !errors.Is(err, ErrUnrecognizedInput) {
			t.Errorf("ParseDirection(%q) error = %v, want ErrUnrecognizedInput", bad, err)
		}
	}
}

func TestDirectionOrderAndLabels(t *testing.T) {
	labels := []string{"Up", "Right", "Down", "Left"}
	for i, d := range Directions {
		if int(d) != i {
			t.Errorf("Directions[%d] has ordinal %d", i, int(d))
		}
		if d.String() != labels[i] {
			t.Errorf("Directions[%d].String() = %q, want %q", i, d.String(), labels[i])
		}
	}

	if _, err := DirectionFromOrdinal(4); !errors.Is(err, ErrUnrecognizedInput) {
		t.Errorf("DirectionFromOrdinal(4) error = %v, want ErrUnrecognizedInput", err)
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid("2 2 0 0/0 4,0 0/0 0 0 0/0 0 0 2048")
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	want := Grid{
		{2, 2, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2048},
	}
	if g != want {
		t.Errorf("ParseGrid:\n%v\nwant\n%v", g, want)
	}

	back, err := ParseGrid(FormatGrid(g))
	if err != nil || back != g {
		t.Errorf("FormatGrid round trip failed: %v, %v", back, err)
	}

	for _, bad := range []string{
		"2 2 0 0/0 0 0 0/0 0 0 0",
		"2 2 0/0 0 0 0/0 0 0 0/0 0 0 0",
		"3 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0",
		"1 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0",
		"-2 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0",
		"x 0 0 0/0 0 0 0/0 0 0 0/0 0 0 0",
	} {
		if _, err := ParseGrid(bad); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("ParseGrid(%q) error = %v, want ErrInvalidGrid", bad, err)
		}
	}
}

func TestSnapshot(t *testing.T) {
	s := FromGrid(Grid{{2048, 2, 0, 0}}, MinWinScore, 1)

	snap := s.Snapshot()
	if snap.Score != MinWinScore || snap.MaxTile != 2048 || snap.EmptyCells != 14 {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if !snap.Won || snap.Terminated {
		t.Errorf("Snapshot() Won = %v, Terminated = %v, want true, false", snap.Won, snap.Terminated)
	}

	stuck := FromGrid(stuckGrid, 0, 1).Snapshot()
	if stuck.Won || !stuck.Terminated || stuck.EmptyCells != 0 {
		t.Errorf("stuck Snapshot() = %+v", stuck)
	}
}
