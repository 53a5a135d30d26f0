package game

// Size is the board dimension.
const Size = 4

// Grid is a 4x4 board of tile values. 0 marks an empty cell.
// Grid is a value type: assigning it copies every cell.
type Grid [Size][Size]int

// Cell addresses a single grid position.
type Cell struct {
	Row int
	Col int
}

// compactRow slides and merges a single row to the left.
// A tile produced by a merge does not merge again in the same pass.
func compactRow(row [Size]int) (result [Size]int, points int) {
	writePos := 0
	mergeable := false

	for _, v := range row {
		if v == 0 {
			continue
		}

		if mergeable && result[writePos-1] == v {
			result[writePos-1] *= 2
			points += result[writePos-1]
			mergeable = false
			continue
		}

		result[writePos] = v
		writePos++
		mergeable = true
	}

	return result, points
}

// RotateLeft returns the grid rotated 90 degrees counter-clockwise.
func RotateLeft(g Grid) Grid {
	var out Grid
	for i := range Size {
		for j := range Size {
			out[Size-j-1][i] = g[i][j]
		}
	}
	return out
}

// RotateRight returns the grid rotated 90 degrees clockwise.
func RotateRight(g Grid) Grid {
	var out Grid
	for i := range Size {
		for j := range Size {
			out[i][j] = g[Size-j-1][i]
		}
	}
	return out
}

// toLeft rotates g so that a move in dir becomes a left compaction.
func toLeft(g Grid, dir Direction) Grid {
	switch dir {
	case Up:
		return RotateLeft(g)
	case Right:
		return RotateLeft(RotateLeft(g))
	case Down:
		return RotateRight(g)
	default:
		return g
	}
}

// fromLeft undoes toLeft.
func fromLeft(g Grid, dir Direction) Grid {
	switch dir {
	case Up:
		return RotateRight(g)
	case Right:
		return RotateRight(RotateRight(g))
	case Down:
		return RotateLeft(g)
	default:
		return g
	}
}

// Slide performs a move in the given direction without spawning a tile.
// Every row of the rotated grid is compacted exactly once.
// Returns the new grid and the points gained from merges.
func Slide(g Grid, dir Direction) (Grid, int) {
	if !dir.Valid() {
		return g, 0
	}

	rotated := toLeft(g, dir)
	total := 0
	for r := range Size {
		row, points := compactRow(rotated[r])
		rotated[r] = row
		total += points
	}

	return fromLeft(rotated, dir), total
}

// Equal reports whether two grids hold the same value in every cell.
func Equal(a, b Grid) bool {
	return a == b
}

// EmptyCells returns all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// countEmpty returns the number of empty cells.
func countEmpty(g Grid) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			maxVal = max(maxVal, g[r][c])
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func Sum(g Grid) int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += g[r][c]
		}
	}
	return total
}

// TileCount returns the number of non-empty cells.
func TileCount(g Grid) int {
	return Size*Size - countEmpty(g)
}
