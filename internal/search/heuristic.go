package search

import (
	"math"

	"github.com/vovakirdan/t2048-solver/internal/game"
)

// Evaluate scores a leaf state.
func Evaluate(s *game.State) int {
	return Heuristic(s.Score(), s.EmptyCount(), ClusteringScore(s.Grid()))
}

// Heuristic combines the game score, the number of empty cells and the
// clustering penalty: score + ln(score)*empty - clustering, truncated toward
// zero. The result is never below min(score, 1). A zero score contributes no
// logarithm term.
func Heuristic(score, emptyCells, clustering int) int {
	openness := 0.0
	if score > 0 {
		openness = math.Log(float64(score)) * float64(emptyCells)
	}

	value := int(float64(score) + openness - float64(clustering))
	return max(value, min(score, 1))
}

// ClusteringScore sums, over every tile, the mean absolute difference to its
// non-empty neighbours (the surrounding 3x3 window, clipped at the edges).
// The mean uses integer division. Tiles without neighbours add nothing.
func ClusteringScore(g game.Grid) int {
	total := 0

	for r := range game.Size {
		for c := range game.Size {
			v := g[r][c]
			if v == 0 {
				continue
			}

			neighbours, sum := 0, 0
			for dr := -1; dr <= 1; dr++ {
				x := r + dr
				if x < 0 || x >= game.Size {
					continue
				}
				for dc := -1; dc <= 1; dc++ {
					y := c + dc
					if y < 0 || y >= game.Size || (dr == 0 && dc == 0) {
						continue
					}
					if n := g[x][y]; n > 0 {
						neighbours++
						sum += abs(v - n)
					}
				}
			}

			if neighbours == 0 {
				continue
			}
			total += sum / neighbours
		}
	}

	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
