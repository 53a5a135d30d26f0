package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048-solver/internal/game"
	"github.com/vovakirdan/t2048-solver/internal/search"
)

var (
	flagGrid  string
	flagScore int
)

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Recommend a move for a grid",
	Long: `Search the given position and print the recommended direction.

The grid is four rows separated by '/', each with four cells separated by
spaces or commas. Empty cells are 0.

Examples:
  solver hint --grid "2 2 0 0/0 4 0 0/0 0 0 0/0 0 0 2"
  solver hint --grid "1024,1024,0,0/0,0,0,0/0,0,0,0/0,0,0,0" --score 18000 --depth 3`,
	Args: cobra.NoArgs,
	Run:  runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagGrid, "grid", "", "Grid to search (required)")
	hintCmd.Flags().IntVar(&flagScore, "score", 0, "Score accumulated so far")
	//nolint:errcheck // Flag is defined above
	hintCmd.MarkFlagRequired("grid")
}

// parsePosition builds a state from the --grid and --score flags.
func parsePosition() *game.State {
	grid, err := game.ParseGrid(flagGrid)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	if flagScore < 0 {
		fatalf("Error: score %d is negative\n", flagScore)
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return game.FromGrid(grid, flagScore, seed)
}

func runHint(cmd *cobra.Command, _ []string) {
	cfg, logger, strategy := setup(cmd)
	state := parsePosition()

	fmt.Println(state.Grid())
	fmt.Println()

	start := time.Now()
	dir, err := strategy.BestMove(state, cfg.Search.Depth)
	elapsed := time.Since(start)
	logger.Debug("search finished",
		"strategy", strategy.ID(),
		"depth", cfg.Search.Depth,
		"elapsed", elapsed,
	)

	if errors.Is(err, search.ErrNoLegalMove) {
		fatalf("No legal move.\n")
	}
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	fmt.Printf("Best move: %s (%s, depth %d, %s)\n",
		dir, strategy.Title(), cfg.Search.Depth, elapsed.Round(time.Millisecond))
}
