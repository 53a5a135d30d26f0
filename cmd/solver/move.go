package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048-solver/internal/game"
)

var moveCmd = &cobra.Command{
	Use:   "move <direction>",
	Short: "Apply one move to a grid",
	Long: `Apply a move to the given position, add a random tile and print the
result. Directions are up, right, down, left, their first letters, WASD or
the numeric keypad codes 8, 6, 2, 4.

The printed grid can be fed back through --grid.

Examples:
  solver move --grid "2 2 0 0/0 0 0 0/0 0 0 0/0 0 0 0" left
  solver move --grid "2 2 0 0/0 0 0 0/0 0 0 0/0 0 0 0" --seed 7 4`,
	Args: cobra.ExactArgs(1),
	Run:  runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagGrid, "grid", "", "Grid to move (required)")
	moveCmd.Flags().IntVar(&flagScore, "score", 0, "Score accumulated so far")
	//nolint:errcheck // Flag is defined above
	moveCmd.MarkFlagRequired("grid")
}

func runMove(_ *cobra.Command, args []string) {
	dir, err := game.ParseDirection(args[0])
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	state := parsePosition()

	status := state.ApplyAction(dir)

	fmt.Println(state.Grid())
	fmt.Println()
	fmt.Printf("%s: %s\n", dir, status.Description())
	fmt.Printf("Score: %d\n", state.Score())
	fmt.Printf("Grid:  %s\n", game.FormatGrid(state.Grid()))
}
