package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048-solver/internal/platform/tui"
)

var (
	flagBoard       bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores from interactive play",
	Long: `Display the top high scores recorded by 'solver play'.

With --board, open an interactive scoreboard that also lists benchmark runs.

Examples:
  solver scores
  solver scores --limit 5
  solver scores --board`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	store := openStore(cfg)
	defer store.Close()

	if flagBoard {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			closeAndFatalf(store, "Error: --board needs an interactive terminal\n")
		}
		if err := tui.RunScoreboard(store); err != nil {
			closeAndFatalf(store, "Error running scoreboard: %v\n", err)
		}
		return
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		closeAndFatalf(store, "Error retrieving scores: %v\n", err)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'solver play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-9s  %s\n", "Rank", "Score", "Tile", "Mode", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-9s  %s\n", "----", "-----", "----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-9s  %s\n", i+1, entry.Score, entry.MaxTile, entry.Mode, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
