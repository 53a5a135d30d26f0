package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored benchmark runs",
	Long: `Display the most recent benchmark runs from the results database.

Examples:
  solver runs
  solver runs --limit 5
  solver runs show 3
  solver runs stats`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the games of a benchmark run",
	Args:  cobra.ExactArgs(1),
	Run:   runRunsShow,
}

var runsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate stored runs per strategy",
	Args:  cobra.NoArgs,
	Run:   runRunsStats,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsStatsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	store := openStore(cfg)
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		closeAndFatalf(store, "Error retrieving runs: %v\n", err)
	}

	if len(runs) == 0 {
		fmt.Println("No benchmark runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'solver bench' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-7s  %-9s  %-6s  %s\n", "ID", "Strategy", "Depth", "Games", "Win %", "Mean", "Tile", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-7s  %-9s  %-6s  %s\n", "--", "--------", "-----", "-----", "-----", "----", "----", "----")

	for _, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-5d  %-5d  %-7.1f  %-9.1f  %-6d  %s\n",
			r.ID, r.Strategy, r.Depth, r.Games, r.WinRate()*100, r.MeanScore, r.BestTile,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runRunsShow(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatalf("Error: invalid run ID %q\n", args[0])
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	store := openStore(cfg)
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		closeAndFatalf(store, "Error retrieving run: %v\n", err)
	}
	if run == nil {
		closeAndFatalf(store, "Error: run %d not found\n", id)
	}

	games, err := store.RunGames(id)
	if err != nil {
		closeAndFatalf(store, "Error retrieving games: %v\n", err)
	}

	fmt.Printf("Run %d - %s, depth %d, %s\n", run.ID, run.Strategy, run.Depth, run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()

	fmt.Printf("  %-4s  %-12s  %-14s  %-8s  %-6s  %-6s  %s\n", "Game", "Seed", "Status", "Score", "Tile", "Moves", "Time")
	fmt.Printf("  %-4s  %-12s  %-14s  %-8s  %-6s  %-6s  %s\n", "----", "----", "------", "-----", "----", "-----", "----")
	for _, g := range games {
		fmt.Printf("  %-4d  %-12d  %-14s  %-8d  %-6d  %-6d  %dms\n",
			g.Index, g.Seed, g.Status, g.Score, g.MaxTile, g.Moves, g.DurationMS)
	}

	fmt.Println()
	fmt.Printf("Wins: %d/%d (%.1f%%), mean score %.1f, best tile %d, %dms\n",
		run.Wins, run.Games, run.WinRate()*100, run.MeanScore, run.BestTile, run.DurationMS)
}

func runRunsStats(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	store := openStore(cfg)
	defer store.Close()

	stats, err := store.GetStrategyStats()
	if err != nil {
		closeAndFatalf(store, "Error retrieving stats: %v\n", err)
	}
	if len(stats) == 0 {
		fmt.Println("No benchmark runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-5s  %-6s  %-7s  %-8s  %-6s  %s\n", "Strategy", "Runs", "Games", "Win %", "Best", "Tile", "Last run")
	fmt.Printf("  %-10s  %-5s  %-6s  %-7s  %-8s  %-6s  %s\n", "--------", "----", "-----", "-----", "----", "----", "--------")
	for _, id := range ids {
		st := stats[id]
		rate := 0.0
		if st.Games > 0 {
			rate = float64(st.Wins) / float64(st.Games) * 100
		}
		fmt.Printf("  %-10s  %-5d  %-6d  %-7.1f  %-8d  %-6d  %s\n",
			st.Strategy, st.Runs, st.Games, rate, st.BestScore, st.BestTile, st.LastRun.Format("2006-01-02 15:04"))
	}
}
