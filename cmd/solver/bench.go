package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048-solver/internal/bench"
	"github.com/vovakirdan/t2048-solver/internal/storage"
)

var (
	flagGames    int
	flagWorkers  int
	flagMaxMoves int
	flagParquet  string
	flagNoSave   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Estimate strategy accuracy over many games",
	Long: `Play a number of independent games with the selected strategy and
report how many reach the 2048 tile. Games run in parallel; game i uses
seed+i so a run with a fixed --seed is reproducible.

The run is stored in the results database unless --no-save is given.

Examples:
  solver bench
  solver bench --games 50 --depth 5 --workers 8
  solver bench --seed 1 --games 10 --parquet out/games.parquet
  solver bench --strategy minimax --depth 3 --no-save`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagGames, "games", 0, "Number of games (default from config)")
	benchCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel games (default from config, 0 = one per CPU)")
	benchCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = unlimited)")
	benchCmd.Flags().StringVar(&flagParquet, "parquet", "", "Write per-game results to a Parquet file")
	benchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store the run in the results database")
}

func runBench(cmd *cobra.Command, _ []string) {
	cfg, logger, strategy := setup(cmd)

	if cmd.Flags().Changed("games") {
		cfg.Bench.Games = flagGames
	}
	if cmd.Flags().Changed("workers") {
		cfg.Bench.Workers = flagWorkers
	}
	if cmd.Flags().Changed("max-moves") {
		cfg.Bench.MaxMoves = flagMaxMoves
	}
	if err := cfg.Validate(); err != nil {
		fatalf("Error: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := bench.Run(ctx, bench.Config{
		Games:    cfg.Bench.Games,
		Workers:  cfg.Bench.Workers,
		Seed:     cfg.Bench.Seed,
		MaxMoves: cfg.Bench.MaxMoves,
		Depth:    cfg.Search.Depth,
	}, strategy, logger)
	if err != nil {
		fatalf("Error: benchmark failed: %v\n", err)
	}

	printReport(report)

	run, games := toRecords(report)
	if !flagNoSave {
		store := openStore(cfg)
		id, err := store.SaveRun(run, games)
		store.Close()
		if err != nil {
			fatalf("Error: %v\n", err)
		}
		run.ID = id
		fmt.Printf("\nSaved as run %d. Run 'solver runs show %d' for details.\n", id, id)
	}

	if flagParquet != "" {
		if err := storage.ExportGames(flagParquet, storage.GameRows(run, games)); err != nil {
			fatalf("Error: %v\n", err)
		}
		logger.Info("exported games", "path", flagParquet, "rows", len(games))
	}
}

// toRecords converts a report into storage records.
func toRecords(r bench.Report) (storage.RunRecord, []storage.GameRecord) {
	run := storage.RunRecord{
		Strategy:   r.Strategy,
		Depth:      r.Depth,
		Games:      len(r.Games),
		Wins:       r.Wins,
		BestTile:   r.BestTile,
		MeanScore:  r.MeanScore,
		DurationMS: r.Duration.Milliseconds(),
	}

	games := make([]storage.GameRecord, 0, len(r.Games))
	for _, g := range r.Games {
		games = append(games, storage.GameRecord{
			Index:      g.Index,
			Seed:       g.Seed,
			Status:     g.Status.String(),
			Won:        g.Won,
			Score:      g.Score,
			MaxTile:    g.MaxTile,
			Moves:      g.Moves,
			DurationMS: g.Duration.Milliseconds(),
		})
	}
	return run, games
}

func printReport(r bench.Report) {
	fmt.Printf("Strategy %s, depth %d, seed %d\n", r.Strategy, r.Depth, r.Seed)
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-14s  %-8s  %-6s  %-6s  %s\n", "Game", "Status", "Score", "Tile", "Moves", "Time")
	fmt.Printf("  %-4s  %-14s  %-8s  %-6s  %-6s  %s\n", "----", "------", "-----", "----", "-----", "----")

	for _, g := range r.Games {
		fmt.Printf("  %-4d  %-14s  %-8d  %-6d  %-6d  %s\n",
			g.Index, g.Status, g.Score, g.MaxTile, g.Moves, g.Duration.Round(time.Millisecond))
	}

	fmt.Println()
	fmt.Printf("Wins:        %d/%d (%.1f%%)\n", r.Wins, len(r.Games), r.WinRate()*100)
	fmt.Printf("Mean score:  %.1f\n", r.MeanScore)
	fmt.Printf("Best score:  %d\n", r.BestScore)
	fmt.Printf("Best tile:   %d\n", r.BestTile)
	fmt.Printf("Total time:  %s\n", r.Duration.Round(time.Millisecond))
}
