// Package bench estimates the accuracy of a search strategy by playing many
// independent games and aggregating their outcomes.
package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/t2048-solver/internal/game"
	"github.com/vovakirdan/t2048-solver/internal/registry"
	"github.com/vovakirdan/t2048-solver/internal/search"
)

// Config controls a benchmark run.
type Config struct {
	Games    int
	Workers  int   // 0 means runtime.NumCPU()
	Seed     int64 // 0 means seed from the clock
	MaxMoves int   // 0 means unlimited
	Depth    int
}

// GameResult is the outcome of one game.
type GameResult struct {
	Index    int
	Seed     int64
	Status   game.ActionStatus
	Won      bool
	Score    int
	MaxTile  int
	Moves    int
	Duration time.Duration
}

// Report aggregates a finished run. Games are ordered by index.
type Report struct {
	Strategy  string
	Depth     int
	Seed      int64
	Games     []GameResult
	Wins      int
	BestScore int
	BestTile  int
	MeanScore float64
	Duration  time.Duration
}

// WinRate returns the fraction of games won.
func (r Report) WinRate() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	return float64(r.Wins) / float64(len(r.Games))
}

// Run plays cfg.Games games with strategy. Game i is seeded cfg.Seed+i, so a
// run is reproducible for a fixed seed. Cancelling ctx stops every game at the
// next move and Run returns the context error.
func Run(ctx context.Context, cfg Config, strategy registry.Strategy, logger *log.Logger) (Report, error) {
	if cfg.Games <= 0 {
		return Report{}, fmt.Errorf("bench: games must be positive, got %d", cfg.Games)
	}
	if cfg.Depth < 1 {
		return Report{}, fmt.Errorf("bench: depth must be at least 1, got %d", cfg.Depth)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("benchmark started",
		"strategy", strategy.ID(),
		"depth", cfg.Depth,
		"games", cfg.Games,
		"workers", workers,
		"seed", seed,
	)

	start := time.Now()
	results := make([]GameResult, cfg.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cfg.Games {
		g.Go(func() error {
			res, err := playGame(ctx, i, seed+int64(i), cfg, strategy)
			if err != nil {
				return err
			}
			results[i] = res
			logger.Debug("game finished",
				"game", i,
				"status", res.Status,
				"score", res.Score,
				"max_tile", res.MaxTile,
				"moves", res.Moves,
				"elapsed", res.Duration,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := summarize(results)
	report.Strategy = strategy.ID()
	report.Depth = cfg.Depth
	report.Seed = seed
	report.Duration = time.Since(start)

	logger.Info("benchmark finished",
		"wins", report.Wins,
		"win_rate", fmt.Sprintf("%.2f", report.WinRate()),
		"mean_score", fmt.Sprintf("%.1f", report.MeanScore),
		"best_tile", report.BestTile,
		"elapsed", report.Duration.Round(time.Millisecond),
	)

	return report, nil
}

// playGame drives one game until it leaves the CONTINUE state.
func playGame(ctx context.Context, index int, seed int64, cfg Config, strategy registry.Strategy) (GameResult, error) {
	start := time.Now()
	state := game.New(seed)
	status := game.Continue
	moves := 0

	for status == game.Continue {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if cfg.MaxMoves > 0 && moves >= cfg.MaxMoves {
			break
		}

		dir, err := strategy.BestMove(state, cfg.Depth)
		if errors.Is(err, search.ErrNoLegalMove) {
			status = game.NoMoreMoves
			break
		}
		if err != nil {
			return GameResult{}, fmt.Errorf("bench: game %d: %w", index, err)
		}

		status = state.ApplyAction(dir)
		moves++
	}

	snap := state.Snapshot()
	return GameResult{
		Index:    index,
		Seed:     seed,
		Status:   status,
		Won:      status == game.Win,
		Score:    snap.Score,
		MaxTile:  snap.MaxTile,
		Moves:    moves,
		Duration: time.Since(start),
	}, nil
}

func summarize(results []GameResult) Report {
	r := Report{Games: results}
	total := 0
	for _, g := range results {
		if g.Won {
			r.Wins++
		}
		r.BestScore = max(r.BestScore, g.Score)
		r.BestTile = max(r.BestTile, g.MaxTile)
		total += g.Score
	}
	if len(results) > 0 {
		r.MeanScore = float64(total) / float64(len(results))
	}
	return r
}
