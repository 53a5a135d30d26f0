// solver plays 2048 and recommends moves with adversarial tree search.
//
// Usage:
//
//	solver play                  - Play interactively with hints and autoplay
//	solver hint --grid <grid>    - Recommend a move for a position
//	solver move --grid <grid> <dir> - Apply one move to a position
//	solver bench                 - Estimate strategy accuracy over many games
//	solver runs                  - List stored benchmark runs
//	solver scores                - Show high scores from interactive play
//	solver strategies            - List available search strategies
//	solver config                - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search order otherwise)
//	--seed <value>      - RNG seed for reproducible games
//	--db <path>         - Results database (default: ~/.solver2048/solver.db)
//	--depth <n>         - Search depth in plies
//	--strategy <id>     - Search strategy (alphabeta, minimax)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048-solver/internal/config"
	"github.com/vovakirdan/t2048-solver/internal/registry"
	"github.com/vovakirdan/t2048-solver/internal/storage"

	// Import search to register strategies
	_ "github.com/vovakirdan/t2048-solver/internal/search"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagDepth    int
	flagStrategy string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solver",
	Short: "2048 solver - minimax and alpha-beta search for 2048",
	Long: `solver plays the 2048 sliding-tile puzzle in your terminal and
recommends moves with minimax or alpha-beta search.

Available commands:
  play        - Interactive game with hints and autoplay
  hint        - Recommend a move for a given grid
  move        - Apply one move to a given grid
  bench       - Play many games and report the win rate
  runs        - Stored benchmark runs
  scores      - High scores from interactive play
  strategies  - Available search strategies
  config      - Effective configuration

Examples:
  solver play
  solver hint --grid "2 2 0 0/0 4 0 0/0 0 0 0/0 0 0 2"
  solver bench --games 20 --depth 5 --parquet out/games.parquet
  solver runs show 3`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database")
	rootCmd.PersistentFlags().IntVar(&flagDepth, "depth", 0, "Search depth in plies")
	rootCmd.PersistentFlags().StringVar(&flagStrategy, "strategy", "", "Search strategy ID")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flags that
// were set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Bench.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("depth") {
		cfg.Search.Depth = flagDepth
	}
	if flags.Changed("strategy") {
		cfg.Search.Strategy = flagStrategy
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger creates the stderr logger at the configured level.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "solver",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// setup loads the configuration, the logger and the selected strategy.
// It exits on error, like every command does.
func setup(cmd *cobra.Command) (config.Config, *log.Logger, registry.Strategy) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	logger := newLogger(cfg.Log.Level)

	strategy, err := registry.Create(cfg.Search.Strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'solver strategies' to see available strategies.")
		os.Exit(1)
	}
	return cfg, logger, strategy
}

// openStore opens the results database or exits.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatalf("Error opening results database: %v\n", err)
	}
	return store
}

// exit is replaced in tests.
var exit = os.Exit

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	exit(1)
}

// closeAndFatalf closes c before exiting, since os.Exit skips deferred calls.
func closeAndFatalf(c io.Closer, format string, args ...any) {
	//nolint:errcheck // Best-effort close, the process is exiting
	c.Close()
	fatalf(format, args...)
}
