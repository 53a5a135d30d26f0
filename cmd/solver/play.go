package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048-solver/internal/platform/tui"
	"github.com/vovakirdan/t2048-solver/internal/storage"
)

var flagNoHint bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 with search hints",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/HJKL  - Move
  8/6/2/4           - Move (numeric keypad)
  Enter             - Play the recommended move
  Space             - Toggle autoplay
  R                 - Restart
  ?                 - Show all keys
  Q/Esc/Ctrl+C      - Quit

The score is saved to the results database when the game ends.

Examples:
  solver play
  solver play --depth 5 --strategy minimax
  solver play --seed 42 --no-hint`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoHint, "no-hint", false, "Do not search until a hint is requested")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatalf("Error: play needs an interactive terminal\n")
	}

	cfg, logger, strategy := setup(cmd)

	opts := tui.Options{
		Strategy:         strategy,
		Depth:            cfg.Search.Depth,
		Seed:             flagSeed,
		AutoplayInterval: cfg.Play.AutoplayInterval,
		ShowHint:         cfg.Play.ShowHint && !flagNoHint,
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
	}
	if store != nil {
		opts.Store = store
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("Error running game: %v\n", runErr)
	}
}
