package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/solver.yaml
var defaultSolverYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Strategy: "alphabeta",
			Depth:    7,
		},
		Bench: BenchConfig{
			Games:    10,
			Workers:  0,
			Seed:     0,
			MaxMoves: 0,
		},
		Play: PlayConfig{
			AutoplayInterval: 150 * time.Millisecond,
			ShowHint:         true,
		},
		Storage: StorageConfig{
			DBPath: "~/.solver2048/solver.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSolverYAML
}
