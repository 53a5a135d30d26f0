// Package config provides YAML-based configuration loading for the solver:
// search parameters, benchmark runs, interactive play, storage and logging.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all solver configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Bench   BenchConfig   `yaml:"bench"`
	Play    PlayConfig    `yaml:"play"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// SearchConfig selects the move search.
type SearchConfig struct {
	Strategy string `yaml:"strategy"` // Registered strategy ID
	Depth    int    `yaml:"depth"`    // Plies searched per move
}

// BenchConfig defines an accuracy-estimation run.
type BenchConfig struct {
	Games    int   `yaml:"games"`
	Workers  int   `yaml:"workers"`   // 0 = one per CPU
	Seed     int64 `yaml:"seed"`      // 0 = random based on time
	MaxMoves int   `yaml:"max_moves"` // 0 = unlimited
}

// PlayConfig defines interactive play behaviour.
type PlayConfig struct {
	AutoplayInterval time.Duration `yaml:"autoplay_interval"`
	ShowHint         bool          `yaml:"show_hint"`
}

// StorageConfig locates the results database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig sets the logger level.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	var errs []error

	if c.Search.Strategy == "" {
		errs = append(errs, errors.New("search.strategy is empty"))
	}
	if c.Search.Depth < 1 {
		errs = append(errs, fmt.Errorf("search.depth %d must be at least 1", c.Search.Depth))
	}
	if c.Bench.Games < 0 {
		errs = append(errs, fmt.Errorf("bench.games %d is negative", c.Bench.Games))
	}
	if c.Bench.Workers < 0 {
		errs = append(errs, fmt.Errorf("bench.workers %d is negative", c.Bench.Workers))
	}
	if c.Bench.MaxMoves < 0 {
		errs = append(errs, fmt.Errorf("bench.max_moves %d is negative", c.Bench.MaxMoves))
	}
	if c.Play.AutoplayInterval < 0 {
		errs = append(errs, fmt.Errorf("play.autoplay_interval %s is negative", c.Play.AutoplayInterval))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
