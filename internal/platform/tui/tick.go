// Package tui provides the Bubble Tea interactive player. It handles the
// terminal UI loop, input mapping, background search hints and autoplay.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048-solver/internal/game"
	"github.com/vovakirdan/t2048-solver/internal/registry"
)

// TickMsg drives autoplay. Gen identifies the autoplay session that
// scheduled it; ticks from an earlier session are ignored.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// HintMsg carries a finished search. Move is the move number the search was
// started for.
type HintMsg struct {
	Move      int
	Direction game.Direction
	Err       error
	Elapsed   time.Duration
}

// hintCmd runs the strategy on a private copy of the state.
func hintCmd(state *game.State, strategy registry.Strategy, depth, move int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		dir, err := strategy.BestMove(state, depth)
		return HintMsg{Move: move, Direction: dir, Err: err, Elapsed: time.Since(start)}
	}
}
