package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048-solver/internal/game"
)

// KeyMap defines the key bindings of the player.
type KeyMap struct {
	Up        key.Binding
	Right     key.Binding
	Down      key.Binding
	Left      key.Binding
	ApplyHint key.Binding
	Autoplay  key.Binding
	Restart   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ApplyHint, k.Autoplay, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Right, k.Down, k.Left},
		{k.ApplyHint, k.Autoplay, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. The digits follow the numeric
// keypad layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k", "8"),
			key.WithHelp("↑/w/8", "up"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l", "6"),
			key.WithHelp("→/d/6", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j", "2"),
			key.WithHelp("↓/s/2", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h", "4"),
			key.WithHelp("←/a/4", "left"),
		),
		ApplyHint: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "play hint"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "autoplay"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction translates a key message to a move.
// Returns false if the key is not a move key.
func (k KeyMap) Direction(msg tea.KeyMsg) (game.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return game.Up, true
	case key.Matches(msg, k.Right):
		return game.Right, true
	case key.Matches(msg, k.Down):
		return game.Down, true
	case key.Matches(msg, k.Left):
		return game.Left, true
	}
	return 0, false
}
