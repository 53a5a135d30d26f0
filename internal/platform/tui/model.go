package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048-solver/internal/game"
	"github.com/vovakirdan/t2048-solver/internal/registry"
	"github.com/vovakirdan/t2048-solver/internal/search"
)

// Score modes recorded with a finished game.
const (
	ModeManual   = "manual"
	ModeAutoplay = "autoplay"
)

// ScoreSaver persists finished games. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(mode string, score, maxTile int) (int64, error)
	HighScore() (int, error)
}

// Options configures the player.
type Options struct {
	Strategy         registry.Strategy
	Depth            int
	Seed             int64 // 0 means seed from the clock
	AutoplayInterval time.Duration
	ShowHint         bool
	Store            ScoreSaver // may be nil
}

// Model is the Bubble Tea model for the interactive player.
type Model struct {
	opts  Options
	keys  KeyMap
	help  help.Model
	state *game.State
	seed  int64

	move     int // number of grid-changing moves so far
	status   game.ActionStatus
	hint     game.Direction
	hasHint  bool
	hintErr  error
	thinking bool
	elapsed  time.Duration

	autoplay     bool
	autoplayGen  int
	autoplayUsed bool

	best       int
	scoreSaved bool
	saveErr    error
	width      int
	quitting   bool
}

// NewModel creates a new player model with a fresh game.
func NewModel(opts Options) Model {
	if opts.AutoplayInterval <= 0 {
		opts.AutoplayInterval = 150 * time.Millisecond
	}
	if opts.Depth < 1 {
		opts.Depth = 1
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		opts:  opts,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		state: game.New(seed),
		seed:  seed,

		// Init starts the first search when hints are shown.
		thinking: opts.ShowHint,
	}

	if opts.Store != nil {
		if best, err := opts.Store.HighScore(); err == nil {
			m.best = best
		}
	}

	return m
}

// Init requests the first hint if hints are shown.
func (m Model) Init() tea.Cmd {
	if !m.opts.ShowHint {
		return nil
	}
	return hintCmd(m.state.Clone(), m.opts.Strategy, m.opts.Depth, m.move)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case HintMsg:
		return m.handleHint(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	}

	if m.status.Ended() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Autoplay):
		m.autoplay = !m.autoplay
		if !m.autoplay {
			return m, nil
		}
		m.autoplayGen++
		m.autoplayUsed = true
		return m, tea.Batch(m.requestHint(), tickCmd(m.autoplayGen, m.opts.AutoplayInterval))

	case key.Matches(msg, m.keys.ApplyHint):
		if !m.hasHint {
			return m, m.requestHint()
		}
		return m.apply(m.hint)
	}

	if dir, ok := m.keys.Direction(msg); ok {
		return m.apply(dir)
	}

	return m, nil
}

// handleHint stores a finished search unless the game moved on meanwhile.
func (m Model) handleHint(msg HintMsg) (tea.Model, tea.Cmd) {
	if msg.Move != m.move {
		return m, nil
	}
	m.thinking = false
	m.elapsed = msg.Elapsed
	if msg.Err != nil {
		m.hasHint = false
		m.hintErr = msg.Err
		m.autoplay = false
		return m, nil
	}
	m.hint = msg.Direction
	m.hasHint = true
	m.hintErr = nil
	return m, nil
}

// handleTick plays the current hint when autoplay is on.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.autoplay || msg.Gen != m.autoplayGen {
		return m, nil
	}
	if m.status.Ended() {
		m.autoplay = false
		return m, nil
	}

	next := tickCmd(m.autoplayGen, m.opts.AutoplayInterval)
	if !m.hasHint {
		return m, tea.Batch(m.requestHint(), next)
	}

	model, cmd := m.apply(m.hint)
	if mm := model.(Model); !mm.autoplay {
		return mm, cmd
	}
	return model, tea.Batch(cmd, next)
}

// apply plays dir and schedules the next hint.
func (m Model) apply(dir game.Direction) (tea.Model, tea.Cmd) {
	status := m.state.ApplyAction(dir)
	m.status = status
	if status == game.InvalidMove {
		return m, nil
	}

	m.move++
	m.hasHint = false
	m.hintErr = nil
	m.thinking = false

	if status.Ended() {
		m.autoplay = false
		m.saveScore()
		return m, nil
	}

	if m.opts.ShowHint || m.autoplay {
		return m, m.requestHint()
	}
	return m, nil
}

// requestHint starts a search for the current move unless one is running.
func (m *Model) requestHint() tea.Cmd {
	if m.thinking || m.hasHint {
		return nil
	}
	m.thinking = true
	return hintCmd(m.state.Clone(), m.opts.Strategy, m.opts.Depth, m.move)
}

// restart begins a new game with the next seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seed++
	m.state = game.New(m.seed)
	m.move++ // invalidates searches still running for the old game
	m.status = game.Continue
	m.hasHint = false
	m.hintErr = nil
	m.thinking = false
	m.autoplay = false
	m.autoplayUsed = false
	m.scoreSaved = false
	m.saveErr = nil

	if m.opts.ShowHint {
		return m, m.requestHint()
	}
	return m, nil
}

// saveScore records the game once.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	score := m.state.Score()
	m.best = max(m.best, score)
	if m.opts.Store == nil || score == 0 {
		return
	}

	mode := ModeManual
	if m.autoplayUsed {
		mode = ModeAutoplay
	}
	if _, err := m.opts.Store.SaveScore(mode, score, m.state.MaxTile()); err != nil {
		m.saveErr = err
	}
}

// State returns the current game.
func (m Model) State() *game.State {
	return m.state
}

// Status returns the result of the last move.
func (m Model) Status() game.ActionStatus {
	return m.status
}

// Hint returns the current recommendation, if any.
func (m Model) Hint() (game.Direction, bool) {
	return m.hint, m.hasHint
}

// Autoplay reports whether autoplay is on.
func (m Model) Autoplay() bool {
	return m.autoplay
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("2048 SOLVER"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %s, depth %d", m.opts.Strategy.Title(), m.opts.Depth)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %-8d %s %-8d %s %d\n",
		labelStyle.Render("Score"), m.state.Score(),
		labelStyle.Render("Best"), max(m.best, m.state.Score()),
		labelStyle.Render("Max tile"), m.state.MaxTile(),
	)

	b.WriteString(RenderBoard(m.state.Grid()))
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.hintLine())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) statusLine() string {
	line := statusStyle.Render(m.status.Description())
	if m.status.Ended() {
		line += labelStyle.Render("  (r to restart)")
	}
	if m.saveErr != nil {
		line += "\n" + errorStyle.Render("Score not saved: "+m.saveErr.Error())
	}
	return line
}

func (m Model) hintLine() string {
	auto := ""
	if m.autoplay {
		auto = statusStyle.Render("  [autoplay]")
	}

	switch {
	case m.status.Ended():
		return ""
	case errors.Is(m.hintErr, search.ErrNoLegalMove):
		return errorStyle.Render("Hint: no legal move") + auto
	case m.hintErr != nil:
		return errorStyle.Render("Hint failed: "+m.hintErr.Error()) + auto
	case m.hasHint:
		return hintStyle.Render(fmt.Sprintf("Hint: %s", m.hint)) +
			labelStyle.Render(fmt.Sprintf(" (%s)", m.elapsed.Round(time.Millisecond))) + auto
	case m.thinking:
		return labelStyle.Render("Thinking...") + auto
	}
	return labelStyle.Render("Press enter for a hint") + auto
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
