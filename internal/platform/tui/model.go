// Package tui provides the Bubble Tea integration for Scoundrel.
// It handles the terminal UI loop, input mapping and styling of the board.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Avyukt27/Scoundrel-TUI/internal/core"
	"github.com/Avyukt27/Scoundrel-TUI/internal/game"
	"github.com/Avyukt27/Scoundrel-TUI/internal/view"
)

// helpHeight is the number of rows below the board used by the help line.
const helpHeight = 1

// Options configures the board model.
type Options struct {
	Config core.RuntimeConfig
	Theme  Theme
	Glyphs view.GlyphSet
	Logger *log.Logger // Optional; nil discards
}

// Model is the Bubble Tea model for a Scoundrel session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	theme    Theme
	glyphs   view.GlyphSet
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	h := help.New()
	h.Width = cfg.ScreenW
	h.Styles.ShortKey = opts.Theme.Help
	h.Styles.ShortDesc = opts.Theme.Help

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpHeight, 0)),
		config:  cfg,
		theme:   opts.Theme,
		glyphs:  opts.Glyphs,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
	}
}

// Init has no start-up command; the board is drawn on the first View.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit requested", "key", msg.String())
		return m, tea.Quit
	}

	// Every other key is reserved
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// Quitting reports whether a quit was requested.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view.Render(m.screen, m.session.Snapshot(), m.glyphs)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen, m.theme))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for the session and blocks until the
// player quits. Bubble Tea restores the terminal before Run returns.
func Run(session *game.Session, opts Options) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
