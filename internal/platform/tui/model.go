package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mdanilov/blockfall/internal/core"
	"github.com/mdanilov/blockfall/internal/game"
)

// helpStyle dims the footer so it reads apart from the playfield.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a game session.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	cfg      game.Config
	quitting bool
}

// NewModel creates the session model. The bottom screen row is reserved
// for the help footer.
func NewModel(cfg game.Config, width, height int) (Model, error) {
	// Use a time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g, err := game.New(cfg)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = width

	return Model{
		game:   g,
		screen: core.NewScreen(width, core.Max(1, height-1)),
		keys:   DefaultKeyMap(),
		help:   h,
		cfg:    cfg,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.game.Tick()
		return m, tickCmd(m.cfg.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input. Engine actions apply immediately;
// gravity only advances on ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.game.Status() == game.StatusGameOver {
			// Reseed so the next session deals a fresh sequence
			m.game.Reset(time.Now().UnixNano())
		}
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.game.Handle(a)
	}
	return m, nil
}

// handleResize adjusts the drawing surface. The board itself is fixed;
// the playfield is recentered on the next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot dumps the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("blockfall_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one game session and blocks
// until the player quits.
func Run(cfg game.Config, width, height int) error {
	model, err := NewModel(cfg, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
