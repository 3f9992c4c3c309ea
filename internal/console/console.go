// internal/console/console.go
//
// Terminal front end for a Session, built as a bubbletea model.
// Responsibilities:
//   - Move a cursor over the board and dispatch keys to the session.
//   - Redraw the board and status line after every key.
//   - Show rejected moves inline without leaving the program.
//
// The model reads the board only through its public surface
// (VisibilityAt, RenderValueAt, Status, MinesRemaining).
package console

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/minesweeper/internal/config"
	"github.com/robalobadob/minesweeper/internal/session"
)

type cursor struct {
	x, y int
}

// Model is the bubbletea model driving one Session.
type Model struct {
	sess          *session.Session
	KeyMap        KeyMap
	cursor        cursor
	width, height int
	Err           error
}

// New returns a model over s with the cursor on the top-left cell.
func New(s *session.Session) Model {
	return Model{sess: s, KeyMap: Keys}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.Err = nil
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.KeyMap.Up):
			m.move(0, -1)

		case key.Matches(msg, m.KeyMap.Down):
			m.move(0, 1)

		case key.Matches(msg, m.KeyMap.Left):
			m.move(-1, 0)

		case key.Matches(msg, m.KeyMap.Right):
			m.move(1, 0)

		case key.Matches(msg, m.KeyMap.Reveal):
			_, m.Err = m.sess.Reveal(m.cursor.x, m.cursor.y)

		case key.Matches(msg, m.KeyMap.Flag):
			m.Err = m.sess.ToggleFlag(m.cursor.x, m.cursor.y)

		case key.Matches(msg, m.KeyMap.Restart):
			m.Err = m.sess.Restart()

		case key.Matches(msg, m.KeyMap.Difficulty):
			m.Err = m.setDifficulty(msg.String())
		}
		if m.Err != nil {
			log.Debug().Err(m.Err).Str("key", msg.String()).Msg("key rejected")
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return m.render()
}

func (m *Model) setDifficulty(name string) error {
	p, err := config.Lookup(name)
	if err != nil {
		return err
	}
	if err := m.sess.SetDifficulty(p); err != nil {
		return err
	}
	m.clamp()
	return nil
}

// move steps the cursor, wrapping at the board edges.
func (m *Model) move(dx, dy int) {
	w, h := m.sess.Board().Dimensions()
	m.cursor.x = (m.cursor.x + dx + w) % w
	m.cursor.y = (m.cursor.y + dy + h) % h
}

// clamp pulls the cursor back inside a board that just shrank.
func (m *Model) clamp() {
	w, h := m.sess.Board().Dimensions()
	m.cursor.x = min(m.cursor.x, w-1)
	m.cursor.y = min(m.cursor.y, h-1)
}
