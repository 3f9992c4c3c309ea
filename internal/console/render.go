package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/minesweeper/internal/game"
)

var (
	coveredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00")).Bold(true)
	mineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	blankStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFD700")).Bold(true)
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87AF"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))

	// countStyles is indexed by neighbor count, 1..8.
	countStyles = [...]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("#00AF00")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("#5F00AF")),
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("#AF0000")),
		6: lipgloss.NewStyle().Foreground(lipgloss.Color("#00AFAF")),
		7: lipgloss.NewStyle().Foreground(lipgloss.Color("#D7D7D7")),
		8: lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
	}
)

// Glyph returns the single character shown for a cell:
// '#' covered, 'F' flagged, '.' blank, '1'-'8' counts, '*' mine.
func Glyph(b *game.Board, x, y int) (byte, error) {
	vis, err := b.VisibilityAt(x, y)
	if err != nil {
		return 0, err
	}
	switch vis {
	case game.Covered:
		return '#', nil
	case game.Flagged:
		return 'F', nil
	}
	v, err := b.RenderValueAt(x, y)
	if err != nil {
		return 0, err
	}
	switch {
	case v.IsMine():
		return '*', nil
	case v == 0:
		return '.', nil
	default:
		return '0' + byte(v), nil
	}
}

func glyphStyle(g byte) lipgloss.Style {
	switch {
	case g == '#':
		return coveredStyle
	case g == 'F':
		return flagStyle
	case g == '*':
		return mineStyle
	case g >= '1' && g <= '8':
		return countStyles[g-'0']
	default:
		return blankStyle
	}
}

func (m Model) render() string {
	board, err := m.renderBoard()
	if err != nil {
		return errStyle.Render(fmt.Sprintf("render: %v", err))
	}
	parts := []string{board, m.renderStatus(), m.renderHelp()}
	if m.Err != nil {
		parts = append(parts, errStyle.Render(fmt.Sprintf("error: %v", m.Err)))
	}
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// renderBoard draws the grid with column and row numbers; the cursor cell
// is bracketed so it stays visible without color.
func (m Model) renderBoard() (string, error) {
	b := m.sess.Board()
	width, height := b.Dimensions()

	var s strings.Builder
	s.WriteString("   ")
	for x := 0; x < width; x++ {
		s.WriteString(axisStyle.Render(fmt.Sprintf("%2d ", x)))
	}
	s.WriteString("\n")

	for y := 0; y < height; y++ {
		s.WriteString(axisStyle.Render(fmt.Sprintf("%3d", y)))
		for x := 0; x < width; x++ {
			g, err := Glyph(b, x, y)
			if err != nil {
				return "", err
			}
			if m.cursor.x == x && m.cursor.y == y {
				s.WriteString(cursorStyle.Render(fmt.Sprintf("[%c]", g)))
				continue
			}
			s.WriteString(" " + glyphStyle(g).Render(string(g)) + " ")
		}
		if y < height-1 {
			s.WriteString("\n")
		}
	}
	return s.String(), nil
}

func (m Model) renderStatus() string {
	b := m.sess.Board()
	line := fmt.Sprintf("%s  mines left: %d  status: %s", m.sess.Preset(), b.MinesRemaining(), b.Status())
	switch b.Status() {
	case game.StatusWon:
		line += "  " + winStyle.Render("YOU WIN")
	case game.StatusLost:
		line += "  " + mineStyle.Render("YOU LOSE")
	}
	return line
}

func (m Model) renderHelp() string {
	var items []string
	for _, b := range m.KeyMap.help() {
		h := b.Help()
		items = append(items, h.Key+" "+h.Desc)
	}
	items = append(items, "arrows/hjkl move")
	return helpStyle.Render(strings.Join(items, " • "))
}
