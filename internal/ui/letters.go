package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wordbook/internal/layout"
)

// handleLettersKey processes keyboard input for the letter view.
func (m Model) handleLettersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		if len(m.letters) > 0 {
			m.selectLetter(m.letters[m.letterCursor])
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveLetterCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveLetterCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveLetterCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveLetterCursor(1, 0)
	case key.Matches(msg, m.keys.Top):
		m.letterCursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.letterCursor = len(m.letters) - 1
	default:
		return m, nil
	}
	m.updateLetterViewport()
	return m, nil
}

// moveLetterCursor moves the cursor by dx cells within a row and dy rows.
// Moves that would leave the grid are ignored.
func (m *Model) moveLetterCursor(dx, dy int) {
	cols := m.columns()
	n := len(m.letters)
	if n == 0 {
		return
	}

	next := m.letterCursor
	if dx != 0 {
		col := next%cols + dx
		if col < 0 || col >= cols {
			return
		}
		next += dx
	}
	next += dy * cols
	if next < 0 || next >= n {
		return
	}
	m.letterCursor = next
}

func (m Model) columns() int {
	return m.layout.Columns(m.gridColumns)
}

// updateLetterViewport refreshes the letter list and scrolls the cursor row
// into view.
func (m *Model) updateLetterViewport() {
	if !m.ready {
		return
	}
	m.letterViewport.Width = m.width
	m.letterViewport.Height = contentHeight(m.height)
	m.letterViewport.SetContent(m.renderLetterCells())

	row := m.letterCursor / m.columns()
	switch {
	case row < m.letterViewport.YOffset:
		m.letterViewport.SetYOffset(row)
	case row >= m.letterViewport.YOffset+m.letterViewport.Height:
		m.letterViewport.SetYOffset(row - m.letterViewport.Height + 1)
	}
}

func (m Model) renderLetters() string {
	return m.letterViewport.View()
}

// renderLetterCells lays the letters out one per row or in a grid.
func (m Model) renderLetterCells() string {
	styles := m.theme.Styles()
	cols := m.columns()
	width := cellWidth(m.width, cols)

	rows := make([]string, 0, len(m.letters)/cols+1)
	for start := 0; start < len(m.letters); start += cols {
		end := min(start+cols, len(m.letters))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderLetterCell(i, width, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderLetterCell(i, width int, styles Styles) string {
	letter := m.letters[i]
	count := m.counts[letter]

	var label string
	if m.layout.Mode() == layout.Linear {
		label = fmt.Sprintf(" %s  %s", letter, wordCountLabel(count))
	} else {
		label = fmt.Sprintf(" %s %d", letter, count)
	}

	style := styles.Cell
	switch {
	case i == m.letterCursor:
		style = styles.Selected
	case count == 0:
		style = style.Foreground(lipgloss.Color(m.theme.Faint))
	}
	// A one-column gap keeps grid cells apart.
	return style.Width(width - 1).MaxWidth(width - 1).Render(label) + " "
}

func wordCountLabel(n int) string {
	if n == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", n)
}
