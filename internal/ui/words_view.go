package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/wordbook/internal/search"
)

// handleWordsKey processes keyboard input for the word view.
func (m Model) handleWordsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.currentView = ViewLetters
		m.clearStatus()
		m.updateLetterViewport()
	case key.Matches(msg, m.keys.Resample):
		m.selectLetter(m.letter)
	case key.Matches(msg, m.keys.Up):
		if m.wordCursor > 0 {
			m.wordCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.wordCursor < len(m.sample)-1 {
			m.wordCursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.wordCursor = 0
	case key.Matches(msg, m.keys.Bottom):
		if len(m.sample) > 0 {
			m.wordCursor = len(m.sample) - 1
		}
	case key.Matches(msg, m.keys.Open):
		if url, ok := m.selectedURL(); ok {
			return m, openCmd(m.opener, actionOpen, url)
		}
	case key.Matches(msg, m.keys.Copy):
		if url, ok := m.selectedURL(); ok {
			return m, openCmd(m.copier, actionCopy, url)
		}
	}
	return m, nil
}

// selectedURL returns the search URL for the highlighted word.
func (m Model) selectedURL() (string, bool) {
	if m.wordCursor < 0 || m.wordCursor >= len(m.sample) {
		return "", false
	}
	return search.URL(m.searchPrefix, m.sample[m.wordCursor]), true
}

// renderWords renders the sample for the selected letter.
func (m Model) renderWords() string {
	styles := m.theme.Styles()
	innerWidth := max(m.width-6, 10)

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(fmt.Sprintf("Words starting with %s", m.letter)))
	b.WriteString("\n\n")

	if len(m.sample) == 0 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("No words start with %s", m.letter)))
		return styles.Panel.Width(m.width - 2).Render(b.String())
	}

	for i, w := range m.sample {
		word := ansi.Truncate(w, innerWidth-4, "…")
		if i == m.wordCursor {
			b.WriteString(styles.Selected.Render(" › " + word + " "))
		} else {
			b.WriteString(styles.Text.Render("   " + word))
		}
		b.WriteString("\n")
	}

	if url, ok := m.selectedURL(); ok {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(ansi.Truncate(url, innerWidth, "…")))
	}

	return styles.Panel.Width(m.width - 2).Render(b.String())
}
