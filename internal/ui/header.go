package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wordbook/internal/layout"
)

// renderHeader renders the title bar with the current location on the left
// and the layout switch on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Render("wordbook", styles.Logo)
	switch m.currentView {
	case ViewLetters:
		left += bg.Sep("  ") + bg.Render(m.lettersTitle(), styles.MutedText)
	case ViewWords:
		left += bg.Sep("  ") + bg.Render("Letters › "+m.letter, styles.MutedText)
	}

	icon := m.layout.Icon()
	right := bg.Render(m.keys.ToggleLayout.Help().Key, styles.WarningText) +
		bg.Sep(" ") + bg.Render(icon.Glyph+" "+icon.Label, styles.AccentText)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

func (m Model) lettersTitle() string {
	if m.layout.Mode() == layout.Grid {
		return "Letters (grid)"
	}
	return "Letters (list)"
}

// renderFooter renders the status line and key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	status := ""
	if m.status != "" {
		if m.statusIsErr {
			status = styles.DangerText.Render(m.status)
		} else {
			status = styles.SuccessText.Render(m.status)
		}
	}

	bindings := m.keys.lettersHelp()
	if m.currentView == ViewWords {
		bindings = m.keys.wordsHelp()
	}
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	hints := m.help.ShortHelpView(bindings)

	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(status) + "\n" +
		styles.Footer.Width(m.width).MaxWidth(m.width).Render(hints)
}
