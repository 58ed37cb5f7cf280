package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpSections names the binding groups returned by keyMap.FullHelp,
// in order.
var helpSections = []string{"Navigation", "Search", "Actions", "Data", "Other"}

// renderHelp draws the full-screen key reference.
func (m Model) renderHelp() string {
	st := m.theme.Styles()

	var lines []string
	lines = append(lines, st.TitleActive.Render("Cellar key reference"), "")
	for i, group := range m.keys.FullHelp() {
		name := "Other"
		if i < len(helpSections) {
			name = helpSections[i]
		}
		lines = append(lines, st.Subtext.Render(name))
		for _, b := range group {
			h := b.Help()
			lines = append(lines, "  "+st.Accent.Render(padRight(h.Key, 11))+st.Text.Render(h.Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, st.Muted.Render("j/k scroll · ?/Esc close"))

	window := max(1, m.height-2)
	offset := clamp(m.helpOffset, 0, max(0, len(lines)-window))
	visible := lines[offset:min(offset+window, len(lines))]

	box := st.Panel.
		Padding(0, 2).
		Background(lipgloss.Color(m.theme.PanelBg)).
		Render(strings.Join(visible, "\n"))
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Bg)),
	)
}
