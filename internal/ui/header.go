package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader draws the one-line header: badge, version, the current
// status text, and the theme mode with uptime on the right.
func (m Model) renderHeader() string {
	st := m.theme.Styles()
	badge := st.Badge.Render("Cellar")
	version := st.Subtext.Render("v" + m.version)
	right := st.Muted.Render(fmt.Sprintf("[%s] %s", m.themeMode, humanizeDuration(m.store.Uptime(time.Now()))))

	fixed := lipgloss.Width(badge) + 1 + lipgloss.Width(version) + 2 + lipgloss.Width(right) + 1
	status := st.Accent.Render(truncate(m.store.StatusText, max(0, m.width-fixed)))

	left := badge + " " + version + "  " + status
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// renderFooter draws the one-line key legend.
func (m Model) renderFooter() string {
	parts := make([]string, 0, 9)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.theme.Styles().Footer.Render(truncate(strings.Join(parts, " · "), m.width))
}
