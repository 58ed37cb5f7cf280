package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/cellar-tui/cellar/internal/state"
)

// renderStatus draws the tabbed status panel. The first content row is
// the tab bar; the rest is the active tab, scrolled by statusOffset.
func (m Model) renderStatus() string {
	st := m.theme.Styles()
	w := m.rightWidth()
	innerW := w - 2

	lines := m.statusTabLines(innerW)
	window := m.statusWindow()
	offset := min(m.statusOffset, max(0, len(lines)-window))
	visible := make([]string, 0, window+1)
	visible = append(visible, m.statusTabBar())
	if offset > 0 {
		// The indicator takes the first content row of the window.
		visible = append(visible, st.Muted.Render(fmt.Sprintf("↑ %d more above", offset)))
		window--
	}
	end := min(offset+window, len(lines))
	visible = append(visible, lines[offset:end]...)

	return m.panel(" Status", strings.Join(visible, "\n"), w, statusPanelH, m.focus == focusStatus)
}

// statusTabBar renders the tab names with the active one highlighted.
func (m Model) statusTabBar() string {
	st := m.theme.Styles()
	parts := make([]string, 0, int(tabCount))
	for t := statusTab(0); t < tabCount; t++ {
		if t == m.statusTab {
			parts = append(parts, st.TitleActive.Render(t.title()))
		} else {
			parts = append(parts, st.Muted.Render(t.title()))
		}
	}
	return strings.Join(parts, st.Muted.Render(" · "))
}

func (m Model) statusTabLines(width int) []string {
	switch m.statusTab {
	case tabIssues:
		return m.issueLines(width)
	case tabOutdated:
		return m.outdatedLines(width)
	default:
		return m.activityLines(width)
	}
}

// activityLines shows the running command, a fresh completion, or the
// status snapshot summary, in that order of preference.
func (m Model) activityLines(width int) []string {
	st := m.theme.Styles()
	now := time.Now()

	if m.store.PendingCommand {
		elapsed := int(now.Sub(m.store.CommandStarted).Seconds())
		lines := []string{
			m.spin.View() + " " + st.Accent.Render(truncate(fmt.Sprintf("Running %s... (%ds)", m.store.CommandLabel, elapsed), width-2)),
			st.Subtext.Render(truncate("$ "+m.store.CommandLine, width)),
		}
		for _, out := range m.store.CommandOutput {
			lines = append(lines, st.Muted.Render(truncate("> "+out, width)))
		}
		return lines
	}

	if done, ok := m.store.RecentCompletion(now); ok {
		return []string{st.Green.Render(truncate(done.Label+" completed: "+done.Target, width))}
	}
	return m.summaryLines(width, now)
}

// summaryLines is the idle activity view: toast first, then the status
// snapshot, refresh stamps, and the last command.
func (m Model) summaryLines(width int, now time.Time) []string {
	st := m.theme.Styles()
	var lines []string

	if t := m.store.Toast; t != nil {
		style := st.Green
		if t.Level == state.ToastError {
			style = st.Red
		}
		lines = append(lines, style.Render(truncate(t.Message, width)))
	}

	if m.store.HasStatus {
		snap := m.store.Status
		lines = append(lines, st.Text.Render(truncate("Brew: "+snap.BrewVersion, width)))
		if snap.BrewInfo != "" {
			lines = append(lines, st.Subtext.Render(truncate(snap.BrewInfo, width)))
		}
		switch {
		case snap.DoctorOK == nil:
			lines = append(lines, st.Muted.Render("Doctor: —"))
		case *snap.DoctorOK:
			lines = append(lines, st.Green.Render("Doctor: OK"))
		default:
			lines = append(lines, st.Red.Render(fmt.Sprintf("Doctor: %d issues", len(snap.DoctorIssues))))
		}
		switch {
		case snap.OutdatedCount < 0:
			lines = append(lines, st.Muted.Render("Outdated: —"))
		case snap.OutdatedCount == 0:
			lines = append(lines, st.Green.Render("Outdated: 0"))
		default:
			lines = append(lines, st.Orange.Render(fmt.Sprintf("Outdated: %d", snap.OutdatedCount)))
		}
		update := "Update: " + snap.UpdateStatus
		if snap.UpdateAgo >= 0 {
			update += fmt.Sprintf(" (%s ago)", humanizeDuration(snap.UpdateAgo))
		}
		lines = append(lines, st.Subtext.Render(truncate(update, width)))
	} else {
		lines = append(lines, st.Muted.Render("No status data. Press 'h' to check."))
	}

	if !m.store.LastLeaves.IsZero() {
		lines = append(lines, st.Muted.Render("Leaves refreshed "+humanizeDuration(now.Sub(m.store.LastLeaves))+" ago"))
	}
	if !m.store.LastSizes.IsZero() {
		lines = append(lines, st.Muted.Render("Sizes refreshed "+humanizeDuration(now.Sub(m.store.LastSizes))+" ago"))
	}
	if !m.store.LastStatus.IsZero() {
		lines = append(lines, st.Muted.Render("Status checked "+humanizeDuration(now.Sub(m.store.LastStatus))+" ago"))
	}

	if m.store.CommandLine != "" {
		lines = append(lines, st.Subtext.Render(truncate("Last: $ "+m.store.CommandLine, width)))
		if m.store.LastCommandErr != "" {
			lines = append(lines, st.Red.Render(truncate(m.store.LastCommandErr, width)))
		}
	}
	return lines
}

// issueLines lists brew doctor findings.
func (m Model) issueLines(width int) []string {
	st := m.theme.Styles()
	if !m.store.HasStatus {
		return []string{st.Muted.Render("No status data. Press 'h' to check.")}
	}
	if len(m.store.Status.DoctorIssues) == 0 {
		return []string{st.Green.Render("No issues found")}
	}
	lines := make([]string, 0, len(m.store.Status.DoctorIssues))
	for _, issue := range m.store.Status.DoctorIssues {
		lines = append(lines, st.Yellow.Render(truncate(issue, width)))
	}
	return lines
}

// outdatedLines lists the outdated leaves from the last status check.
func (m Model) outdatedLines(width int) []string {
	st := m.theme.Styles()
	if !m.store.HasStatus {
		return []string{st.Muted.Render("No status data. Press 'h' to check.")}
	}
	if len(m.store.Status.OutdatedPackages) == 0 {
		return []string{st.Green.Render("All packages up to date")}
	}
	lines := make([]string, 0, len(m.store.Status.OutdatedPackages)+1)
	for _, name := range m.store.Status.OutdatedPackages {
		lines = append(lines, st.Orange.Render(m.icons.Outdated)+st.Text.Render(truncate(name, width-2)))
	}
	lines = append(lines, st.Muted.Render("Press U here to upgrade all"))
	return lines
}
