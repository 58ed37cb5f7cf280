package ui

import (
	"strings"

	"github.com/cellar-tui/cellar/internal/state"
)

// renderDetail draws the details panel for the highlighted package.
func (m Model) renderDetail() string {
	return m.panel(" Details", m.detailView.View(), m.rightWidth(), m.detailHeight(), m.focus == focusDetails)
}

// updateDetailContent rebuilds the details viewport for the current
// selection. Scroll position resets when the target package changes
// and is kept when fresh data arrives for the same package.
func (m *Model) updateDetailContent() {
	if !m.ready {
		return
	}
	name := m.detailTarget()
	m.detailView.SetContent(m.detailContent(name))
	if name != m.detailFor {
		m.detailFor = name
		m.detailView.GotoTop()
	}
}

// detailTarget returns the package the details panel should describe.
func (m Model) detailTarget() string {
	if m.resultsContext() {
		name, _ := m.store.SelectedResultName()
		return name
	}
	name, _ := m.store.SelectedInstalled()
	return name
}

func (m Model) detailContent(name string) string {
	st := m.theme.Styles()
	w, _ := m.detailSize()

	if name == "" {
		return st.Muted.Render("No package selected")
	}

	var b strings.Builder
	b.WriteString(st.Accent.Bold(true).Render(truncate(name, w)))
	b.WriteString("\n")
	if m.store.PendingDetails && m.store.DetailsTarget == name {
		b.WriteString(st.Muted.Render("loading..."))
		b.WriteString("\n")
	}

	det, ok := m.store.Cache.Peek(name)
	if !ok {
		b.WriteString(st.Muted.Render("Press Enter to load details"))
		return b.String()
	}

	if det.Description != "" {
		b.WriteString(st.Text.Width(w).Render(det.Description))
		b.WriteString("\n")
	}
	if det.Homepage != "" {
		b.WriteString(st.Subtext.Render(truncate("Homepage: "+det.Homepage, w)))
		b.WriteString("\n")
	}

	installed := "Installed: —"
	if len(det.Installed) > 0 {
		installed = "Installed: " + strings.Join(det.Installed, ", ")
	}
	b.WriteString(st.Text.Render(truncate(installed+" "+m.sizeNote(name), w)))
	b.WriteString("\n")

	if det.Latest != "" {
		line := "Latest: " + det.Latest
		if m.store.IsOutdated(name) {
			b.WriteString(st.Orange.Render(truncate(line+" "+strings.TrimSpace(m.icons.Outdated), w)))
		} else {
			b.WriteString(st.Text.Render(truncate(line, w)))
		}
		b.WriteString("\n")
	}

	// Deps and uses only exist for formulae.
	if m.resultsContext() || m.store.ActiveKind == state.KindFormula {
		b.WriteString("\n")
		b.WriteString(m.detailSection("Dependencies", det.Deps, name, w))
		b.WriteString("\n")
		b.WriteString(m.detailSection("Used by", det.Uses, name, w))
	}
	return b.String()
}

// detailSection renders a deps or uses block. A nil slice means the
// section has not been fetched yet.
func (m Model) detailSection(title string, items []string, name string, w int) string {
	st := m.theme.Styles()
	var b strings.Builder
	b.WriteString(st.Subtext.Render(title + ":"))
	b.WriteString("\n")
	switch {
	case items == nil && m.store.PendingDetails && m.store.DetailsTarget == name:
		b.WriteString(st.Muted.Render("loading..."))
	case items == nil:
		b.WriteString(st.Muted.Render("press 'd' to load"))
	case len(items) == 0:
		b.WriteString(st.Muted.Render("none"))
	default:
		for i, item := range items {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(st.Text.Render(truncate(m.icons.Bullet+" "+item, w)))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// sizeNote annotates the installed line with the package's measured
// cellar footprint.
func (m Model) sizeNote(name string) string {
	if kb, ok := m.store.SizeOf(name); ok {
		return "(size: " + formatSizeKB(kb) + ")"
	}
	if m.store.PendingSizes {
		return "(size: loading...)"
	}
	return "(size: n/a)"
}
