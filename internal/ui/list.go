package ui

import (
	"fmt"
	"strings"

	"github.com/cellar-tui/cellar/internal/state"
)

// renderSearchBar draws the query input panel. Its title tracks the
// input mode.
func (m Model) renderSearchBar() string {
	st := m.theme.Styles()
	w := m.leftWidth()

	title := "Search (/)"
	switch m.mode {
	case modeFilter:
		if m.store.ActiveKind == state.KindCask {
			title = "Search casks"
		} else {
			title = "Search leaves"
		}
	case modeSearch, modeResults:
		title = "Search packages"
	}

	active := m.mode == modeFilter || m.mode == modeSearch
	var line string
	switch {
	case active:
		line = m.input.View()
	case m.store.Query != "":
		line = st.Text.Render(truncate(m.store.Query, w-2))
	default:
		line = st.Muted.Render(truncate("type to filter...", w-2))
	}
	return m.panel(title, line, w, searchPanelH, active)
}

// renderList draws the installed packages panel, or the search results
// while the results context is active.
func (m Model) renderList() string {
	w := m.leftWidth()
	innerW := w - 2

	var title string
	var rows []string
	if m.resultsContext() {
		title = fmt.Sprintf(" Results (%d)", len(m.store.Results))
		rows = m.resultRows(innerW)
	} else if m.store.ActiveKind == state.KindCask {
		title = fmt.Sprintf(" Casks (%d)", m.store.CaskIndex.Count())
		rows = m.installedRows(innerW)
	} else {
		title = fmt.Sprintf(" Leaves (%d)", m.store.LeafIndex.Count())
		if m.store.OutdatedOnly {
			title += " · outdated"
		}
		rows = m.installedRows(innerW)
	}
	return m.panel(title, strings.Join(rows, "\n"), w, m.listHeight(), m.focus == focusInstalled)
}

// installedRows renders the visible window of the active package list.
func (m Model) installedRows(width int) []string {
	st := m.theme.Styles()
	idx := m.store.ActiveIndex()
	if len(idx.Visible) == 0 {
		if m.store.ListError != "" {
			return []string{st.Red.Render(truncate("Error: "+m.store.ListError, width))}
		}
		return []string{st.Muted.Render(truncate(m.emptyListLabel(), width))}
	}

	list := m.store.ActiveList()
	pos := idx.Pos()
	markOutdated := m.store.ActiveKind == state.KindFormula
	end := min(m.listOffset+m.listWindow(), len(idx.Visible))

	rows := make([]string, 0, end-m.listOffset)
	for i := m.listOffset; i < end; i++ {
		name := list[idx.Visible[i]]
		outdated := markOutdated && m.store.IsOutdated(name)
		rows = append(rows, m.listRow(name, i == pos, outdated, width))
	}
	return rows
}

// resultRows renders the visible window of the search results.
func (m Model) resultRows(width int) []string {
	st := m.theme.Styles()
	if len(m.store.Results) == 0 {
		label := "No results yet"
		if m.store.PendingCommand {
			label = "Searching..."
		}
		return []string{st.Muted.Render(truncate(label, width))}
	}

	end := min(m.listOffset+m.listWindow(), len(m.store.Results))
	rows := make([]string, 0, end-m.listOffset)
	for i := m.listOffset; i < end; i++ {
		rows = append(rows, m.listRow(m.store.Results[i], i == m.store.SelectedResult, false, width))
	}
	return rows
}

// listRow renders one package row. The marker column stays two cells
// wide whether or not the package is outdated, so names line up.
func (m Model) listRow(name string, selected, outdated bool, width int) string {
	st := m.theme.Styles()
	marker := "  "
	if outdated {
		marker = m.icons.Outdated
	}
	if selected {
		return st.Selected.Render(padRight(m.icons.Selection+" "+marker+name, width))
	}
	if outdated {
		return "  " + st.Orange.Render(marker) + st.Text.Render(truncate(name, width-4))
	}
	return "  " + marker + st.Text.Render(truncate(name, width-4))
}

// emptyListLabel picks the placeholder for an empty installed list.
func (m Model) emptyListLabel() string {
	if m.store.ActiveKind == state.KindCask {
		if m.store.PendingCasks {
			return "Loading..."
		}
		return "No casks found"
	}
	if m.store.PendingLeaves {
		return "Loading..."
	}
	if m.store.OutdatedOnly {
		if !m.store.HasStatus {
			return "No outdated data yet (press h)"
		}
		return "No outdated leaves"
	}
	return "No leaves found"
}
