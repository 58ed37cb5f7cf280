package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cellar-tui/cellar/internal/brew"
	"github.com/cellar-tui/cellar/internal/state"
)

// scheduleDebounce arms a one-shot timer for the debounce window.
// Every call bumps the tag, so when the selection keeps moving only
// the last timer survives the tag check in Update.
func (m *Model) scheduleDebounce() tea.Cmd {
	m.debounceTag++
	tag := m.debounceTag
	return tea.Tick(state.DebounceWindow, func(time.Time) tea.Msg {
		return debounceMsg{tag: tag}
	})
}

// maybeAutoFetch fetches basic details for the highlighted package
// once the selection has settled. It stays quiet while a details fetch
// is in flight, while the user is scrolling rapidly, and for targets
// it already handled.
func (m *Model) maybeAutoFetch(now time.Time) tea.Cmd {
	if m.store.PendingDetails || m.store.RapidScrolling() || !m.store.DebounceElapsed(now) {
		return nil
	}
	if m.resultsContext() {
		name, ok := m.store.SelectedResultName()
		if !ok || name == m.store.LastAutoResult {
			return nil
		}
		cmd := m.requestDetails(name, brew.LoadBasic, false)
		m.store.LastAutoResult = name
		return cmd
	}
	name, ok := m.store.SelectedInstalled()
	if !ok || name == m.store.LastAutoInstalled {
		return nil
	}
	cmd := m.requestDetails(name, brew.LoadBasic, false)
	m.store.LastAutoInstalled = name
	return cmd
}

// resultsContext reports whether navigation and the details panel
// should track the search results instead of the installed list.
func (m Model) resultsContext() bool {
	return m.mode == modeSearch || m.mode == modeResults
}
