package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cellar-tui/cellar/internal/brew"
	"github.com/cellar-tui/cellar/internal/state"
)

// handleKey routes a key press to the handler for the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m.handleHelpKey(msg)
	}
	switch m.mode {
	case modeFilter:
		return m.handleFilterKey(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeResults:
		return m.handleResultsKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

// handleNormalKey handles keys in the default browsing mode.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpOffset = 0
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.store.Confirm.Armed() {
			m.store.Confirm.Clear()
			m.store.SetStatus("Canceled", now)
		} else if m.store.Query != "" || m.store.OutdatedOnly {
			m.store.Query = ""
			m.store.OutdatedOnly = false
			m.input.SetValue("")
			m.store.RebuildIndices()
			m.store.SetStatus("Filters cleared", now)
			m.syncListViews()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveSelection(-1)

	case key.Matches(msg, m.keys.Down):
		return m.moveSelection(1)

	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus(1)
		m.store.SetStatus("Focus: "+m.focus.label(), now)
		return m, nil

	case key.Matches(msg, m.keys.FocusPrev):
		m.cycleFocus(-1)
		m.store.SetStatus("Focus: "+m.focus.label(), now)
		return m, nil

	case key.Matches(msg, m.keys.TabPrev):
		if m.focus == focusStatus {
			m.statusTab = (m.statusTab + tabCount - 1) % tabCount
			m.statusOffset = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.TabNext):
		if m.focus == focusStatus {
			m.statusTab = (m.statusTab + 1) % tabCount
			m.statusOffset = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(collect(m.requestLeaves(), m.requestCasks())...)

	case key.Matches(msg, m.keys.ToggleKind):
		return m.toggleKind(now)

	case key.Matches(msg, m.keys.Outdated):
		m.store.OutdatedOnly = !m.store.OutdatedOnly
		m.store.Confirm.Clear()
		m.store.RebuildIndices()
		m.listOffset = 0
		m.syncListViews()
		if m.store.OutdatedOnly {
			m.store.SetStatus("Outdated only", now)
			if !m.store.HasStatus {
				return m, m.requestStatus()
			}
		} else {
			m.store.SetStatus("All packages", now)
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.input.Placeholder = "type to filter..."
		m.input.SetValue(m.store.Query)
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.input.Placeholder = "search formulae..."
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Results):
		if len(m.store.Results) > 0 || m.store.PendingCommand {
			m.mode = modeResults
			m.listOffset = 0
			m.updateDetailContent()
		}
		return m, nil

	case key.Matches(msg, m.keys.Install):
		return m.packageAction(brew.CommandInstall)

	case key.Matches(msg, m.keys.Uninstall):
		return m.packageAction(brew.CommandUninstall)

	case key.Matches(msg, m.keys.Upgrade):
		if m.focus == focusStatus && m.statusTab == tabOutdated {
			return m.upgradeAll()
		}
		return m.packageAction(brew.CommandUpgrade)

	case key.Matches(msg, m.keys.Cleanup):
		return m, m.startCommand(brew.CommandCleanup, "", false, []string{"cleanup", "-s"})

	case key.Matches(msg, m.keys.Autoremove):
		return m, m.startCommand(brew.CommandAutoremove, "", false, []string{"autoremove"})

	case key.Matches(msg, m.keys.BundleDump):
		return m, m.startCommand(brew.CommandBundleDump, "", false, []string{"bundle", "dump", "--force"})

	case key.Matches(msg, m.keys.SelfUpdate):
		return m.selfUpdate()

	case key.Matches(msg, m.keys.Details):
		name, ok := m.store.SelectedInstalled()
		if !ok {
			return m, nil
		}
		return m, m.requestDetails(name, brew.LoadBasic, false)

	case key.Matches(msg, m.keys.FullDetails):
		if m.store.ActiveKind == state.KindCask {
			m.store.SetStatus("Deps/uses are formula-only", now)
			return m, nil
		}
		name, ok := m.store.SelectedInstalled()
		if !ok {
			return m, nil
		}
		return m, m.requestDetails(name, brew.LoadFull, false)

	case key.Matches(msg, m.keys.Sizes):
		return m, m.requestSizes()

	case key.Matches(msg, m.keys.Health):
		return m, m.requestStatus()

	case key.Matches(msg, m.keys.Theme):
		m.themeMode = NextThemeMode(m.themeMode)
		m.theme = ResolveTheme(m.themeMode)
		m.spin.Style = m.theme.Styles().AccentAlt
		m.store.SetStatus("Theme: "+m.themeMode.String(), now)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Icons):
		m.icons = ToggleIcons(m.icons)
		m.spin.Spinner = m.icons.Spinner
		m.store.SetStatus("Icons: "+m.icons.Name, now)
		m.savePrefs()
		return m, nil
	}
	return m, nil
}

// handleFilterKey handles keys while the filter input is active.
// Printable keys feed the input and re-filter live; arrows move the
// selection without leaving the mode.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.String() {
	case "enter":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		m.input.SetValue("")
		m.store.Query = ""
		m.store.RebuildIndices()
		m.store.SetStatus("Filters cleared", now)
		m.syncListViews()
		return m, nil
	case "up":
		return m.moveSelection(-1)
	case "down":
		return m.moveSelection(1)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.store.Query {
		m.store.Query = v
		m.store.Confirm.Clear()
		m.store.RebuildIndices()
		m.syncListViews()
	}
	return m, cmd
}

// handleSearchKey handles keys while the search query input is active.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			m.store.SetStatus("Enter a package name", time.Now())
			return m, nil
		}
		return m, m.startCommand(brew.CommandSearch, "", false, []string{"search", query})
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		m.updateDetailContent()
		return m, nil
	case "up":
		return m.moveSelection(-1)
	case "down":
		return m.moveSelection(1)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResultsKey handles keys while browsing search results.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		return m.moveSelection(1)
	case "k", "up":
		return m.moveSelection(-1)
	case "i":
		return m.resultAction(brew.CommandInstall)
	case "u":
		return m.resultAction(brew.CommandUninstall)
	case "f":
		m.mode = modeSearch
		m.input.Placeholder = "search formulae..."
		m.input.SetValue("")
		return m, m.input.Focus()
	case "v":
		m.mode = modeNormal
		m.listOffset = 0
		m.updateDetailContent()
		return m, nil
	case "?":
		m.showHelp = true
		m.helpOffset = 0
		return m, nil
	case "esc":
		if m.store.Confirm.Armed() {
			m.store.Confirm.Clear()
			m.store.SetStatus("Canceled", now)
			return m, nil
		}
		m.mode = modeNormal
		m.listOffset = 0
		m.updateDetailContent()
		return m, nil
	}
	return m, nil
}

// handleHelpKey handles keys while the help overlay is open.
func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.showHelp = false
		return m, nil
	case "j", "down":
		m.helpOffset++
		return m, nil
	case "k", "up":
		m.helpOffset = max(0, m.helpOffset-1)
		return m, nil
	}
	return m, nil
}

// moveSelection routes a vertical move to whichever panel has focus.
// List moves stamp the selection change so the auto-fetch debounce can
// see how fast the user is scrolling.
func (m Model) moveSelection(delta int) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch m.focus {
	case focusSizes:
		m.sizesOffset = clamp(m.sizesOffset+delta, 0, m.maxSizesOffset())
		return m, nil
	case focusStatus:
		m.statusOffset = max(0, m.statusOffset+delta)
		return m, nil
	case focusDetails:
		if delta > 0 {
			m.detailView.ScrollDown(1)
		} else {
			m.detailView.ScrollUp(1)
		}
		return m, nil
	}

	m.store.Confirm.Clear()
	m.store.NoteSelectionChange(now)
	if m.resultsContext() {
		m.store.MoveResult(delta)
	} else if delta > 0 {
		m.store.ActiveIndex().Next()
	} else {
		m.store.ActiveIndex().Prev()
	}
	m.syncListViews()
	return m, m.scheduleDebounce()
}

// cycleFocus moves panel focus forward or backward.
func (m *Model) cycleFocus(delta int) {
	m.focus = (m.focus + focusPanel(delta) + focusCount) % focusCount
}

// toggleKind switches between the formula and cask lists. The cask
// list is fetched lazily the first time it is shown.
func (m Model) toggleKind(now time.Time) (tea.Model, tea.Cmd) {
	m.store.Confirm.Clear()
	m.listOffset = 0
	if m.store.ActiveKind == state.KindFormula {
		m.store.ActiveKind = state.KindCask
		m.store.SetStatus("Showing casks", now)
	} else {
		m.store.ActiveKind = state.KindFormula
		m.store.SetStatus("Showing formulae", now)
	}
	m.savePrefs()
	m.syncListViews()
	if m.store.ActiveKind == state.KindCask && len(m.store.Casks) == 0 {
		return m, m.requestCasks()
	}
	return m, nil
}

// packageAction arms or fires a confirmed action against the selected
// installed package. Actions only apply while the list panel has
// focus.
func (m Model) packageAction(action brew.CommandKind) (tea.Model, tea.Cmd) {
	if m.focus != focusInstalled {
		return m, nil
	}
	name, ok := m.store.SelectedInstalled()
	if !ok {
		return m, nil
	}
	return m.confirmOrRun(action, m.store.ActiveKind, name)
}

// resultAction arms or fires a confirmed action against the selected
// search result. Results are always formulae.
func (m Model) resultAction(action brew.CommandKind) (tea.Model, tea.Cmd) {
	name, ok := m.store.SelectedResultName()
	if !ok {
		return m, nil
	}
	return m.confirmOrRun(action, state.KindFormula, name)
}

// confirmOrRun implements the two-step confirmation: the first press
// arms the action and shows a prompt, a second identical press runs
// it. A press for a different action or target re-arms instead.
func (m Model) confirmOrRun(action brew.CommandKind, kind state.PackageKind, target string) (tea.Model, tea.Cmd) {
	now := time.Now()
	if m.store.Confirm.Matches(action, kind, target) {
		m.store.Confirm.Clear()
		return m, m.startCommand(action, target, kind == state.KindCask, packageArgs(action, kind, target))
	}
	m.store.Confirm.ArmPackage(action, kind, target)
	m.store.SetStatus(confirmPrompt(action, kind, target), now)
	return m, nil
}

// upgradeAll arms or fires the bulk upgrade for all outdated packages.
func (m Model) upgradeAll() (tea.Model, tea.Cmd) {
	now := time.Now()
	count := m.store.Status.OutdatedCount
	if !m.store.HasStatus || count <= 0 {
		m.store.SetStatus("No outdated packages", now)
		return m, nil
	}
	if m.store.Confirm.UpgradeAllArmed() {
		m.store.Confirm.Clear()
		return m, m.startCommand(brew.CommandUpgradeAll, "", false, []string{"upgrade"})
	}
	m.store.Confirm.ArmUpgradeAll()
	m.store.SetStatus(fmt.Sprintf("Upgrade all %d outdated packages? [U] confirm, [Esc] cancel", count), now)
	return m, nil
}

// selfUpdate arms or fires reinstalling cellar itself via go install.
func (m Model) selfUpdate() (tea.Model, tea.Cmd) {
	now := time.Now()
	if m.store.Confirm.SelfUpdateArmed() {
		m.store.Confirm.Clear()
		return m, m.startCommand(brew.CommandSelfUpdate, "", false, brew.SelfUpdateArgs)
	}
	m.store.Confirm.ArmSelfUpdate()
	m.store.SetStatus("Update Cellar via `go install github.com/cellar-tui/cellar/cmd/cellar@latest`? [P] confirm, [Esc] cancel", now)
	return m, nil
}

// packageArgs builds the brew argument list for a package action.
func packageArgs(action brew.CommandKind, kind state.PackageKind, target string) []string {
	args := []string{}
	switch action {
	case brew.CommandInstall:
		args = append(args, "install")
	case brew.CommandUninstall:
		args = append(args, "uninstall")
	case brew.CommandUpgrade:
		args = append(args, "upgrade")
	}
	if kind == state.KindCask {
		args = append(args, "--cask")
	}
	return append(args, target)
}

// confirmPrompt phrases the confirmation line for a package action.
func confirmPrompt(action brew.CommandKind, kind state.PackageKind, target string) string {
	return fmt.Sprintf("%s %s %s? [%s] confirm, [Esc] cancel",
		action.Verb(), kind, target, confirmKey(action))
}

// confirmKey returns the key that confirms a pending action, which is
// always the key that armed it.
func confirmKey(action brew.CommandKind) string {
	switch action {
	case brew.CommandUninstall:
		return "u"
	case brew.CommandUpgrade:
		return "U"
	default:
		return "i"
	}
}
