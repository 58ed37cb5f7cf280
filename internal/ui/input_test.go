package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cellar-tui/cellar/internal/brew"
	"github.com/cellar-tui/cellar/internal/state"
)

var (
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func TestModel_ConfirmInstallRunsOnSecondPress(t *testing.T) {
	f := &fakeRunner{responses: map[string]brew.Result{
		"brew install wget": {Stdout: "wget 1.24.5 installed", Success: true},
	}}
	m := newTestModel(f)
	m.store.SetLeaves([]string{"wget"}, t0)

	m, cmd := press(t, m, keyRune('i'))
	if cmd != nil {
		t.Fatalf("first press dispatched a command, want arm only")
	}
	if !m.store.Confirm.Matches(brew.CommandInstall, state.KindFormula, "wget") {
		t.Fatalf("confirmation not armed for install wget")
	}
	if got := m.store.StatusText; !strings.Contains(got, "Install formula wget?") {
		t.Fatalf("StatusText = %q, want the confirmation prompt", got)
	}

	m, cmd = press(t, m, keyRune('i'))
	if cmd == nil {
		t.Fatalf("second press did not dispatch")
	}
	if m.store.Confirm.Armed() {
		t.Fatalf("confirmation still armed after dispatch")
	}
	if !m.store.PendingCommand {
		t.Fatalf("PendingCommand = false after dispatch")
	}

	var done commandMsg
	found := false
	for _, msg := range runCmd(cmd) {
		if cm, ok := msg.(commandMsg); ok {
			done, found = cm, true
		}
	}
	if !found {
		t.Fatalf("no commandMsg came back")
	}
	if got := f.countOf("brew install wget"); got != 1 {
		t.Fatalf("brew install wget ran %d times, want 1", got)
	}

	res, _ := m.Update(done)
	m = res.(Model)
	toast := m.store.Toast
	if toast == nil || toast.Message != "Install succeeded for wget" {
		t.Fatalf("toast = %+v, want Install succeeded for wget", toast)
	}
}

func TestModel_ConfirmRearmsWhenSelectionMoves(t *testing.T) {
	f := &fakeRunner{}
	m := newTestModel(f)
	m.store.SetLeaves([]string{"bat", "wget"}, t0)

	m, _ = press(t, m, keyRune('i'))
	if !m.store.Confirm.Matches(brew.CommandInstall, state.KindFormula, "bat") {
		t.Fatalf("confirmation not armed for bat")
	}

	// Moving the selection clears the armed action.
	m, _ = press(t, m, keyDown)
	if m.store.Confirm.Armed() {
		t.Fatalf("confirmation survived a selection move")
	}

	m, _ = press(t, m, keyRune('i'))
	if !m.store.Confirm.Matches(brew.CommandInstall, state.KindFormula, "wget") {
		t.Fatalf("confirmation not re-armed for wget")
	}
	if len(f.calls) != 0 {
		t.Fatalf("brew ran %v, want nothing", f.calls)
	}
}

func TestModel_ConfirmRearmsOnDifferentAction(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.store.SetLeaves([]string{"wget"}, t0)

	m, _ = press(t, m, keyRune('i'))
	m, cmd := press(t, m, keyRune('u'))
	if cmd != nil {
		t.Fatalf("mismatched action dispatched, want re-arm")
	}
	if !m.store.Confirm.Matches(brew.CommandUninstall, state.KindFormula, "wget") {
		t.Fatalf("confirmation not re-armed for uninstall")
	}
}

func TestModel_EscapePeelsConfirmThenFilters(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.store.SetLeaves([]string{"bat", "wget"}, t0)
	m.store.Query = "w"
	m.store.OutdatedOnly = false
	m.store.RebuildIndices()

	m, _ = press(t, m, keyRune('i'))
	if !m.store.Confirm.Armed() {
		t.Fatalf("confirmation not armed")
	}

	// First escape cancels the armed action and leaves the filter alone.
	m, _ = press(t, m, keyEsc)
	if m.store.Confirm.Armed() {
		t.Fatalf("confirmation survived escape")
	}
	if got := m.store.StatusText; got != "Canceled" {
		t.Fatalf("StatusText = %q, want Canceled", got)
	}
	if got := m.store.Query; got != "w" {
		t.Fatalf("Query = %q, want w untouched", got)
	}

	// Second escape clears the filter.
	m, _ = press(t, m, keyEsc)
	if got := m.store.Query; got != "" {
		t.Fatalf("Query = %q, want empty", got)
	}
	if got := m.store.StatusText; got != "Filters cleared" {
		t.Fatalf("StatusText = %q, want Filters cleared", got)
	}
	if got := m.store.ActiveIndex().Count(); got != 2 {
		t.Fatalf("visible count = %d, want 2 after clearing", got)
	}
}

func TestModel_FilterNarrowsAndSelectionSurvivesClearing(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.store.SetLeaves([]string{"bat", "broom", "curl"}, t0)

	// Walk down to curl before filtering.
	m, _ = press(t, m, keyDown)
	m, _ = press(t, m, keyDown)
	if name, _ := m.store.SelectedInstalled(); name != "curl" {
		t.Fatalf("selection = %q, want curl", name)
	}

	m, _ = press(t, m, keyRune('/'))
	if m.mode != modeFilter {
		t.Fatalf("mode = %v, want modeFilter", m.mode)
	}

	// Typing narrows live and snaps the hidden selection to the first match.
	m, _ = press(t, m, keyRune('b'))
	if got := m.store.Query; got != "b" {
		t.Fatalf("Query = %q, want b", got)
	}
	if got := m.store.ActiveIndex().Count(); got != 2 {
		t.Fatalf("visible count = %d, want 2", got)
	}
	if name, _ := m.store.SelectedInstalled(); name != "bat" {
		t.Fatalf("selection = %q, want bat", name)
	}

	// Arrows keep working inside the filter mode.
	m, _ = press(t, m, keyDown)
	if name, _ := m.store.SelectedInstalled(); name != "broom" {
		t.Fatalf("selection = %q, want broom", name)
	}

	// Enter keeps the filter, escape then clears it without losing the
	// selection.
	m, _ = press(t, m, keyEnter)
	if m.mode != modeNormal || m.store.Query != "b" {
		t.Fatalf("mode %v query %q, want modeNormal with filter kept", m.mode, m.store.Query)
	}
	m, _ = press(t, m, keyEsc)
	if got := m.store.ActiveIndex().Count(); got != 3 {
		t.Fatalf("visible count = %d, want 3 after clearing", got)
	}
	if name, _ := m.store.SelectedInstalled(); name != "broom" {
		t.Fatalf("selection = %q, want broom preserved", name)
	}
}

func TestModel_FilterEscapeDropsQuery(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.store.SetLeaves([]string{"bat", "wget"}, t0)

	m, _ = press(t, m, keyRune('/'))
	m, _ = press(t, m, keyRune('w'))
	if got := m.store.ActiveIndex().Count(); got != 1 {
		t.Fatalf("visible count = %d, want 1", got)
	}

	m, _ = press(t, m, keyEsc)
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want modeNormal", m.mode)
	}
	if m.store.Query != "" {
		t.Fatalf("Query = %q, want empty", m.store.Query)
	}
	if got := m.store.ActiveIndex().Count(); got != 2 {
		t.Fatalf("visible count = %d, want full list", got)
	}
}

func TestModel_KindToggleFetchesCasksLazily(t *testing.T) {
	f := &fakeRunner{responses: map[string]brew.Result{
		"brew list --cask": {Stdout: "iterm2\nfirefox\n", Success: true},
	}}
	m := newTestModel(f)
	m.store.SetLeaves([]string{"bat"}, t0)

	m, cmd := press(t, m, keyRune('C'))
	if m.store.ActiveKind != state.KindCask {
		t.Fatalf("ActiveKind = %v, want cask", m.store.ActiveKind)
	}
	if cmd == nil {
		t.Fatalf("empty cask list was not fetched")
	}
	for _, msg := range runCmd(cmd) {
		res, _ := m.Update(msg)
		m = res.(Model)
	}
	if got := m.store.Casks; len(got) != 2 || got[0] != "firefox" || got[1] != "iterm2" {
		t.Fatalf("Casks = %v, want [firefox iterm2]", got)
	}

	// Toggling back and forth again finds the list already loaded.
	m, _ = press(t, m, keyRune('C'))
	if m.store.ActiveKind != state.KindFormula {
		t.Fatalf("ActiveKind = %v, want formula", m.store.ActiveKind)
	}
	m, cmd = press(t, m, keyRune('C'))
	if cmd != nil {
		t.Fatalf("cask list refetched although it was loaded")
	}
	if got := f.countOf("brew list --cask"); got != 1 {
		t.Fatalf("brew list --cask ran %d times, want 1", got)
	}
}

func TestModel_OutdatedToggleChecksStatusWhenUnknown(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.store.SetLeaves([]string{"bat", "wget"}, t0)

	m, cmd := press(t, m, keyRune('o'))
	if !m.store.OutdatedOnly {
		t.Fatalf("OutdatedOnly = false after toggle")
	}
	if cmd == nil || !m.store.PendingStatus {
		t.Fatalf("missing status data was not fetched")
	}
	if got := m.store.ActiveIndex().Count(); got != 0 {
		t.Fatalf("visible count = %d, want 0 without outdated data", got)
	}

	m, _ = press(t, m, keyRune('o'))
	if m.store.OutdatedOnly {
		t.Fatalf("OutdatedOnly = true after second toggle")
	}
	if got := m.store.StatusText; got != "All packages" {
		t.Fatalf("StatusText = %q, want All packages", got)
	}
}

func TestModel_OutdatedToggleFiltersWithSnapshot(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.store.SetLeaves([]string{"bat", "wget"}, t0)
	m.store.SetStatusSnapshot(brew.StatusSnapshot{
		OutdatedCount:    1,
		OutdatedPackages: []string{"wget"},
	}, t0)

	m, cmd := press(t, m, keyRune('o'))
	if cmd != nil {
		t.Fatalf("status refetched although a snapshot exists")
	}
	if got := m.store.ActiveIndex().Count(); got != 1 {
		t.Fatalf("visible count = %d, want 1", got)
	}
	if name, _ := m.store.SelectedInstalled(); name != "wget" {
		t.Fatalf("selection = %q, want wget", name)
	}
}

func TestModel_SearchFlowEndToEnd(t *testing.T) {
	f := &fakeRunner{responses: map[string]brew.Result{
		"brew search rg":       {Stdout: "==> Formulae\nrg\nripgrep\n", Success: true},
		"brew install ripgrep": {Stdout: "installed", Success: true},
	}}
	m := newTestModel(f)
	m.store.SetLeaves([]string{"bat"}, t0)

	m, _ = press(t, m, keyRune('f'))
	if m.mode != modeSearch {
		t.Fatalf("mode = %v, want modeSearch", m.mode)
	}
	m, _ = press(t, m, keyRune('r'))
	m, _ = press(t, m, keyRune('g'))
	m, cmd := press(t, m, keyEnter)
	if cmd == nil {
		t.Fatalf("enter did not dispatch the search")
	}
	if got := m.store.StatusText; got != "Searching..." {
		t.Fatalf("StatusText = %q, want Searching...", got)
	}

	for _, msg := range runCmd(cmd) {
		if cm, ok := msg.(commandMsg); ok {
			res, _ := m.Update(cm)
			m = res.(Model)
		}
	}
	if m.mode != modeResults {
		t.Fatalf("mode = %v, want modeResults after the search", m.mode)
	}
	if got := m.store.StatusText; got != "2 results" {
		t.Fatalf("StatusText = %q, want 2 results", got)
	}

	// Navigate to the second result and install it with the usual
	// two-step confirmation.
	m, _ = press(t, m, keyRune('j'))
	m, _ = press(t, m, keyRune('i'))
	if got := m.store.StatusText; !strings.Contains(got, "Install formula ripgrep?") {
		t.Fatalf("StatusText = %q, want the ripgrep prompt", got)
	}
	m, cmd = press(t, m, keyRune('i'))
	runCmd(cmd)
	if got := f.countOf("brew install ripgrep"); got != 1 {
		t.Fatalf("brew install ripgrep ran %d times, want 1", got)
	}
}

func TestModel_ResultsViewToggle(t *testing.T) {
	m := newTestModel(&fakeRunner{})

	// Nothing to show yet, the key is a no-op.
	m, _ = press(t, m, keyRune('v'))
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want modeNormal with no results", m.mode)
	}

	m.store.SetResults([]string{"rg"})
	m, _ = press(t, m, keyRune('v'))
	if m.mode != modeResults {
		t.Fatalf("mode = %v, want modeResults", m.mode)
	}
	m, _ = press(t, m, keyRune('v'))
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want modeNormal after toggling back", m.mode)
	}
}

func TestModel_ResultsEscapeLayersConfirmThenExit(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.store.SetResults([]string{"rg"})
	m.mode = modeResults

	m, _ = press(t, m, keyRune('i'))
	if !m.store.Confirm.Armed() {
		t.Fatalf("confirmation not armed in results mode")
	}
	m, _ = press(t, m, keyEsc)
	if m.store.Confirm.Armed() {
		t.Fatalf("confirmation survived escape")
	}
	if m.mode != modeResults {
		t.Fatalf("escape with an armed confirm left results mode")
	}
	m, _ = press(t, m, keyEsc)
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want modeNormal after second escape", m.mode)
	}
}

func TestModel_UpgradeAllFromOutdatedTab(t *testing.T) {
	f := &fakeRunner{responses: map[string]brew.Result{
		"brew upgrade": {Stdout: "Upgraded 2 packages", Success: true},
	}}
	m := newTestModel(f)
	m.store.SetLeaves([]string{"bat", "wget"}, t0)
	m.store.SetStatusSnapshot(brew.StatusSnapshot{
		OutdatedCount:    2,
		OutdatedPackages: []string{"bat", "wget"},
	}, t0)
	m.focus = focusStatus
	m.statusTab = tabOutdated

	m, cmd := press(t, m, keyRune('U'))
	if cmd != nil {
		t.Fatalf("first press dispatched, want arm only")
	}
	if !m.store.Confirm.UpgradeAllArmed() {
		t.Fatalf("upgrade-all not armed")
	}
	if got := m.store.StatusText; !strings.Contains(got, "Upgrade all 2 outdated packages?") {
		t.Fatalf("StatusText = %q, want the bulk prompt", got)
	}

	m, cmd = press(t, m, keyRune('U'))
	if cmd == nil {
		t.Fatalf("second press did not dispatch")
	}
	var done commandMsg
	found := false
	for _, msg := range runCmd(cmd) {
		if cm, ok := msg.(commandMsg); ok {
			done, found = cm, true
		}
	}
	if !found {
		t.Fatalf("no commandMsg came back")
	}
	if got := f.countOf("brew upgrade"); got != 1 {
		t.Fatalf("brew upgrade ran %d times, want 1", got)
	}

	res, _ := m.Update(done)
	m = res.(Model)
	toast := m.store.Toast
	if toast == nil || toast.Message != "Upgrade succeeded for outdated packages" {
		t.Fatalf("toast = %+v", toast)
	}
	if !m.store.PendingLeaves || !m.store.PendingStatus {
		t.Fatalf("bulk upgrade skipped refreshes: leaves %v status %v",
			m.store.PendingLeaves, m.store.PendingStatus)
	}
}

func TestModel_UpgradeAllNeedsOutdatedPackages(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.focus = focusStatus
	m.statusTab = tabOutdated

	m, cmd := press(t, m, keyRune('U'))
	if cmd != nil || m.store.Confirm.Armed() {
		t.Fatalf("upgrade-all armed without outdated packages")
	}
	if got := m.store.StatusText; got != "No outdated packages" {
		t.Fatalf("StatusText = %q", got)
	}
}

func TestModel_SelfUpdateConfirmation(t *testing.T) {
	f := &fakeRunner{}
	m := newTestModel(f)

	m, _ = press(t, m, keyRune('P'))
	if !m.store.Confirm.SelfUpdateArmed() {
		t.Fatalf("self-update not armed")
	}
	m, cmd := press(t, m, keyRune('P'))
	if cmd == nil {
		t.Fatalf("second press did not dispatch")
	}
	runCmd(cmd)
	if got := f.countOf("go install github.com/cellar-tui/cellar/cmd/cellar@latest"); got != 1 {
		t.Fatalf("go install ran %d times, want 1", got)
	}
}

func TestModel_PackageActionsNeedListFocus(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.store.SetLeaves([]string{"wget"}, t0)
	m.focus = focusSizes

	m, cmd := press(t, m, keyRune('i'))
	if cmd != nil || m.store.Confirm.Armed() {
		t.Fatalf("install armed while the list was unfocused")
	}
}

func TestModel_FocusCycleWraps(t *testing.T) {
	m := newTestModel(&fakeRunner{})

	order := []focusPanel{focusSizes, focusStatus, focusDetails, focusInstalled}
	for i, want := range order {
		m, _ = press(t, m, keyTab)
		if m.focus != want {
			t.Fatalf("tab %d: focus = %v, want %v", i+1, m.focus, want)
		}
	}
	m, _ = press(t, m, keyShiftTab)
	if m.focus != focusDetails {
		t.Fatalf("shift+tab: focus = %v, want focusDetails", m.focus)
	}
}

func TestModel_StatusTabCycle(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.focus = focusStatus

	m, _ = press(t, m, keyRight)
	if m.statusTab != tabIssues {
		t.Fatalf("statusTab = %v, want tabIssues", m.statusTab)
	}
	m, _ = press(t, m, keyRight)
	if m.statusTab != tabOutdated {
		t.Fatalf("statusTab = %v, want tabOutdated", m.statusTab)
	}
	m, _ = press(t, m, keyRight)
	if m.statusTab != tabActivity {
		t.Fatalf("statusTab = %v, want wrap to tabActivity", m.statusTab)
	}
	m, _ = press(t, m, keyLeft)
	if m.statusTab != tabOutdated {
		t.Fatalf("statusTab = %v, want tabOutdated after left", m.statusTab)
	}

	// Tab switching only applies while the status panel has focus.
	m.focus = focusInstalled
	m, _ = press(t, m, keyRight)
	if m.statusTab != tabOutdated {
		t.Fatalf("statusTab moved without focus: %v", m.statusTab)
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(&fakeRunner{})

	m, _ = press(t, m, keyRune('?'))
	if !m.showHelp {
		t.Fatalf("help did not open")
	}
	m, _ = press(t, m, keyRune('j'))
	if m.helpOffset != 1 {
		t.Fatalf("helpOffset = %d, want 1", m.helpOffset)
	}

	// While help is open other bindings must not fire.
	m, _ = press(t, m, keyRune('C'))
	if m.store.ActiveKind != state.KindFormula {
		t.Fatalf("kind toggled underneath the help overlay")
	}

	m, _ = press(t, m, keyEsc)
	if m.showHelp {
		t.Fatalf("help did not close")
	}
}

func TestModel_FullDetailsIsFormulaOnly(t *testing.T) {
	m := newTestModel(&fakeRunner{})
	m.store.SetCasks([]string{"firefox"})
	m.store.ActiveKind = state.KindCask
	m.store.RebuildIndices()

	m, cmd := press(t, m, keyRune('d'))
	if cmd != nil {
		t.Fatalf("deps/uses fetch dispatched for a cask")
	}
	if got := m.store.StatusText; got != "Deps/uses are formula-only" {
		t.Fatalf("StatusText = %q", got)
	}
}
