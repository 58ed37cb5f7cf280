package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cellar-tui/cellar/internal/brew"
	"github.com/cellar-tui/cellar/internal/state"
)

// maxCommandOutputLines caps how much command output the activity tab
// retains.
const maxCommandOutputLines = 8

// The apply* methods fold fetch results into the store. Each clears
// its family's in-flight flag first, success or not, so the family can
// accept new requests.

func (m *Model) applyLeaves(msg leavesMsg) {
	now := time.Now()
	m.store.PendingLeaves = false
	if msg.err != nil {
		m.store.ListError = msg.err.Error()
		m.store.SetStatus("Failed to refresh", now)
		return
	}
	m.store.ListError = ""
	m.store.SetLeaves(msg.names, now)
	m.store.SetStatus("Leaves updated", now)
	m.syncListViews()
}

func (m *Model) applyCasks(msg casksMsg) {
	now := time.Now()
	m.store.PendingCasks = false
	if msg.err != nil {
		m.store.ListError = msg.err.Error()
		m.store.SetStatus("Failed to refresh", now)
		return
	}
	m.store.ListError = ""
	m.store.SetCasks(msg.names)
	m.store.SetStatus("Casks updated", now)
	m.syncListViews()
}

func (m *Model) applyDetails(msg detailsMsg) {
	now := time.Now()
	m.store.PendingDetails = false
	m.store.DetailsTarget = ""
	if msg.err != nil {
		m.store.SetStatus("Details failed", now)
		return
	}
	m.store.Cache.Put(msg.name, msg.details)
	if msg.load == brew.LoadFull {
		m.store.SetStatus("Deps/uses loaded", now)
	} else {
		m.store.SetStatus("Details loaded", now)
	}
	m.updateDetailContent()
}

func (m *Model) applySizes(msg sizesMsg) {
	now := time.Now()
	m.store.PendingSizes = false
	if msg.err != nil {
		m.store.SetStatus("Sizes failed", now)
		return
	}
	m.store.SetSizes(msg.entries, now)
	m.store.SetStatus("Sizes updated", now)
	m.sizesOffset = 0
	m.updateDetailContent()
}

func (m *Model) applyStatus(msg statusMsg) {
	now := time.Now()
	m.store.PendingStatus = false
	if msg.err != nil {
		m.store.SetStatus("Status check failed", now)
		m.store.ShowToast(state.ToastError, msg.err.Error(), now)
		return
	}
	m.store.SetStatusSnapshot(msg.snap, now)
	m.store.SetStatus("Status check complete", now)
	m.syncListViews()
}

// applyCommand folds a finished brew command into the store and
// returns the follow-up fetches its outcome warrants.
func (m *Model) applyCommand(msg commandMsg) []tea.Cmd {
	now := time.Now()
	success := msg.err == nil && msg.res.Success

	output := msg.res.OutputLines()
	if len(output) > maxCommandOutputLines {
		output = output[:maxCommandOutputLines]
	}
	errText := ""
	if !success {
		errText = commandFailure(msg)
	}
	m.store.FinishCommand(output, errText)

	if msg.kind == brew.CommandSearch {
		m.applySearch(msg, success, now)
		return nil
	}

	if !success {
		m.store.SetStatus(msg.kind.String()+" failed", now)
		m.store.ShowToast(state.ToastError, failureToast(msg, errText), now)
		return nil
	}

	m.store.SetStatus(msg.kind.String()+" complete", now)
	switch {
	case msg.kind.IsPackageAction():
		m.store.ShowToast(state.ToastSuccess, msg.kind.Verb()+" succeeded for "+msg.target, now)
		m.store.RecordCompletion(msg.kind.Verb(), msg.target, now)
	case msg.kind == brew.CommandUpgradeAll:
		m.store.ShowToast(state.ToastSuccess, "Upgrade succeeded for outdated packages", now)
	case msg.kind == brew.CommandSelfUpdate:
		m.store.ShowToast(state.ToastSuccess, "Cellar updated. Restart to use the new version", now)
	default:
		m.store.ShowToast(state.ToastSuccess, msg.kind.String()+" finished", now)
	}

	var cmds []tea.Cmd
	if msg.kind.IsPackageAction() || msg.kind == brew.CommandUpgradeAll {
		cmds = append(cmds, collect(m.requestLeaves(), m.requestStatus())...)
		if msg.isCask {
			cmds = append(cmds, collect(m.requestCasks())...)
		}
	}
	if msg.kind == brew.CommandUpgrade && msg.target != "" {
		// The cached record still carries the pre-upgrade version.
		cmds = append(cmds, collect(m.requestDetails(msg.target, brew.LoadBasic, true))...)
	}
	return cmds
}

// applySearch folds a finished brew search into the results list and
// switches the view over to it.
func (m *Model) applySearch(msg commandMsg, success bool, now time.Time) {
	if !success {
		m.store.SetResults(nil)
		m.store.SetStatus("Search failed", now)
		m.store.ShowToast(state.ToastError, failureToast(msg, commandFailure(msg)), now)
		return
	}
	names := brew.ParseSearchResults(msg.res.Stdout)
	m.store.SetResults(names)
	m.mode = modeResults
	m.input.Blur()
	m.listOffset = 0
	if len(names) == 0 {
		m.store.SetStatus("No results found", now)
	} else {
		m.store.SetStatus(fmt.Sprintf("%d results", len(names)), now)
	}
	m.updateDetailContent()
}

// commandFailure mines the most useful single line out of a failed
// command.
func commandFailure(msg commandMsg) string {
	if line := msg.res.ErrorLine(); line != "" {
		return line
	}
	if msg.err != nil {
		return msg.err.Error()
	}
	return "Unknown error"
}

// failureToast phrases the error toast for a failed command.
func failureToast(msg commandMsg, reason string) string {
	var text string
	switch {
	case msg.kind.IsPackageAction():
		text = msg.kind.Verb() + " failed for " + msg.target
	case msg.kind == brew.CommandUpgradeAll:
		text = "Upgrade failed for outdated packages"
	case msg.kind == brew.CommandSelfUpdate:
		text = "Self-update failed"
	case msg.kind == brew.CommandSearch:
		text = "Search failed"
	default:
		text = msg.kind.String() + " failed"
	}
	if reason != "" {
		text += ": " + reason
	}
	return text
}
