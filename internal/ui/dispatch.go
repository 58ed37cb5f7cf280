package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cellar-tui/cellar/internal/brew"
)

// Fetch messages. Each request family reports back with exactly one of
// these, carrying the payload and the originating request metadata.

type leavesMsg struct {
	names []string
	err   error
}

type casksMsg struct {
	names []string
	err   error
}

type detailsMsg struct {
	name    string
	load    brew.DetailsLoad
	details brew.Details
	err     error
}

type sizesMsg struct {
	entries []brew.SizeEntry
	err     error
}

type statusMsg struct {
	snap brew.StatusSnapshot
	err  error
}

type commandMsg struct {
	kind   brew.CommandKind
	target string
	isCask bool
	res    brew.Result
	err    error
}

// The request* methods are the only place fetches start. Each family
// has a single in-flight flag; a request while its family is busy is a
// silent no-op so the caller never has to check first.

func (m *Model) requestLeaves() tea.Cmd {
	if m.store.PendingLeaves {
		return nil
	}
	m.store.PendingLeaves = true
	m.store.SetStatus("Loading leaves...", time.Now())
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		names, err := client.Leaves(ctx)
		return leavesMsg{names: names, err: err}
	}
}

func (m *Model) requestCasks() tea.Cmd {
	if m.store.PendingCasks {
		return nil
	}
	m.store.PendingCasks = true
	m.store.SetStatus("Loading casks...", time.Now())
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		names, err := client.Casks(ctx)
		return casksMsg{names: names, err: err}
	}
}

// requestDetails starts a details fetch unless the cache already
// satisfies it. A basic load is satisfied by any cached record, a full
// load only by a record whose deps and uses sections are present.
// force bypasses the cache check so a refetch can replace stale
// version numbers after an upgrade.
func (m *Model) requestDetails(name string, load brew.DetailsLoad, force bool) tea.Cmd {
	if name == "" || m.store.PendingDetails {
		return nil
	}
	if !force {
		if det, ok := m.store.Cache.Get(name); ok {
			if load == brew.LoadBasic || det.FullyLoaded() {
				return nil
			}
		}
	}
	m.store.PendingDetails = true
	m.store.DetailsTarget = name
	if load == brew.LoadFull {
		m.store.SetStatus("Loading deps/uses...", time.Now())
	} else {
		m.store.SetStatus("Loading details...", time.Now())
	}
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		det, err := client.Details(ctx, name, load)
		return detailsMsg{name: name, load: load, details: det, err: err}
	}
}

func (m *Model) requestSizes() tea.Cmd {
	if m.store.PendingSizes {
		return nil
	}
	m.store.PendingSizes = true
	m.store.SetStatus("Loading sizes...", time.Now())
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		entries, err := client.Sizes(ctx)
		return sizesMsg{entries: entries, err: err}
	}
}

func (m *Model) requestStatus() tea.Cmd {
	if m.store.PendingStatus {
		return nil
	}
	m.store.PendingStatus = true
	m.store.SetStatus("Checking status...", time.Now())
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		snap, err := client.Status(ctx)
		return statusMsg{snap: snap, err: err}
	}
}

// requestCommand starts a mutating brew command. target and isCask
// ride along so the reducer can phrase the toast and decide which
// follow-up refreshes to dispatch.
func (m *Model) requestCommand(kind brew.CommandKind, target string, isCask bool, args []string) tea.Cmd {
	if m.store.PendingCommand {
		return nil
	}
	now := time.Now()
	m.store.BeginCommand(kind.String(), m.client.CommandLine(kind, args), target, now)
	if kind == brew.CommandSearch {
		m.store.SetStatus("Searching...", now)
	} else {
		m.store.SetStatus("Running "+kind.String()+"...", now)
	}
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		res, err := client.Command(ctx, kind, args)
		return commandMsg{kind: kind, target: target, isCask: isCask, res: res, err: err}
	}
}

// startCommand wraps requestCommand and kicks the spinner alongside
// the work.
func (m *Model) startCommand(kind brew.CommandKind, target string, isCask bool, args []string) tea.Cmd {
	cmd := m.requestCommand(kind, target, isCask, args)
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, m.spin.Tick)
}
