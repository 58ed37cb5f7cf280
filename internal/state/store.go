package state

import (
	"sort"
	"time"

	"github.com/cellar-tui/cellar/internal/brew"
)

const (
	// DebounceWindow is the quiet period after a selection change before an
	// automatic details fetch may fire.
	DebounceWindow = 300 * time.Millisecond
	// ToastTTL is how long a toast stays visible.
	ToastTTL = 5 * time.Second
	// IdleAfter is how long the status line keeps its last message before
	// reverting to "Idle".
	IdleAfter = 5 * time.Second
	// CompletionTTL is how long a finished package action lingers in the
	// activity panel.
	CompletionTTL = 3 * time.Second

	// rapidBurst is the selection-change count above which auto-fetch is
	// suppressed until the counter decays.
	rapidBurst = 2
)

// Store is the single mutable aggregate behind the UI. It is confined to
// the update goroutine and carries no locks; renderers read its fields
// directly and reducers mutate them between renders.
type Store struct {
	// Installed package lists, each sorted and replaced wholesale on
	// refresh, with the filter indices derived from them.
	Leaves     []string
	Casks      []string
	ActiveKind PackageKind
	LeafIndex  FilterIndex
	CaskIndex  FilterIndex

	// Filter controls shared by both installed lists.
	Query        string
	OutdatedOnly bool

	// Search results and their flat selection.
	Results        []string
	SelectedResult int

	// Details cache plus the display name of the in-flight fetch.
	Cache         Cache
	DetailsTarget string

	// In-flight flags, one per request family. A set flag makes further
	// requests of that family silent no-ops until its reducer runs.
	PendingLeaves  bool
	PendingCasks   bool
	PendingDetails bool
	PendingSizes   bool
	PendingStatus  bool
	PendingCommand bool

	// Running-command metadata for the activity panel.
	CommandLabel   string
	CommandLine    string
	CommandTarget  string
	CommandStarted time.Time
	CommandOutput  []string
	LastCommandErr string
	LastCompleted  Completion

	// Fetched system data and refresh stamps.
	Status     brew.StatusSnapshot
	HasStatus  bool
	Sizes      []brew.SizeEntry
	ListError  string
	LastLeaves time.Time
	LastSizes  time.Time
	LastStatus time.Time

	// Status line and toast.
	StatusText  string
	StatusSetAt time.Time
	Toast       *Toast

	// Confirmation gate for mutating actions.
	Confirm Confirmation

	// Auto-fetch bookkeeping: last selection-change stamp, the burst
	// counter it feeds, and the last auto-fetched target per context.
	LastSelChange     time.Time
	SelBurst          int
	LastAutoInstalled string
	LastAutoResult    string

	StartedAt time.Time

	outdated map[string]bool
}

// NewStore returns a store with empty lists, an empty cache, and the
// status line at "Ready".
func NewStore(now time.Time) *Store {
	return &Store{
		LeafIndex:      NewFilterIndex(),
		CaskIndex:      NewFilterIndex(),
		SelectedResult: -1,
		Cache:          NewCache(DefaultCacheSize),
		Status:         brew.StatusSnapshot{OutdatedCount: -1, UpdateAgo: -1},
		StatusText:     "Ready",
		StatusSetAt:    now,
		StartedAt:      now,
	}
}

// SetStatus replaces the status line and stamps it for idle reversion.
func (s *Store) SetStatus(text string, now time.Time) {
	s.StatusText = text
	s.StatusSetAt = now
}

// ShowToast replaces any current toast.
func (s *Store) ShowToast(level ToastLevel, message string, now time.Time) {
	s.Toast = &Toast{Level: level, Message: message, CreatedAt: now}
}

// Housekeep runs the periodic time-based transitions: toast expiry, idle
// status reversion, and decay of the rapid-scroll burst counter.
func (s *Store) Housekeep(now time.Time) {
	if s.Toast != nil && now.Sub(s.Toast.CreatedAt) > ToastTTL {
		s.Toast = nil
	}
	if s.StatusText != "Idle" && now.Sub(s.StatusSetAt) >= IdleAfter {
		s.StatusText = "Idle"
	}
	if s.SelBurst > 0 && now.Sub(s.LastSelChange) >= DebounceWindow {
		s.SelBurst = 0
	}
}

// NoteSelectionChange stamps a selection movement and bumps the burst
// counter that detects rapid scrolling.
func (s *Store) NoteSelectionChange(now time.Time) {
	s.LastSelChange = now
	s.SelBurst++
}

// RapidScrolling reports whether enough selection changes piled up inside
// the debounce window to suppress auto-fetching.
func (s *Store) RapidScrolling() bool {
	return s.SelBurst > rapidBurst
}

// DebounceElapsed reports whether the quiet period since the last selection
// change has passed.
func (s *Store) DebounceElapsed(now time.Time) bool {
	return now.Sub(s.LastSelChange) >= DebounceWindow
}

// Uptime returns how long the dashboard has been running.
func (s *Store) Uptime(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// SetLeaves replaces the formulae list, sorted, and rebuilds its index.
func (s *Store) SetLeaves(names []string, now time.Time) {
	sort.Strings(names)
	s.Leaves = names
	s.LastLeaves = now
	s.RebuildIndices()
}

// SetCasks replaces the cask list, sorted, and rebuilds its index.
func (s *Store) SetCasks(names []string) {
	sort.Strings(names)
	s.Casks = names
	s.RebuildIndices()
}

// SetSizes replaces the footprint table.
func (s *Store) SetSizes(entries []brew.SizeEntry, now time.Time) {
	s.Sizes = entries
	s.LastSizes = now
}

// SizeOf returns a package's installed footprint when known.
func (s *Store) SizeOf(name string) (int64, bool) {
	for _, e := range s.Sizes {
		if e.Name == name {
			return e.SizeKB, true
		}
	}
	return 0, false
}

// SetStatusSnapshot replaces the status snapshot and rebuilds the filter
// indices, since the outdated set feeds the outdated-only predicate.
func (s *Store) SetStatusSnapshot(snap brew.StatusSnapshot, now time.Time) {
	s.Status = snap
	s.HasStatus = true
	s.LastStatus = now
	s.outdated = make(map[string]bool, len(snap.OutdatedPackages))
	for _, name := range snap.OutdatedPackages {
		s.outdated[name] = true
	}
	s.RebuildIndices()
}

// IsOutdated reports whether the last status check listed name as outdated.
func (s *Store) IsOutdated(name string) bool {
	return s.outdated[name]
}

// RebuildIndices recomputes both installed-list indices from the current
// query and outdated-only predicate, reconciling each selection.
func (s *Store) RebuildIndices() {
	var keep func(string) bool
	if s.OutdatedOnly {
		keep = s.IsOutdated
	}
	s.LeafIndex.Rebuild(s.Leaves, s.Query, keep)
	s.CaskIndex.Rebuild(s.Casks, s.Query, nil)
}

// ActiveIndex returns the filter index for the active kind.
func (s *Store) ActiveIndex() *FilterIndex {
	if s.ActiveKind == KindCask {
		return &s.CaskIndex
	}
	return &s.LeafIndex
}

// ActiveList returns the installed list for the active kind.
func (s *Store) ActiveList() []string {
	if s.ActiveKind == KindCask {
		return s.Casks
	}
	return s.Leaves
}

// SelectedInstalled returns the selected package in the active list.
func (s *Store) SelectedInstalled() (string, bool) {
	return s.ActiveIndex().Current(s.ActiveList())
}

// SetResults replaces the search results, resets the result selection to
// the first entry, and re-arms the results auto-fetch.
func (s *Store) SetResults(names []string) {
	s.Results = names
	if len(names) == 0 {
		s.SelectedResult = -1
	} else {
		s.SelectedResult = 0
	}
	s.LastAutoResult = ""
}

// MoveResult steps the result selection, clamping at both ends. Every
// move re-arms the results auto-fetch, including moves clamped in place.
func (s *Store) MoveResult(delta int) {
	if len(s.Results) == 0 {
		s.SelectedResult = -1
		return
	}
	s.LastAutoResult = ""
	pos := s.SelectedResult
	if pos < 0 {
		s.SelectedResult = 0
		return
	}
	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.Results)-1 {
		pos = len(s.Results) - 1
	}
	s.SelectedResult = pos
}

// SelectedResultName returns the selected search result.
func (s *Store) SelectedResultName() (string, bool) {
	if s.SelectedResult < 0 || s.SelectedResult >= len(s.Results) {
		return "", false
	}
	return s.Results[s.SelectedResult], true
}

// BeginCommand records the metadata for a dispatched brew command.
func (s *Store) BeginCommand(label, line, target string, now time.Time) {
	s.PendingCommand = true
	s.CommandLabel = label
	s.CommandLine = line
	s.CommandTarget = target
	s.CommandStarted = now
	s.CommandOutput = nil
}

// FinishCommand clears the command flag and stores the captured output and
// error text for the activity panel.
func (s *Store) FinishCommand(output []string, errText string) {
	s.PendingCommand = false
	s.CommandOutput = output
	s.LastCommandErr = errText
}

// RecordCompletion remembers a finished package action for brief display.
func (s *Store) RecordCompletion(label, target string, now time.Time) {
	s.LastCompleted = Completion{Label: label, Target: target, At: now}
}

// RecentCompletion returns the last completion while it is fresh enough to
// show in the activity panel.
func (s *Store) RecentCompletion(now time.Time) (Completion, bool) {
	if s.LastCompleted.At.IsZero() || now.Sub(s.LastCompleted.At) > CompletionTTL {
		return Completion{}, false
	}
	return s.LastCompleted, true
}
