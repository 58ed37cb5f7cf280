package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cellar-tui/cellar/internal/brew"
	"github.com/cellar-tui/cellar/internal/prefs"
	"github.com/cellar-tui/cellar/internal/state"
)

const (
	// activeTick drives the spinner and the elapsed counter while a
	// brew command runs. idleTick keeps housekeeping cheap otherwise.
	activeTick = 80 * time.Millisecond
	idleTick   = time.Second
)

// inputMode tracks which keyboard mode the dashboard is in. The modes
// are mutually exclusive. modeResults keeps navigation on the search
// results after the query input is dismissed.
type inputMode int

const (
	modeNormal inputMode = iota
	modeFilter
	modeSearch
	modeResults
)

// focusPanel identifies the panel receiving navigation keys.
type focusPanel int

const (
	focusInstalled focusPanel = iota
	focusSizes
	focusStatus
	focusDetails
	focusCount
)

func (p focusPanel) label() string {
	switch p {
	case focusSizes:
		return "Sizes"
	case focusStatus:
		return "Status"
	case focusDetails:
		return "Details"
	default:
		return "Installed"
	}
}

// statusTab identifies the visible tab of the status panel.
type statusTab int

const (
	tabActivity statusTab = iota
	tabIssues
	tabOutdated
	tabCount
)

func (t statusTab) title() string {
	switch t {
	case tabIssues:
		return "Issues"
	case tabOutdated:
		return "Outdated"
	default:
		return "Activity"
	}
}

// Options configures the dashboard.
type Options struct {
	Context    context.Context
	Client     *brew.Client
	Store      *state.Store
	Prefs      prefs.Prefs
	PrefsPath  string
	Version    string
	ForceASCII bool
}

// Model is the Bubble Tea model for the dashboard. All state mutation
// happens on the update loop; fetch goroutines only report back
// through messages.
type Model struct {
	ctx       context.Context
	client    *brew.Client
	store     *state.Store
	prefsPath string
	version   string

	theme     Theme
	themeMode ThemeMode
	icons     IconSet
	keys      keyMap

	mode      inputMode
	focus     focusPanel
	statusTab statusTab
	showHelp  bool
	ready     bool
	width     int
	height    int

	input      textinput.Model
	spin       spinner.Model
	detailView viewport.Model

	listOffset   int
	sizesOffset  int
	statusOffset int
	helpOffset   int

	// detailFor is the package the details viewport currently shows,
	// used to reset scroll only when the target changes.
	detailFor string

	// debounceTag invalidates stale debounce timers. Only the timer
	// carrying the latest tag may trigger an auto-fetch.
	debounceTag int
}

// New creates the dashboard model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	st := opts.Store
	if st == nil {
		st = state.NewStore(time.Now())
	}
	client := opts.Client
	if client == nil {
		client = brew.NewClient("", nil)
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	icons := IconsByName(opts.Prefs.Icons)
	if opts.ForceASCII {
		icons = ASCIIIcons()
	}
	themeMode := ParseThemeMode(opts.Prefs.Theme)
	theme := ResolveTheme(themeMode)
	if opts.Prefs.Kind == state.KindCask.String() {
		st.ActiveKind = state.KindCask
	}

	input := textinput.New()
	input.Placeholder = "type to filter..."
	input.CharLimit = 80
	input.Prompt = ""

	spin := spinner.New()
	spin.Spinner = icons.Spinner
	spin.Style = theme.Styles().AccentAlt

	return Model{
		ctx:       ctx,
		client:    client,
		store:     st,
		prefsPath: opts.PrefsPath,
		version:   version,
		theme:     theme,
		themeMode: themeMode,
		icons:     icons,
		keys:      DefaultKeyMap(),
		input:     input,
		spin:      spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(idleTick),
		func() tea.Msg { return startMsg{} },
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case startMsg:
		return m, tea.Batch(collect(m.requestLeaves(), m.requestStatus(), m.requestSizes())...)

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case debounceMsg:
		if msg.tag != m.debounceTag {
			return m, nil
		}
		return m, m.maybeAutoFetch(time.Now())

	case spinner.TickMsg:
		if !m.store.PendingCommand {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case leavesMsg:
		m.applyLeaves(msg)
		return m, nil

	case casksMsg:
		m.applyCasks(msg)
		return m, nil

	case detailsMsg:
		m.applyDetails(msg)
		return m, nil

	case sizesMsg:
		m.applySizes(msg)
		return m, nil

	case statusMsg:
		m.applyStatus(msg)
		return m, nil

	case commandMsg:
		return m, tea.Batch(m.applyCommand(msg)...)
	}
	return m, nil
}

// handleTick runs housekeeping, retries any auto-fetch that was
// suppressed while scrolling, and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.store.Housekeep(now)
	cmds := []tea.Cmd{tickCmd(m.tickInterval())}
	if cmd := m.maybeAutoFetch(now); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) tickInterval() time.Duration {
	if m.store.PendingCommand {
		return activeTick
	}
	return idleTick
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// resize recomputes widget dimensions from the window size.
func (m *Model) resize() {
	w, h := m.detailSize()
	if m.ready {
		m.detailView.Width = w
		m.detailView.Height = h
	} else {
		m.detailView = viewport.New(w, h)
	}
	m.input.Width = max(10, m.leftWidth()-6)
	m.syncListViews()
}

// savePrefs persists the current view preferences. Failures are
// ignored; preferences are a convenience, not state.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme: m.themeMode.String(),
		Icons: m.icons.Name,
		Kind:  m.store.ActiveKind.String(),
	})
}

// Messages

// tickMsg drives housekeeping and the elapsed counter.
type tickMsg time.Time

// startMsg fires once at startup to dispatch the initial fetches.
type startMsg struct{}

// debounceMsg fires when a selection has settled for the debounce
// window.
type debounceMsg struct {
	tag int
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collect filters out nil commands.
func collect(cmds ...tea.Cmd) []tea.Cmd {
	out := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Run starts the dashboard and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
