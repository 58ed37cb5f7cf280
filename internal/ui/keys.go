package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	Focus     key.Binding
	FocusPrev key.Binding
	TabPrev   key.Binding
	TabNext   key.Binding

	// Lists
	Refresh    key.Binding
	ToggleKind key.Binding
	Outdated   key.Binding
	Filter     key.Binding
	Results    key.Binding
	Search     key.Binding

	// Actions
	Install    key.Binding
	Uninstall  key.Binding
	Upgrade    key.Binding
	Cleanup    key.Binding
	Autoremove key.Binding
	BundleDump key.Binding
	SelfUpdate key.Binding

	// Data
	Details     key.Binding
	FullDetails key.Binding
	Sizes       key.Binding
	Health      key.Binding

	// Global
	Theme  key.Binding
	Icons  key.Binding
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "move up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "move down")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous panel")),
		TabPrev:   key.NewBinding(key.WithKeys("left", "l"), key.WithHelp("←/l", "previous status tab")),
		TabNext:   key.NewBinding(key.WithKeys("right", ";"), key.WithHelp("→/;", "next status tab")),

		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh lists")),
		ToggleKind: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "formulae/casks")),
		Outdated:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "outdated only")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter list")),
		Results:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "results view")),
		Search:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "search brew")),

		Install:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "install")),
		Uninstall:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "uninstall")),
		Upgrade:    key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "upgrade")),
		Cleanup:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cleanup")),
		Autoremove: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "autoremove")),
		BundleDump: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bundle dump")),
		SelfUpdate: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "update cellar")),

		Details:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load details")),
		FullDetails: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "deps and uses")),
		Sizes:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "disk sizes")),
		Health:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "status check")),

		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle theme")),
		Icons:  key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "toggle icons")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel/clear")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer legend.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Quit, k.Focus, k.Install, k.Uninstall, k.Upgrade,
		k.Outdated, k.Filter, k.Search, k.Help,
	}
}

// FullHelp returns all bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.FocusPrev, k.TabPrev, k.TabNext},
		{k.ToggleKind, k.Outdated, k.Filter, k.Results, k.Search},
		{k.Install, k.Uninstall, k.Upgrade, k.Cleanup, k.Autoremove, k.BundleDump, k.SelfUpdate},
		{k.Refresh, k.Details, k.FullDetails, k.Sizes, k.Health},
		{k.Theme, k.Icons, k.Help, k.Escape, k.Quit},
	}
}
