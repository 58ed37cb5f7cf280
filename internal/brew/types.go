package brew

import (
	"strings"
	"time"
)

// Result captures one finished subprocess: its output streams and whether
// it exited zero.
type Result struct {
	Stdout  string
	Stderr  string
	Success bool
}

// OutputLines returns the captured lines most useful for display: the
// primary stream for the outcome, falling back to the other when empty.
func (r Result) OutputLines() []string {
	primary, fallback := r.Stdout, r.Stderr
	if !r.Success {
		primary, fallback = r.Stderr, r.Stdout
	}
	lines := splitLines(primary)
	if len(lines) == 0 {
		lines = splitLines(fallback)
	}
	return lines
}

// ErrorLine returns the first non-empty stderr line, falling back to
// stdout, for surfacing a failure to the user.
func (r Result) ErrorLine() string {
	if line, ok := firstLine(r.Stderr); ok {
		return line
	}
	if line, ok := firstLine(r.Stdout); ok {
		return line
	}
	return ""
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func firstLine(s string) (string, bool) {
	lines := splitLines(s)
	if len(lines) == 0 {
		return "", false
	}
	return lines[0], true
}

// Details holds the cached metadata for one package. A nil Deps or Uses
// slice means that section has not been loaded yet; an empty non-nil slice
// means it was loaded and came back empty.
type Details struct {
	Description string
	Homepage    string
	Latest      string
	Installed   []string
	Deps        []string
	Uses        []string
}

// FullyLoaded reports whether both dependency sections have been fetched.
func (d Details) FullyLoaded() bool {
	return d.Deps != nil && d.Uses != nil
}

// DetailsLoad selects how much of a package's metadata to fetch.
type DetailsLoad int

const (
	// LoadBasic fetches description, homepage, and versions.
	LoadBasic DetailsLoad = iota
	// LoadFull additionally fetches dependencies and dependents.
	LoadFull
)

// SizeEntry is one row of the installed-footprint table.
type SizeEntry struct {
	Name   string
	SizeKB int64
}

// StatusSnapshot aggregates the system health probes the status panel shows.
type StatusSnapshot struct {
	BrewVersion      string
	BrewInfo         string
	DoctorOK         *bool
	DoctorIssues     []string
	OutdatedCount    int // -1 until known
	OutdatedPackages []string
	UpdateStatus     string
	UpdateAgo        time.Duration // negative until known
}

// CommandKind identifies which brew operation a command execution runs.
type CommandKind int

const (
	CommandInstall CommandKind = iota
	CommandUninstall
	CommandUpgrade
	CommandUpgradeAll
	CommandCleanup
	CommandAutoremove
	CommandBundleDump
	CommandSearch
	CommandSelfUpdate
)

// String returns the lowercase label used in status lines.
func (k CommandKind) String() string {
	switch k {
	case CommandInstall:
		return "install"
	case CommandUninstall:
		return "uninstall"
	case CommandUpgrade:
		return "upgrade"
	case CommandUpgradeAll:
		return "upgrade all"
	case CommandCleanup:
		return "cleanup"
	case CommandAutoremove:
		return "autoremove"
	case CommandBundleDump:
		return "bundle dump"
	case CommandSearch:
		return "search"
	case CommandSelfUpdate:
		return "self-update"
	default:
		return "command"
	}
}

// Verb returns the capitalized form used in prompts and toasts.
func (k CommandKind) Verb() string {
	switch k {
	case CommandInstall:
		return "Install"
	case CommandUninstall:
		return "Uninstall"
	case CommandUpgrade, CommandUpgradeAll:
		return "Upgrade"
	default:
		return ""
	}
}

// IsPackageAction reports whether the kind targets a single named package.
func (k CommandKind) IsPackageAction() bool {
	switch k {
	case CommandInstall, CommandUninstall, CommandUpgrade:
		return true
	default:
		return false
	}
}
