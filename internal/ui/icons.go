package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
)

// IconSet holds the glyphs the dashboard renders with. The nerd set
// uses Unicode symbols, the ascii set sticks to plain characters for
// terminals without good font coverage.
type IconSet struct {
	Name      string
	Selection string // marker in front of the selected row
	Outdated  string // marker in front of outdated packages
	Bullet    string // list bullet in the details panel
	Spinner   spinner.Spinner
}

// NerdIcons returns the Unicode glyph set.
func NerdIcons() IconSet {
	return IconSet{
		Name:      "nerd",
		Selection: "▌",
		Outdated:  "↑ ",
		Bullet:    "•",
		Spinner:   spinner.MiniDot,
	}
}

// ASCIIIcons returns the plain-character glyph set.
func ASCIIIcons() IconSet {
	return IconSet{
		Name:      "ascii",
		Selection: ">",
		Outdated:  "^ ",
		Bullet:    "*",
		Spinner:   spinner.Line,
	}
}

// DetectIcons picks a glyph set from the environment. CELLAR_ASCII=1
// forces ascii, as do the linux and dumb TERM values.
func DetectIcons() IconSet {
	if os.Getenv("CELLAR_ASCII") == "1" {
		return ASCIIIcons()
	}
	switch os.Getenv("TERM") {
	case "linux", "dumb":
		return ASCIIIcons()
	}
	return NerdIcons()
}

// ToggleIcons switches between the two glyph sets.
func ToggleIcons(s IconSet) IconSet {
	if s.Name == "ascii" {
		return NerdIcons()
	}
	return ASCIIIcons()
}

// IconsByName resolves a preference value, falling back to detection
// for unknown names.
func IconsByName(name string) IconSet {
	switch name {
	case "nerd":
		return NerdIcons()
	case "ascii":
		return ASCIIIcons()
	default:
		return DetectIcons()
	}
}
