package state

import "time"

// PackageKind distinguishes the two installed-package lists.
type PackageKind int

const (
	KindFormula PackageKind = iota
	KindCask
)

// String returns the kind as it appears in prompts and brew arguments.
func (k PackageKind) String() string {
	if k == KindCask {
		return "cask"
	}
	return "formula"
}

// ToastLevel selects the toast's styling.
type ToastLevel int

const (
	ToastSuccess ToastLevel = iota
	ToastError
)

// Toast is a transient notification. It expires via time comparison during
// housekeeping, never via a timer callback.
type Toast struct {
	Level     ToastLevel
	Message   string
	CreatedAt time.Time
}

// Completion remembers the most recently finished package action so the
// activity panel can show it briefly after the spinner disappears.
type Completion struct {
	Label  string
	Target string
	At     time.Time
}
