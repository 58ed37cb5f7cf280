package state

import "github.com/cellar-tui/cellar/internal/brew"

// ConfirmFlavor names which confirmation flow is armed. At most one flavor
// is armed at a time; arming any flavor clears the others.
type ConfirmFlavor int

const (
	ConfirmNone ConfirmFlavor = iota
	ConfirmPackage
	ConfirmUpgradeAll
	ConfirmSelfUpdate
)

// Confirmation is the two-step gate in front of mutating commands. A first
// request arms it; only an exactly matching second request executes. Any
// cancel, selection move, or filter change clears it back to safe.
type Confirmation struct {
	Flavor ConfirmFlavor

	// Set only while Flavor == ConfirmPackage.
	Action brew.CommandKind
	Kind   PackageKind
	Target string
}

// Armed reports whether any flavor is awaiting its second keypress.
func (c *Confirmation) Armed() bool {
	return c.Flavor != ConfirmNone
}

// Clear disarms every flavor.
func (c *Confirmation) Clear() {
	*c = Confirmation{}
}

// ArmPackage arms a single-package action, replacing whatever was armed.
func (c *Confirmation) ArmPackage(action brew.CommandKind, kind PackageKind, target string) {
	*c = Confirmation{
		Flavor: ConfirmPackage,
		Action: action,
		Kind:   kind,
		Target: target,
	}
}

// Matches reports whether the armed confirmation is exactly this package
// action. Only a match may execute; anything else re-arms.
func (c *Confirmation) Matches(action brew.CommandKind, kind PackageKind, target string) bool {
	return c.Flavor == ConfirmPackage &&
		c.Action == action &&
		c.Kind == kind &&
		c.Target == target
}

// ArmUpgradeAll arms the bulk-upgrade flow, replacing whatever was armed.
func (c *Confirmation) ArmUpgradeAll() {
	*c = Confirmation{Flavor: ConfirmUpgradeAll}
}

// UpgradeAllArmed reports whether the bulk-upgrade flow awaits confirmation.
func (c *Confirmation) UpgradeAllArmed() bool {
	return c.Flavor == ConfirmUpgradeAll
}

// ArmSelfUpdate arms the self-update flow, replacing whatever was armed.
func (c *Confirmation) ArmSelfUpdate() {
	*c = Confirmation{Flavor: ConfirmSelfUpdate}
}

// SelfUpdateArmed reports whether the self-update flow awaits confirmation.
func (c *Confirmation) SelfUpdateArmed() bool {
	return c.Flavor == ConfirmSelfUpdate
}
