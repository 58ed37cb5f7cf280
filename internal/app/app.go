package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofrs/flock"

	"github.com/cellar-tui/cellar/internal/brew"
	"github.com/cellar-tui/cellar/internal/config"
	"github.com/cellar-tui/cellar/internal/prefs"
	"github.com/cellar-tui/cellar/internal/state"
	"github.com/cellar-tui/cellar/internal/ui"
)

// Version is stamped into the header and the --version output.
const Version = "0.1.0"

// Options configure the Cellar application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cellar/prefs.toml
	ForceASCII bool
}

// Run boots the Cellar TUI and blocks until the user exits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	_ = os.MkdirAll(cfg.CacheDir, 0o755)

	// One dashboard per user; concurrent brew invocations step on each
	// other's locks.
	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire process lock: %w", err)
	}
	if !locked {
		return errors.New("another instance is already running")
	}
	defer func() { _ = lock.Unlock() }()

	if config.Debug() {
		if f, err := tea.LogToFile(cfg.DebugLogPath(), "cellar"); err == nil {
			defer f.Close()
		}
	}

	// Preferences degrade to defaults on any problem.
	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client := brew.NewClient(cfg.BrewBin, nil)
	store := state.NewStore(time.Now())

	return ui.Run(ui.Options{
		Context:    ctx,
		Client:     client,
		Store:      store,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		Version:    Version,
		ForceASCII: opts.ForceASCII,
	})
}
