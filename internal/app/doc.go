// Package app provides the orchestration layer for the Cellar
// application.
//
// # Overview
//
// This package wires together configuration, preferences, the brew
// gateway, and the UI to create the complete Cellar experience. It is
// the composition root where all dependencies are initialized and
// connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load Cellar configuration from ~/.config/cellar/config.toml
//  2. Acquire the single-instance lock under the cache directory
//  3. Load view preferences from ~/.config/cellar/prefs.toml
//  4. Create the brew gateway client around the configured executable
//  5. Create the state store all panels render from
//  6. Start the TUI and block until the user exits or context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read Cellar config
//	       ├─────> flock.TryLock()   One instance per user
//	       ├─────> prefs.Load()      Read view preferences
//	       ├─────> brew.NewClient()  Subprocess gateway
//	       ├─────> state.NewStore()  State container
//	       └─────> ui.Run()          Start TUI (blocks)
//
// Unlike daemon frontends there is no background poller here; all
// periodic work rides the UI's own tick so that every state mutation
// happens on the update loop.
//
// # Error Handling
//
// Run fails on configuration errors and when another instance already
// holds the lock. A broken or missing brew installation is not fatal at
// startup; the UI surfaces it through the status panel so the user sees
// what is wrong.
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("cellar failed: %v", err)
//	}
package app
