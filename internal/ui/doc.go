// Package ui renders the Cellar dashboard and owns its update loop.
//
// # Architecture Overview
//
// The dashboard is a Bubble Tea program. Model carries the view state
// (input mode, focused panel, scroll offsets, widgets) and a pointer to
// the state.Store that holds all package data. Every mutation happens
// inside Update on the program goroutine; fetches run in background
// goroutines started by the dispatchers and report back as typed
// messages.
//
// # Update Loop
//
// The loop is split across four files:
//
//   - dispatch.go starts fetches. Each request family (leaves, casks,
//     details, sizes, status, command) has one in-flight flag; a request
//     while its family is busy is a silent no-op.
//   - reduce.go folds fetch results into the store and returns whatever
//     follow-up fetches the outcome warrants, such as the list refresh
//     after a successful install.
//   - input_handlers.go routes key presses by input mode and implements
//     the two-step confirmation for destructive actions.
//   - debounce.go fetches details for the highlighted package once the
//     selection has settled for the debounce window.
//
// A periodic tick drives housekeeping: toast expiry, the status text
// reverting to Idle, and scroll burst decay. The tick runs at 80ms
// while a brew command is active and 1s otherwise.
//
// # Rendering
//
// View composes bordered lipgloss panels: search bar, installed list,
// and sizes on the left; tabbed status and details on the right, with
// a header and key legend framing them. Panels render from the store
// alone, so a render is always consistent with the latest reduced
// message. Themes come in amber light and dark variants; glyphs have
// nerd and plain ascii sets for terminals without font coverage.
//
// # Input Modes
//
// Keyboard handling is modal: normal browsing, filter (live narrowing
// of the installed list), search (a brew search query being typed), and
// results (navigating search results). The modes are a closed enum and
// exactly one is active at a time.
package ui
