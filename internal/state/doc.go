// Package state implements the single mutable aggregate behind the Cellar UI
// and the pure data structures it is built from.
//
// # Overview
//
// Cellar renders everything from one Store value: the installed package
// lists, the filter indices over them, the bounded details cache, the
// pending confirmation, the per-family in-flight flags, the status line,
// the transient toast, and the selection bookkeeping that drives the
// debounced detail fetch. The Store is the model behind the event loop;
// there is no second copy of any of this data anywhere else.
//
// # Concurrency Model
//
// The Store carries no locks. It is confined to the Bubble Tea update
// goroutine:
//
//	Background fetch:              Update goroutine:
//	┌─────────────────┐           ┌──────────────────────┐
//	│ brew leaves ... │           │ reducer mutates Store │
//	│       ↓         │──(msg)───→│        ↓              │
//	│ post message    │           │ render from Store     │
//	└─────────────────┘           └──────────────────────┘
//
// Fetch goroutines never see the Store. They return typed messages, and
// the reducers in the ui package fold those results in between renders.
// Sequential message application is the whole synchronization story, so
// every transition here is a plain method on a plain struct.
//
// # Core Types
//
// Store:
//   - Aggregate of all displayed and mutated state
//   - In-flight flags, one boolean per request family
//   - Housekeeping for toast expiry, idle reversion, and burst decay
//
// Cache:
//   - Bounded LRU over package details (64 entries)
//   - Peek for rendering, Get for dispatch checks, Put with overlay merge
//
// FilterIndex:
//   - Visible subsequence of a base list under a substring filter
//   - Selection reconciliation when the visible set changes
//
// Confirmation:
//   - Two-step gate in front of every mutating command
//   - Exactly one pending flavor at a time
//
// # Time Handling
//
// Methods that depend on the clock (Housekeep, NoteSelectionChange,
// ShowToast, and friends) take an explicit time.Time instead of calling
// time.Now. The event loop passes the tick timestamp; tests pass
// fabricated instants and step them forward to exercise expiry windows
// without sleeping.
//
// # Design Rationale
//
// This package intentionally avoids:
//   - Mutexes (single-goroutine confinement makes them dead weight)
//   - Callbacks or observers (the loop repaints after every message)
//   - Persistence (state is rebuilt from brew on every launch)
//
// The design prioritizes:
//   - Transitions as ordinary methods that tests can call directly
//   - Explicit time parameters over hidden clock reads
//   - One owner for every piece of displayed data
package state
