// Package brew is the external command gateway: it launches brew (and a
// couple of auxiliary tools) as subprocesses and parses their output into
// typed data.
//
// # Overview
//
// Every interaction Cellar has with the system goes through this package:
// listing installed packages, fetching per-package metadata, measuring
// installed footprints, probing overall health, and running the mutating
// commands the user confirms. Each fetcher is one function call with no
// shared state; the ui layer guarantees at most one call per operation
// family is in flight.
//
// # Architecture
//
// The package is split into three files:
//
//   - runner.go: the Runner interface and the os/exec implementation
//   - client.go: fetchers, parsers, and command execution
//   - types.go: result, details, size, and status structures
//
// # Subprocess Model
//
// Runner.Run captures stdout and stderr and reports the exit status in the
// Result, reserving the error value for spawn failures (binary missing,
// fork errors). Callers therefore see three outcomes:
//
//   - err != nil: the process never ran
//   - Result.Success == false: it ran and exited non-zero
//   - Result.Success == true: it ran clean
//
// Context cancellation kills the child. Only process shutdown cancels; a
// fetch that outlives the user's interest still runs to completion and its
// result is merged or ignored upstream.
//
// # Fetchers
//
//	client := brew.NewClient("", nil)
//
//	leaves, err := client.Leaves(ctx)          // brew leaves
//	casks, err := client.Casks(ctx)            // brew list --cask
//	det, err := client.Details(ctx, "wget", brew.LoadFull)
//	sizes, err := client.Sizes(ctx)            // brew --cellar + du -sk
//	snap, err := client.Status(ctx)            // parallel health probes
//	res, err := client.Command(ctx, brew.CommandInstall, []string{"install", "wget"})
//
// The status probes (version, info, leaves, doctor, repository paths) run
// concurrently; individual probe failures degrade to "unknown" fields
// rather than failing the snapshot. Update recency comes from the mtime of
// .git/FETCH_HEAD under the brew repositories, without shelling out to git.
//
// # Error Handling
//
// Failed commands surface the first non-empty stderr line, falling back to
// stdout, falling back to a short generic message. Parse failures wrap the
// underlying error with the package name. Nothing here panics on malformed
// output; a bad line is skipped, a bad document is an error return.
//
// # Testing Considerations
//
// Substitute the Runner with a fake keyed by the joined command line to
// exercise the parsers and assembly logic without spawning processes. The
// du and FETCH_HEAD paths work against t.TempDir fixtures.
package brew
