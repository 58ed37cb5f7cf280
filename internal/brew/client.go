package brew

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultBrewBin  = "brew"
	defaultGoBin    = "go"
	maxDoctorIssues = 5
	staleUpdateAge  = 24 * time.Hour
)

// SelfUpdateArgs is the go invocation that reinstalls the dashboard.
var SelfUpdateArgs = []string{"install", "github.com/cellar-tui/cellar/cmd/cellar@latest"}

// Client invokes brew and interprets its output. Every fetcher is an
// independent operation with no shared state; the ui layer serializes
// them per family through its in-flight flags.
type Client struct {
	runner  Runner
	brewBin string
	goBin   string
}

// NewClient builds a Client around the given brew binary. An empty binary
// falls back to "brew" from PATH; a nil runner falls back to real
// subprocess execution.
func NewClient(brewBin string, runner Runner) *Client {
	if strings.TrimSpace(brewBin) == "" {
		brewBin = defaultBrewBin
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{runner: runner, brewBin: brewBin, goBin: defaultGoBin}
}

// Leaves lists installed formulae that nothing else depends on.
func (c *Client) Leaves(ctx context.Context) ([]string, error) {
	return c.runLines(ctx, "brew leaves failed", "leaves")
}

// Casks lists installed casks.
func (c *Client) Casks(ctx context.Context) ([]string, error) {
	return c.runLines(ctx, "brew list --cask failed", "list", "--cask")
}

// Details fetches metadata for one package. LoadFull additionally fetches
// the dependency sections, concurrently, and marks them loaded even when
// empty.
func (c *Client) Details(ctx context.Context, name string, load DetailsLoad) (Details, error) {
	det, err := c.basicDetails(ctx, name)
	if err != nil {
		return Details{}, err
	}
	if load == LoadBasic {
		return det, nil
	}

	var deps, uses []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deps, err = c.runLines(gctx, "brew deps failed", "deps", "--installed", name)
		return err
	})
	g.Go(func() error {
		var err error
		uses, err = c.runLines(gctx, "brew uses failed", "uses", "--installed", name)
		return err
	})
	if err := g.Wait(); err != nil {
		return Details{}, err
	}
	det.Deps = nonNil(deps)
	det.Uses = nonNil(uses)
	return det, nil
}

func (c *Client) basicDetails(ctx context.Context, name string) (Details, error) {
	res, err := c.runner.Run(ctx, c.brewBin, "info", "--json=v2", name)
	if err != nil {
		return Details{}, fmt.Errorf("brew info %s: %w", name, err)
	}
	if !res.Success {
		return Details{}, errors.New(failureLine(res, "brew info failed for "+name))
	}
	return parseInfo(res.Stdout, name)
}

// Sizes measures each installed keg under the cellar with du, sorted by
// footprint, largest first.
func (c *Client) Sizes(ctx context.Context) ([]SizeEntry, error) {
	lines, err := c.runLines(ctx, "brew --cellar failed", "--cellar")
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("brew --cellar returned nothing")
	}
	root := lines[0]

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read cellar: %w", err)
	}
	args := []string{"-sk"}
	for _, e := range dirEntries {
		if e.IsDir() {
			args = append(args, filepath.Join(root, e.Name()))
		}
	}
	if len(args) == 1 {
		return []SizeEntry{}, nil
	}

	res, err := c.runner.Run(ctx, "du", args...)
	if err != nil {
		return nil, fmt.Errorf("du failed: %w", err)
	}
	entries := parseDuOutput(res.Stdout)
	if len(entries) == 0 && !res.Success {
		return nil, errors.New(failureLine(res, "du failed"))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].SizeKB > entries[j].SizeKB })
	return entries, nil
}

// Status probes brew's overall health. The independent probes run
// concurrently and individual failures degrade to unknowns rather than
// failing the snapshot; the whole call errors only when brew itself is
// unreachable.
func (c *Client) Status(ctx context.Context) (StatusSnapshot, error) {
	var version, info, leaves, doctor, repoMain, repoCore Result
	var versionErr, infoErr, leavesErr, doctorErr, repoMainErr, repoCoreErr error

	g, gctx := errgroup.WithContext(ctx)
	probe := func(dst *Result, dstErr *error, args ...string) {
		g.Go(func() error {
			*dst, *dstErr = c.runner.Run(gctx, c.brewBin, args...)
			return nil
		})
	}
	probe(&version, &versionErr, "--version")
	probe(&info, &infoErr, "info")
	probe(&leaves, &leavesErr, "leaves")
	probe(&doctor, &doctorErr, "doctor")
	probe(&repoMain, &repoMainErr, "--repository")
	probe(&repoCore, &repoCoreErr, "--repository", "homebrew/core")
	// Probe errors land in the slots above; the group itself never fails.
	_ = g.Wait()

	if versionErr != nil && leavesErr != nil && doctorErr != nil {
		return StatusSnapshot{}, fmt.Errorf("brew unavailable: %w", versionErr)
	}

	snap := StatusSnapshot{
		BrewVersion:   "unknown",
		OutdatedCount: -1,
		UpdateStatus:  "Unknown",
		UpdateAgo:     -1,
	}
	if versionErr == nil && version.Success {
		if line, ok := firstLine(version.Stdout); ok {
			snap.BrewVersion = line
		}
	}
	if infoErr == nil && info.Success {
		if line, ok := firstLine(info.Stdout); ok {
			snap.BrewInfo = line
		}
	}
	if doctorErr == nil {
		healthy := doctor.Success
		snap.DoctorOK = &healthy
		snap.DoctorIssues = doctorIssues(doctor)
	}

	var repos []string
	for _, res := range []struct {
		r   Result
		err error
	}{{repoMain, repoMainErr}, {repoCore, repoCoreErr}} {
		if res.err == nil && res.r.Success {
			if line, ok := firstLine(res.r.Stdout); ok {
				repos = append(repos, line)
			}
		}
	}
	snap.UpdateStatus, snap.UpdateAgo = updateRecency(repos, time.Now())

	if leavesErr == nil && leaves.Success {
		leafSet := make(map[string]bool)
		for _, name := range splitLines(leaves.Stdout) {
			leafSet[name] = true
		}
		if res, err := c.runner.Run(ctx, c.brewBin, "outdated", "--formula"); err == nil && res.Success {
			outdated := []string{}
			for _, line := range splitLines(res.Stdout) {
				name := strings.Fields(line)[0]
				if leafSet[name] {
					outdated = append(outdated, name)
				}
			}
			snap.OutdatedPackages = outdated
			snap.OutdatedCount = len(outdated)
		}
	}
	return snap, nil
}

// Command runs one brew invocation with the given arguments. Self-update
// runs the go toolchain instead. Non-zero exits come back in the Result;
// the error covers spawn failures only.
func (c *Client) Command(ctx context.Context, kind CommandKind, args []string) (Result, error) {
	bin := c.brewBin
	if kind == CommandSelfUpdate {
		bin = c.goBin
	}
	return c.runner.Run(ctx, bin, args...)
}

// CommandLine returns the invocation as shown in the activity panel.
func (c *Client) CommandLine(kind CommandKind, args []string) string {
	bin := filepath.Base(c.brewBin)
	if kind == CommandSelfUpdate {
		bin = filepath.Base(c.goBin)
	}
	return strings.Join(append([]string{bin}, args...), " ")
}

// ParseSearchResults extracts package names from brew search output,
// skipping the "==> Formulae" style section headers.
func ParseSearchResults(stdout string) []string {
	var names []string
	for _, line := range splitLines(stdout) {
		if strings.HasPrefix(line, "==>") {
			continue
		}
		names = append(names, line)
	}
	return names
}

func (c *Client) runLines(ctx context.Context, fallback string, args ...string) ([]string, error) {
	res, err := c.runner.Run(ctx, c.brewBin, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}
	if !res.Success {
		return nil, errors.New(failureLine(res, fallback))
	}
	return splitLines(res.Stdout), nil
}

type infoDoc struct {
	Formulae []struct {
		Desc     string `json:"desc"`
		Homepage string `json:"homepage"`
		Versions struct {
			Stable string `json:"stable"`
		} `json:"versions"`
		Installed []struct {
			Version string `json:"version"`
		} `json:"installed"`
	} `json:"formulae"`
	Casks []struct {
		Desc      string `json:"desc"`
		Homepage  string `json:"homepage"`
		Version   string `json:"version"`
		Installed string `json:"installed"`
	} `json:"casks"`
}

func parseInfo(payload, name string) (Details, error) {
	var doc infoDoc
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return Details{}, fmt.Errorf("parse brew info for %s: %w", name, err)
	}
	if len(doc.Formulae) > 0 {
		f := doc.Formulae[0]
		det := Details{
			Description: f.Desc,
			Homepage:    f.Homepage,
			Latest:      f.Versions.Stable,
		}
		for _, inst := range f.Installed {
			if inst.Version != "" {
				det.Installed = append(det.Installed, inst.Version)
			}
		}
		return det, nil
	}
	if len(doc.Casks) > 0 {
		k := doc.Casks[0]
		det := Details{
			Description: k.Desc,
			Homepage:    k.Homepage,
			Latest:      k.Version,
		}
		if k.Installed != "" {
			det.Installed = []string{k.Installed}
		}
		return det, nil
	}
	return Details{}, fmt.Errorf("brew info returned no data for %s", name)
}

func parseDuOutput(stdout string) []SizeEntry {
	var entries []SizeEntry
	for _, line := range splitLines(stdout) {
		size, path, found := strings.Cut(line, "\t")
		if !found {
			size, path, found = strings.Cut(line, " ")
			if !found {
				continue
			}
		}
		kb, err := strconv.ParseInt(strings.TrimSpace(size), 10, 64)
		if err != nil {
			continue
		}
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		entries = append(entries, SizeEntry{Name: filepath.Base(path), SizeKB: kb})
	}
	return entries
}

func doctorIssues(res Result) []string {
	src := res.Stderr
	if strings.TrimSpace(src) == "" {
		src = res.Stdout
	}
	var issues []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Warning:") || strings.HasPrefix(line, "Error:") {
			issues = append(issues, line)
			if len(issues) == maxDoctorIssues {
				break
			}
		}
	}
	return issues
}

// updateRecency derives the update hint from the newest FETCH_HEAD mtime
// across the given repository paths.
func updateRecency(repos []string, now time.Time) (string, time.Duration) {
	var newest time.Time
	for _, repo := range repos {
		info, err := os.Stat(filepath.Join(repo, ".git", "FETCH_HEAD"))
		if err != nil {
			continue
		}
		if mt := info.ModTime(); mt.After(newest) {
			newest = mt
		}
	}
	if newest.IsZero() {
		return "Unknown", -1
	}
	age := now.Sub(newest)
	if age <= staleUpdateAge {
		return "Up to date", age
	}
	return "Update recommended", age
}

func failureLine(res Result, fallback string) string {
	if line := res.ErrorLine(); line != "" {
		return line
	}
	return fallback
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}
