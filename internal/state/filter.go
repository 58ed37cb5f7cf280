package state

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// FilterIndex derives the visible subset of a full package list under a
// text query and an optional predicate, and tracks the selection within it.
// Visible holds indices into the full list in strictly increasing order.
// Selected is an index into the full list, -1 when nothing is selected; when
// set it is always a member of Visible.
type FilterIndex struct {
	Visible  []int
	Selected int
}

// NewFilterIndex returns an index with nothing visible and nothing selected.
func NewFilterIndex() FilterIndex {
	return FilterIndex{Selected: -1}
}

// Rebuild recomputes Visible from the full list, the query, and keep (nil
// means no predicate), then reconciles the selection: kept if still visible,
// otherwise snapped to the first visible entry, otherwise cleared.
func (f *FilterIndex) Rebuild(full []string, query string, keep func(string) bool) {
	f.Visible = f.Visible[:0]
	for i, name := range full {
		if keep != nil && !keep(name) {
			continue
		}
		if !matchesQuery(name, query) {
			continue
		}
		f.Visible = append(f.Visible, i)
	}
	f.reconcile()
}

func (f *FilterIndex) reconcile() {
	if len(f.Visible) == 0 {
		f.Selected = -1
		return
	}
	if f.Selected >= 0 && slices.Contains(f.Visible, f.Selected) {
		return
	}
	f.Selected = f.Visible[0]
}

// Next moves the selection one visible entry down, clamping at the end.
func (f *FilterIndex) Next() {
	f.step(1)
}

// Prev moves the selection one visible entry up, clamping at the start.
func (f *FilterIndex) Prev() {
	f.step(-1)
}

func (f *FilterIndex) step(delta int) {
	if len(f.Visible) == 0 {
		f.Selected = -1
		return
	}
	pos := f.Pos()
	if pos < 0 {
		f.Selected = f.Visible[0]
		return
	}
	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(f.Visible)-1 {
		pos = len(f.Visible) - 1
	}
	f.Selected = f.Visible[pos]
}

// Pos returns the selection's position within Visible, -1 when nothing is
// selected.
func (f *FilterIndex) Pos() int {
	if f.Selected < 0 {
		return -1
	}
	return slices.Index(f.Visible, f.Selected)
}

// Count returns the number of visible entries.
func (f *FilterIndex) Count() int {
	return len(f.Visible)
}

// Current returns the selected entry's name from the full list.
func (f *FilterIndex) Current(full []string) (string, bool) {
	if f.Selected < 0 || f.Selected >= len(full) {
		return "", false
	}
	return full[f.Selected], true
}

// matchesQuery reports whether name contains query, case-insensitively.
// ASCII queries take a byte-wise scan with no allocation; anything else goes
// through full case folding on both sides.
func matchesQuery(name, query string) bool {
	if query == "" {
		return true
	}
	if isASCII(query) {
		return containsFoldASCII(name, query)
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(name), fold.String(query))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func containsFoldASCII(s, sub string) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if equalFoldASCII(s[i:i+len(sub)], sub) {
			return true
		}
	}
	return false
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
