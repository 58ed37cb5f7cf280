package state

import (
	"reflect"
	"testing"
)

func TestFilterIndex_Rebuild(t *testing.T) {
	full := []string{"bat", "eza", "fd", "ripgrep", "wget"}

	tests := []struct {
		name     string
		query    string
		keep     func(string) bool
		prior    int
		visible  []int
		selected int
	}{
		{
			name:     "empty query keeps everything",
			query:    "",
			prior:    -1,
			visible:  []int{0, 1, 2, 3, 4},
			selected: 0,
		},
		{
			name:     "ascii match ignores case",
			query:    "RIP",
			prior:    -1,
			visible:  []int{3},
			selected: 3,
		},
		{
			name:     "selection survives when still visible",
			query:    "e",
			prior:    1,
			visible:  []int{1, 3, 4},
			selected: 1,
		},
		{
			name:     "stranded selection snaps to first visible",
			query:    "w",
			prior:    1,
			visible:  []int{4},
			selected: 4,
		},
		{
			name:     "no matches clears the selection",
			query:    "zzz",
			prior:    2,
			visible:  nil,
			selected: -1,
		},
		{
			name:  "predicate is ANDed with the query",
			query: "",
			keep: func(s string) bool {
				return s == "fd" || s == "wget"
			},
			prior:    -1,
			visible:  []int{2, 4},
			selected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilterIndex()
			f.Selected = tt.prior
			f.Rebuild(full, tt.query, tt.keep)
			if !reflect.DeepEqual(f.Visible, tt.visible) {
				t.Fatalf("Visible = %v, want %v", f.Visible, tt.visible)
			}
			if f.Selected != tt.selected {
				t.Fatalf("Selected = %d, want %d", f.Selected, tt.selected)
			}
		})
	}
}

func TestFilterIndex_ClearFilterKeepsSelection(t *testing.T) {
	full := []string{"a", "b", "c"}
	f := NewFilterIndex()

	f.Rebuild(full, "", nil)
	if f.Selected != 0 {
		t.Fatalf("Selected = %d, want 0 after first rebuild", f.Selected)
	}

	f.Rebuild(full, "b", nil)
	if !reflect.DeepEqual(f.Visible, []int{1}) {
		t.Fatalf("Visible = %v, want [1]", f.Visible)
	}
	if f.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", f.Selected)
	}

	f.Rebuild(full, "", nil)
	if !reflect.DeepEqual(f.Visible, []int{0, 1, 2}) {
		t.Fatalf("Visible = %v, want [0 1 2]", f.Visible)
	}
	if f.Selected != 1 {
		t.Fatalf("Selected = %d, want 1 to survive clearing the filter", f.Selected)
	}
}

func TestFilterIndex_StepClamps(t *testing.T) {
	full := []string{"a", "b", "c", "d"}
	f := NewFilterIndex()
	f.Rebuild(full, "", nil)

	f.Prev()
	if f.Selected != 0 {
		t.Fatalf("Selected = %d, want clamp at 0", f.Selected)
	}

	for i := 0; i < 10; i++ {
		f.Next()
	}
	if f.Selected != 3 {
		t.Fatalf("Selected = %d, want clamp at 3", f.Selected)
	}

	// From no selection, stepping either way lands on the first entry.
	f.Selected = -1
	f.Next()
	if f.Selected != 0 {
		t.Fatalf("Selected = %d, want 0 after Next from none", f.Selected)
	}
	f.Selected = -1
	f.Prev()
	if f.Selected != 0 {
		t.Fatalf("Selected = %d, want 0 after Prev from none", f.Selected)
	}
}

func TestFilterIndex_StepMovesWithinVisible(t *testing.T) {
	full := []string{"bat", "cat", "dog"}
	f := NewFilterIndex()
	f.Rebuild(full, "t", nil)

	if !reflect.DeepEqual(f.Visible, []int{0, 1}) {
		t.Fatalf("Visible = %v, want [0 1]", f.Visible)
	}
	f.Next()
	if f.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", f.Selected)
	}
	f.Next()
	if f.Selected != 1 {
		t.Fatalf("Selected = %d, want to stay at 1 (dog is filtered out)", f.Selected)
	}
	if name, ok := f.Current(full); !ok || name != "cat" {
		t.Fatalf("Current = %q/%v, want cat", name, ok)
	}
}

func TestFilterIndex_FoldsNonASCII(t *testing.T) {
	full := []string{"café", "motörhead", "wget"}
	f := NewFilterIndex()

	f.Rebuild(full, "CAFÉ", nil)
	if !reflect.DeepEqual(f.Visible, []int{0}) {
		t.Fatalf("Visible = %v, want [0] for folded query", f.Visible)
	}

	f.Rebuild(full, "ÖRHEAD", nil)
	if !reflect.DeepEqual(f.Visible, []int{1}) {
		t.Fatalf("Visible = %v, want [1] for folded query", f.Visible)
	}

	// ASCII queries still match multi-byte names on their ASCII runs.
	f.Rebuild(full, "caf", nil)
	if !reflect.DeepEqual(f.Visible, []int{0}) {
		t.Fatalf("Visible = %v, want [0] for ascii prefix", f.Visible)
	}
}
