package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		w    int
		want string
	}{
		{"fits", "abc", 10, "abc"},
		{"exact", "abcd", 4, "abcd"},
		{"cut", "abcdef", 4, "abc…"},
		{"zero_width", "abc", 0, ""},
		{"wide_runes", "日本語", 4, "日…"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.w); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.w, got, tc.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 4); got != "abc…" {
		t.Fatalf("padRight overflow = %q, want %q", got, "abc…")
	}
	if got := padRight("日本", 5); got != "日本 " {
		t.Fatalf("padRight wide = %q, want %q", got, "日本 ")
	}
}

func TestFormatSizeKB(t *testing.T) {
	cases := []struct {
		name string
		kb   int64
		want string
	}{
		{"kilobytes", 512, "512K"},
		{"megabytes", 1536, "1.5M"},
		{"large_megabytes", 523468, "511.2M"},
		{"gigabytes", 1024 * 1024, "1.0G"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatSizeKB(tc.kb); got != tc.want {
				t.Fatalf("formatSizeKB(%d) = %q, want %q", tc.kb, got, tc.want)
			}
		})
	}
}

func TestHumanizeDuration(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"subsecond", 400 * time.Millisecond, "now"},
		{"seconds", 42 * time.Second, "42s"},
		{"minutes", 5*time.Minute + 20*time.Second, "5m"},
		{"hours", 3*time.Hour + 40*time.Minute, "3h"},
		{"days", 48 * time.Hour, "2d"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := humanizeDuration(tc.in); got != tc.want {
				t.Fatalf("humanizeDuration(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-3, 0, 10); got != 0 {
		t.Fatalf("clamp below = %d, want 0", got)
	}
	if got := clamp(4, 0, 10); got != 4 {
		t.Fatalf("clamp inside = %d, want 4", got)
	}
	if got := clamp(15, 0, 10); got != 10 {
		t.Fatalf("clamp above = %d, want 10", got)
	}
	if got := clamp(5, 3, 1); got != 3 {
		t.Fatalf("clamp inverted range = %d, want lo", got)
	}
}
