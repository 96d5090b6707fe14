package config

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestIndentOf(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"interface Ethernet0/0", 0},
		{" description Test", 1},
		{"    ip address 10.0.0.1 255.255.255.0", 4},
		{"", 0},
		{"   ", 3},
	}
	for _, tt := range tests {
		if got := indentOf(tt.line); got != tt.want {
			t.Errorf("indentOf(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestNormalizeIndents(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []int
	}{
		{
			name:  "already normalized",
			lines: []string{"a", " b", " c", "d"},
			want:  []int{0, 1, 1, 0},
		},
		{
			name:  "wide indents collapse to unit steps",
			lines: []string{"a", "    b", "        c", "    d"},
			want:  []int{0, 1, 2, 1},
		},
		{
			name: "large dedent drops exactly one level",
			// c dedents by 7 columns but only climbs one level.
			lines: []string{"a", "  b", "        c", " d"},
			want:  []int{0, 1, 2, 1},
		},
		{
			name:  "indented first line is root",
			lines: []string{"  a", "    b"},
			want:  []int{0, 1},
		},
		{
			name: "dedent to column zero still climbs one level",
			// A fixed heuristic: the magnitude of the dedent is ignored.
			lines: []string{"a", "    b", "        c", "d"},
			want:  []int{0, 1, 2, 1},
		},
		{
			name:  "depth never goes negative",
			lines: []string{"  a", " b", "c"},
			want:  []int{0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeIndents(tt.lines)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(got), len(tt.want))
			}
			for i, line := range got {
				if d := indentOf(line); d != tt.want[i] {
					t.Errorf("line %d (%q): depth %d, want %d", i, line, d, tt.want[i])
				}
				if strings.TrimSpace(line) != strings.TrimSpace(tt.lines[i]) {
					t.Errorf("line %d: content changed: %q -> %q", i, tt.lines[i], line)
				}
			}
		})
	}
}

func TestNormalizeIndentsUnitStepInvariant(t *testing.T) {
	// Deliberately inconsistent indentation.
	lines := []string{
		"interface Ethernet0/0",
		"   description deep",
		"         ip address 10.0.0.1 255.255.255.0",
		"  shutdown",
		"interface Ethernet0/1",
		"\tno shutdown", // tab is content, not indent
	}
	got := normalizeIndents(lines)
	if indentOf(got[0]) != 0 {
		t.Errorf("first line depth = %d, want 0", indentOf(got[0]))
	}
	for i := 1; i < len(got); i++ {
		delta := indentOf(got[i]) - indentOf(got[i-1])
		if delta < -1 || delta > 1 {
			t.Errorf("lines %d->%d: depth delta %d outside {-1,0,+1}", i-1, i, delta)
		}
	}
}

func TestTrimBoundaries(t *testing.T) {
	first := regexp.MustCompile(`^version \d+\.\d+`)
	last := regexp.MustCompile(`^end`)

	lines := []string{
		"Building configuration...",
		"Current configuration : 1024 bytes",
		"version 15.2",
		"hostname RouterA",
		"end",
		"RouterA#",
	}
	got, err := trimBoundaries(lines, first, last)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(got), got)
	}
	if got[0] != "version 15.2" || got[2] != "end" {
		t.Errorf("span boundaries wrong: %q", got)
	}
}

func TestTrimBoundariesMissing(t *testing.T) {
	first := regexp.MustCompile(`^version \d+\.\d+`)
	last := regexp.MustCompile(`^end`)

	tests := []struct {
		name  string
		lines []string
	}{
		{"no start marker", []string{"hostname RouterA", "end"}},
		{"no end marker", []string{"version 15.2", "hostname RouterA"}},
		{"empty input", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := trimBoundaries(tt.lines, first, last)
			if !errors.Is(err, ErrNoValidConfig) {
				t.Errorf("err = %v, want ErrNoValidConfig", err)
			}
		})
	}
}
