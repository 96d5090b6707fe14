package config

import (
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

func TestFindNoMatch(t *testing.T) {
	p := parseString(t, sampleConfig)
	if got := p.Find(`^router bgp`); len(got) != 0 {
		t.Errorf("Find returned %d lines, want 0", len(got))
	}
}

func TestFindOrder(t *testing.T) {
	p := parseString(t, sampleConfig)
	got := p.Find(`^interface`)
	if len(got) != 2 {
		t.Fatalf("Find returned %d lines, want 2", len(got))
	}
	if got[0].Ordinal() >= got[1].Ordinal() {
		t.Error("results not in ordinal order")
	}
}

func TestFindValues(t *testing.T) {
	p := parseString(t, sampleConfig)

	byName := p.FindValues(`^interface (?P<name>\S+)`, "name")
	if len(byName) != 2 || byName[0] != "Ethernet0/0" || byName[1] != "Ethernet0/1" {
		t.Errorf("by name: %q", byName)
	}

	byIndex := p.FindValues(`^hostname (\S+)`, 1)
	if len(byIndex) != 1 || byIndex[0] != "RouterA" {
		t.Errorf("by index: %q", byIndex)
	}

	// Nodes where the group does not participate are skipped.
	optional := p.FindValues(`^ ip address \S+ \S+(?: (?P<secondary>secondary))?`, "secondary")
	if len(optional) != 1 || optional[0] != "secondary" {
		t.Errorf("optional group: %q", optional)
	}
}

func TestFindGroups(t *testing.T) {
	p := parseString(t, sampleConfig)

	got := p.FindGroups(`^ ip address (?P<address>\S+) (?P<mask>\S+)(?: (?P<secondary>secondary))?`)
	if len(got) != 2 {
		t.Fatalf("got %d group maps, want 2", len(got))
	}
	if got[0].Get("address") != "10.0.0.1" {
		t.Errorf("first address = %q", got[0].Get("address"))
	}
	if v, ok := got[0]["secondary"]; !ok || v != nil {
		t.Errorf("primary address: secondary = %v (present=%v), want present nil", v, ok)
	}
	if got[1]["secondary"] == nil {
		t.Error("secondary address: group not captured")
	}

	// A matching pattern without named groups contributes nothing.
	if plain := p.FindGroups(`^interface`); len(plain) != 0 {
		t.Errorf("pattern without named groups yielded %d maps", len(plain))
	}
}

func TestFindInvalidPattern(t *testing.T) {
	p, capture := captureParser(t, sampleConfig)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Invalid regex degrades to an empty result, visible only in logs.
	if got := p.Find(`(unclosed`); len(got) != 0 {
		t.Errorf("Find with invalid pattern returned %d lines", len(got))
	}
	msgs := capture.Messages(slog.LevelError)
	if len(msgs) == 0 || !strings.Contains(msgs[0], "compiling regex") {
		t.Errorf("compile failure not logged: %v", msgs)
	}
}

func TestFindPrecompiledPattern(t *testing.T) {
	p := parseString(t, sampleConfig)
	re := regexp.MustCompile(`(?i)^INTERFACE ethernet0/0`)
	if got := p.Find(re); len(got) != 1 {
		t.Errorf("precompiled pattern matched %d lines, want 1", len(got))
	}
}

func TestSectionByParentsDisjoint(t *testing.T) {
	p := parseString(t, sampleConfig)

	s0 := p.SectionByParents(`Ethernet0/0`)
	s1 := p.SectionByParents(`Ethernet0/1`)
	if len(s0) != 4 || len(s1) != 1 {
		t.Fatalf("sections: %d and %d lines, want 4 and 1", len(s0), len(s1))
	}
	seen := map[int]bool{}
	for _, l := range s0 {
		seen[l.Ordinal()] = true
	}
	for _, l := range s1 {
		if seen[l.Ordinal()] {
			t.Errorf("line %d appears in both sections", l.Ordinal())
		}
	}
}

func TestSectionByParentsChain(t *testing.T) {
	text := strings.Join([]string{
		"router bgp 65000",
		" address-family ipv4",
		"  network 10.0.0.0 mask 255.255.255.0",
		"  neighbor 10.1.1.1 activate",
		" address-family ipv6",
		"  neighbor 2001:db8::1 activate",
	}, "\n")
	p := parseString(t, text)

	section := p.SectionByParents(`^router bgp`, `address-family ipv4`)
	if len(section) != 2 {
		t.Fatalf("chain walk returned %d lines, want 2", len(section))
	}
	if !strings.Contains(section[0].Text(), "network 10.0.0.0") {
		t.Errorf("unexpected first line: %q", section[0].Text())
	}
}

func TestSectionByParentsAmbiguous(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		// Both interfaces have children and match.
		{"multiple matches", `^interface Ethernet0/`},
		// Nothing matches.
		{"zero matches", `^interface Serial`},
		// Matches a line, but that line has no children.
		{"match is not a parent", `^hostname`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, capture := captureParser(t, sampleConfig)
			if err := p.Parse(); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := p.SectionByParents(tt.pattern); len(got) != 0 {
				t.Fatalf("ambiguous walk returned %d lines, want 0", len(got))
			}
			msgs := capture.Messages(slog.LevelError)
			if len(msgs) == 0 || !strings.Contains(msgs[len(msgs)-1], "cannot determine config section") {
				t.Errorf("ambiguity not logged: %v", msgs)
			}
		})
	}
}
