package config

import (
	"regexp"
	"strings"
)

// indentOf counts the leading spaces of a raw line. Only spaces count;
// Cisco-style configs do not indent with tabs.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// normalizeIndents rewrites arbitrary raw indentation into a unit-step
// depth ladder and returns the lines re-indented with exactly depth
// spaces, content stripped of surrounding whitespace.
//
// The first line sits at depth 0. A line whose raw indent equals the
// previous line's keeps the previous depth; a larger raw indent means one
// level deeper; a smaller one means exactly one level shallower, no
// matter how many columns the raw indent dropped.
func normalizeIndents(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	raw := make([]int, len(lines))
	for i, line := range lines {
		raw[i] = indentOf(line)
	}
	depths := make([]int, len(lines))
	for i := range lines {
		switch {
		case i == 0:
			depths[i] = 0
		case raw[i] == raw[i-1]:
			depths[i] = depths[i-1]
		case raw[i] > raw[i-1]:
			depths[i] = depths[i-1] + 1
		default:
			depths[i] = depths[i-1] - 1
			if depths[i] < 0 {
				depths[i] = 0
			}
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Repeat(" ", depths[i]) + strings.TrimSpace(line)
	}
	return out
}

// trimBoundaries keeps the inclusive span between the first line matching
// first and the first subsequent line matching last. When either boundary
// is absent there is no usable config in the input and ErrNoValidConfig
// is returned.
func trimBoundaries(lines []string, first, last *regexp.Regexp) ([]string, error) {
	start, end := -1, -1
	for i, line := range lines {
		if start < 0 && first.MatchString(line) {
			start = i
		}
		if start >= 0 && end < 0 && last.MatchString(line) {
			end = i
			break
		}
	}
	if start < 0 || end < 0 {
		return nil, ErrNoValidConfig
	}
	return lines[start : end+1], nil
}
