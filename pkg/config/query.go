package config

import (
	"fmt"
	"regexp"

	"github.com/psaab/netparse/pkg/regexcache"
)

// compile coerces a query pattern into a compiled regex. Patterns are
// either source strings (compiled in multiline mode through the session
// cache, matching the original query dialect) or pre-compiled
// *regexp.Regexp values used as-is. A failed compile is logged and yields
// nil, which every matching operation treats as match-nothing: chained
// queries degrade instead of failing.
func (p *Parser) compile(pattern any) *regexp.Regexp {
	switch v := pattern.(type) {
	case *regexp.Regexp:
		return v
	case string:
		re, err := p.cache.Compile(v, regexcache.Multiline)
		if err != nil {
			p.logger.Error("error while compiling regex", "pattern", v, "err", err)
			return nil
		}
		return re
	case nil:
		return nil
	default:
		p.logger.Error("unsupported pattern type", "type", fmt.Sprintf("%T", pattern))
		return nil
	}
}

// patternSource renders a pattern for log output.
func patternSource(pattern any) string {
	switch v := pattern.(type) {
	case *regexp.Regexp:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", pattern)
	}
}

// Find returns the nodes whose text matches pattern, in ordinal order.
// No match anywhere yields an empty result, never an error.
func (p *Parser) Find(pattern any) []Line {
	findQueriesTotal.Inc()
	re := p.compile(pattern)
	if re == nil {
		return nil
	}
	var out []Line
	for _, l := range p.lines {
		if l.Match(re) {
			out = append(out, l)
		}
	}
	p.logger.Debug("matched lines for query",
		"count", len(out), "pattern", re.String())
	return out
}

// FindValues returns the captured value of group (name or one-based
// index) for every matching node. Nodes where the group did not
// participate in the match are skipped.
func (p *Parser) FindValues(pattern any, group any) []string {
	findQueriesTotal.Inc()
	re := p.compile(pattern)
	if re == nil {
		return nil
	}
	var out []string
	for _, l := range p.lines {
		if v := l.MatchGroup(re, group); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// FindGroups returns, per matching node, the full named-capture-group
// mapping; named groups that did not participate map to nil. Nodes
// matching a pattern that defines no named groups contribute nothing.
func (p *Parser) FindGroups(pattern any) []Captures {
	findQueriesTotal.Inc()
	re := p.compile(pattern)
	if re == nil {
		return nil
	}
	var out []Captures
	for _, l := range p.lines {
		if caps, ok := l.MatchGroups(re); ok && len(caps) > 0 {
			out = append(out, caps)
		}
	}
	return out
}

// SectionByParents walks the tree by a chain of parent patterns. Each
// step narrows the current candidates to lines that have children and
// match the pattern; exactly one must remain, and the walk descends into
// its children. Zero or multiple matches end the walk with an empty
// result and a logged ambiguity; a first match is never picked silently.
func (p *Parser) SectionByParents(patterns ...any) []Line {
	section := p.lines
	for _, pattern := range patterns {
		re := p.compile(pattern)
		var matched []Line
		for _, l := range section {
			if l.IsParent() && l.Match(re) {
				matched = append(matched, l)
			}
		}
		if len(matched) != 1 {
			ambiguousSectionsTotal.Inc()
			err := &AmbiguousMatchError{
				Pattern: patternSource(pattern),
				Matches: len(matched),
			}
			p.logger.Error("cannot determine config section", "err", err)
			return nil
		}
		section = matched[0].Children()
	}
	return section
}
