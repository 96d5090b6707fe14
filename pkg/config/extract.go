package config

import (
	"strconv"
)

// SectionEntry pairs a parent candidate with the properties extracted
// from it and its direct children.
type SectionEntry struct {
	Line   Line
	Fields Captures
}

// MatchToDict runs each pattern against the line's text in order, merging
// the named-group mappings into one dictionary. On key collision the
// later pattern wins. A pattern that fails to match contributes its keys
// with nil values, or nothing at all under minimal results.
func (p *Parser) MatchToDict(line Line, patterns []any) Captures {
	entry := Captures{}
	for _, pattern := range patterns {
		re := p.compile(pattern)
		if re == nil {
			continue
		}
		if caps, ok := line.MatchGroups(re); ok {
			entry.merge(caps)
		} else if !p.minimalResults {
			for _, key := range namedGroupKeys(re) {
				entry[key] = nil
			}
		}
	}
	return entry
}

// PropertyAutoParse finds all lines matching candidatePattern and builds
// one dictionary per candidate via MatchToDict. No candidates means an
// empty result, not an error.
func (p *Parser) PropertyAutoParse(candidatePattern any, patterns []any) []Captures {
	candidates := p.Find(candidatePattern)
	if len(candidates) == 0 {
		return nil
	}
	out := make([]Captures, 0, len(candidates))
	for _, candidate := range candidates {
		out = append(out, p.MatchToDict(candidate, patterns))
	}
	return out
}

// SectionPropertyAutoParse builds one dictionary per parent candidate.
// parent is either a specific Line or a pattern used to find candidates;
// when it is a pattern, its own named groups seed each dictionary. Each
// pattern is then searched among the candidate's direct children, where
// exactly one match is expected: zero matches follow the minimal-results
// policy, multiple matches are logged and the pattern's contribution is
// skipped for that parent.
func (p *Parser) SectionPropertyAutoParse(parent any, patterns []any) []SectionEntry {
	var candidates []Line
	fromPattern := false
	switch v := parent.(type) {
	case Line:
		candidates = []Line{v}
	default:
		candidates = p.Find(parent)
		fromPattern = true
	}
	if len(candidates) == 0 {
		return nil
	}

	entries := make([]SectionEntry, 0, len(candidates))
	for _, candidate := range candidates {
		entry := Captures{}
		if fromPattern {
			entry.merge(p.MatchToDict(candidate, []any{parent}))
		}
		for _, pattern := range patterns {
			re := p.compile(pattern)
			if re == nil {
				continue
			}
			updates := candidate.SearchChildrenGroups(re)
			switch len(updates) {
			case 1:
				entry.merge(updates[0])
			case 0:
				if p.minimalResults {
					continue
				}
				for _, key := range namedGroupKeys(re) {
					entry[key] = nil
				}
			default:
				err := &AmbiguousChildMatchError{
					Pattern: re.String(),
					Parent:  candidate.Text(),
					Matches: len(updates),
				}
				p.logger.Warn("multiple possible updates found", "err", err)
			}
		}
		entries = append(entries, SectionEntry{Line: candidate, Fields: entry})
	}
	return entries
}

// firstOrNil reduces a candidate list to its first element. More than one
// candidate is unexpected and logged; the first still wins here, unlike
// the section walk, because callers ask for a single scalar property.
func (p *Parser) firstOrNil(candidates []string) *string {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return &candidates[0]
	default:
		p.logger.Warn("multiple candidates found, using first",
			"count", len(candidates), "first", candidates[0])
		return &candidates[0]
	}
}

// firstIntOrNil is firstOrNil with integer coercion. Unparsable values
// are logged and dropped.
func (p *Parser) firstIntOrNil(candidates []string) *int {
	v := p.firstOrNil(candidates)
	if v == nil {
		return nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		p.logger.Warn("candidate is not an integer", "value", *v)
		return nil
	}
	return &n
}
