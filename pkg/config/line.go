// Package config implements the Cisco-style configuration parser and its
// query engine. Flat, indentation-structured config text is rebuilt into a
// tree of classified lines which regex queries with named capture groups
// are run against.
package config

import (
	"fmt"
	"regexp"
)

// Kind classifies a config line. Classification is capability based: every
// kind exposes the base query surface, specialized kinds add typed
// accessors on top.
type Kind int

const (
	KindGeneric Kind = iota
	KindInterface
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// Captures maps named capture groups to their values. A group defined by
// the pattern but not participating in the match maps to nil.
type Captures map[string]*string

func (c Captures) merge(other Captures) {
	for k, v := range other {
		c[k] = v
	}
}

// Get returns the value for a group, or "" when absent or nil.
func (c Captures) Get(name string) string {
	if v, ok := c[name]; ok && v != nil {
		return *v
	}
	return ""
}

// Line is one node of the parsed configuration tree. The interface is
// closed: generic lines are *BaseLine, interface declarations are
// *InterfaceLine.
type Line interface {
	// Ordinal is the position in the final line sequence.
	Ordinal() int
	// Text is the line content after indentation normalization.
	Text() string
	// Depth is the normalized indentation level.
	Depth() int
	Kind() Kind
	// Parent is the nearest preceding line with strictly smaller depth,
	// nil at the root level. The reference is non-owning.
	Parent() Line
	// Children are the lines owned by this line, in original order.
	Children() []Line
	// IsParent reports whether the line has at least one child. It is
	// finalized after the whole tree is built.
	IsParent() bool

	Match(re *regexp.Regexp) bool
	MatchGroup(re *regexp.Regexp, group any) *string
	MatchGroups(re *regexp.Regexp) (Captures, bool)
	SearchChildren(re *regexp.Regexp) []Line
	SearchChildrenGroup(re *regexp.Regexp, group any) []string
	SearchChildrenGroups(re *regexp.Regexp) []Captures

	base() *BaseLine
}

// BaseLine is the generic config line node.
type BaseLine struct {
	ordinal  int
	text     string
	depth    int
	kind     Kind
	isParent bool
	parent   Line
	children []Line

	// session is a non-owning back-reference used for logging and
	// configuration context only.
	session *Parser
}

func newBaseLine(session *Parser, ordinal int, text string, depth int) *BaseLine {
	return &BaseLine{
		ordinal: ordinal,
		text:    text,
		depth:   depth,
		kind:    KindGeneric,
		session: session,
	}
}

func (l *BaseLine) Ordinal() int     { return l.ordinal }
func (l *BaseLine) Text() string     { return l.text }
func (l *BaseLine) Depth() int       { return l.depth }
func (l *BaseLine) Kind() Kind       { return l.kind }
func (l *BaseLine) Parent() Line     { return l.parent }
func (l *BaseLine) Children() []Line { return l.children }
func (l *BaseLine) IsParent() bool   { return l.isParent }

func (l *BaseLine) base() *BaseLine { return l }

func (l *BaseLine) String() string {
	return fmt.Sprintf("[%s #%d: %q]", l.kind, l.ordinal, l.text)
}

// Match reports whether the line text matches re. A nil pattern (failed
// compile) matches nothing.
func (l *BaseLine) Match(re *regexp.Regexp) bool {
	return re != nil && re.MatchString(l.text)
}

// MatchGroup returns the captured value of one group, selected by name
// (string) or one-based index (int). Nil when the line does not match or
// the group did not participate.
func (l *BaseLine) MatchGroup(re *regexp.Regexp, group any) *string {
	if re == nil {
		return nil
	}
	return groupValue(re, l.text, group)
}

// MatchGroups returns the full named-group mapping for the line, with nil
// values for named groups that did not participate. ok is false when the
// line does not match at all.
func (l *BaseLine) MatchGroups(re *regexp.Regexp) (Captures, bool) {
	if re == nil {
		return nil, false
	}
	return namedGroups(re, l.text)
}

// SearchChildren returns the direct children matching re, in order.
func (l *BaseLine) SearchChildren(re *regexp.Regexp) []Line {
	var out []Line
	for _, child := range l.children {
		if child.Match(re) {
			out = append(out, child)
		}
	}
	return out
}

// SearchChildrenGroup returns the captured group values across matching
// direct children. Children where the group did not participate are
// skipped.
func (l *BaseLine) SearchChildrenGroup(re *regexp.Regexp, group any) []string {
	var out []string
	for _, child := range l.children {
		if v := child.MatchGroup(re, group); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// SearchChildrenGroups returns the named-group mapping of every matching
// direct child.
func (l *BaseLine) SearchChildrenGroups(re *regexp.Regexp) []Captures {
	var out []Captures
	for _, child := range l.children {
		if caps, ok := child.MatchGroups(re); ok {
			out = append(out, caps)
		}
	}
	return out
}

// groupValue extracts one submatch from text, selected by name or
// one-based index.
func groupValue(re *regexp.Regexp, text string, group any) *string {
	idx := re.FindStringSubmatchIndex(text)
	if idx == nil {
		return nil
	}
	n := -1
	switch g := group.(type) {
	case int:
		n = g
	case string:
		n = re.SubexpIndex(g)
	}
	if n < 0 || 2*n+1 >= len(idx) || idx[2*n] < 0 {
		return nil
	}
	v := text[idx[2*n]:idx[2*n+1]]
	return &v
}

// namedGroups extracts every named submatch from text. Non-participating
// groups are present with a nil value.
func namedGroups(re *regexp.Regexp, text string) (Captures, bool) {
	idx := re.FindStringSubmatchIndex(text)
	if idx == nil {
		return nil, false
	}
	caps := Captures{}
	for i, name := range re.SubexpNames() {
		if name == "" {
			continue
		}
		if idx[2*i] >= 0 {
			v := text[idx[2*i]:idx[2*i+1]]
			caps[name] = &v
		} else {
			caps[name] = nil
		}
	}
	return caps, true
}

// namedGroupKeys lists the named groups a pattern defines, used to insert
// nil entries when a pattern fails to match and minimal results are off.
func namedGroupKeys(re *regexp.Regexp) []string {
	var keys []string
	for _, name := range re.SubexpNames() {
		if name != "" {
			keys = append(keys, name)
		}
	}
	return keys
}
