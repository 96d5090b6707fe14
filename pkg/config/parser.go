package config

import (
	"log/slog"
	"regexp"
	"time"

	"github.com/psaab/netparse/pkg/regexcache"
)

// Default boundary markers for IOS-style configs.
const (
	DefaultFirstLine = `^version \d+\.\d+`
	DefaultLastLine  = `^end`
)

// interfaceDecl is the structural pattern that classifies a line as an
// interface declaration.
var interfaceDecl = regexp.MustCompile(`^interface\s\S+`)

const hostnamePattern = `^hostname (?P<hostname>\S+)`

// Defaults carries platform default values consulted when an interface
// section is silent about a setting. Nil means no platform default.
type Defaults struct {
	InterfaceNoShutdown  *bool
	InterfaceCDPEnabled  *bool
	InterfaceLLDPEnabled *bool
}

// Parser is a single parsing session over one configuration source. The
// tree is built once by Parse and never mutated afterwards; every query
// operation re-scans the flat node list.
type Parser struct {
	logger         *slog.Logger
	cache          *regexcache.Cache
	minimalResults bool
	defaults       Defaults

	trim      bool
	firstLine string
	lastLine  string

	source []string
	lines  []Line
	parsed bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the session logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithCache injects a shared pattern-compilation cache. Without it each
// session owns a private cache of regexcache.DefaultSize.
func WithCache(cache *regexcache.Cache) Option {
	return func(p *Parser) { p.cache = cache }
}

// WithMinimalResults controls extraction dictionaries: when enabled, keys
// of patterns that failed to match are omitted entirely instead of being
// inserted with a nil value.
func WithMinimalResults(on bool) Option {
	return func(p *Parser) { p.minimalResults = on }
}

// WithBoundaries enables boundary trimming before normalization: only the
// inclusive span between the first line matching first and the next line
// matching last is parsed. Empty arguments select the IOS defaults.
func WithBoundaries(first, last string) Option {
	return func(p *Parser) {
		p.trim = true
		if first != "" {
			p.firstLine = first
		}
		if last != "" {
			p.lastLine = last
		}
	}
}

// WithDefaults sets platform default values for interface accessors.
func WithDefaults(d Defaults) Option {
	return func(p *Parser) { p.defaults = d }
}

// New creates a parsing session over the given raw lines. Use pkg/loader
// to obtain lines from a path or a raw config string.
func New(lines []string, opts ...Option) *Parser {
	p := &Parser{
		source:    append([]string(nil), lines...),
		firstLine: DefaultFirstLine,
		lastLine:  DefaultLastLine,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.cache == nil {
		p.cache = regexcache.New(regexcache.DefaultSize, p.logger)
	}
	return p
}

// Parse builds the line tree: optional boundary trim, indentation
// normalization, node creation with classification, parent/child linking,
// and the finalization pass. It is a no-op on an already-parsed session.
//
// With boundary trimming enabled and a marker missing, Parse logs the
// condition, leaves the session with an empty tree, and returns
// ErrNoValidConfig. Every query on the degraded session yields empty
// results rather than failing.
func (p *Parser) Parse() error {
	if p.parsed {
		return nil
	}
	p.parsed = true
	start := time.Now()

	lines := p.source
	if p.trim {
		firstRe := p.compile(p.firstLine)
		lastRe := p.compile(p.lastLine)
		if firstRe == nil || lastRe == nil {
			p.logger.Error("no valid config found", "err", ErrNoValidConfig)
			return ErrNoValidConfig
		}
		trimmed, err := trimBoundaries(lines, firstRe, lastRe)
		if err != nil {
			p.logger.Error("no valid config found",
				"first", p.firstLine, "last", p.lastLine)
			return err
		}
		p.logger.Info("loading config lines", "count", len(trimmed))
		lines = trimmed
	}

	normalized := normalizeIndents(lines)
	p.lines = make([]Line, 0, len(normalized))

	// Stack of currently-open ancestor candidates. Entries with depth >=
	// the new node's depth are closed; the remaining top is the parent.
	var stack []Line
	for ordinal, text := range normalized {
		depth := indentOf(text)
		var node Line
		if interfaceDecl.MatchString(text) {
			node = newInterfaceLine(p, ordinal, text, depth)
		} else {
			node = newBaseLine(p, ordinal, text, depth)
		}
		for len(stack) > 0 && stack[len(stack)-1].Depth() >= depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			node.base().parent = parent
			pb := parent.base()
			pb.children = append(pb.children, node)
		}
		stack = append(stack, node)
		p.lines = append(p.lines, node)
	}

	// Parent-ness depends on fully built links, so it is finalized in a
	// second pass.
	for _, l := range p.lines {
		b := l.base()
		b.isParent = len(b.children) > 0
	}

	parsesTotal.Inc()
	linesParsedTotal.Add(float64(len(p.lines)))
	parseDuration.Observe(time.Since(start).Seconds())
	p.logger.Debug("created config line objects",
		"count", len(p.lines),
		"elapsed", time.Since(start))
	return nil
}

// Lines returns all nodes in ordinal order.
func (p *Parser) Lines() []Line { return p.lines }

// MinimalResults reports whether failed-to-match keys are omitted from
// extraction dictionaries.
func (p *Parser) MinimalResults() bool { return p.minimalResults }

// Hostname returns the device hostname, or "" when the config does not
// declare one.
func (p *Parser) Hostname() string {
	vals := p.FindValues(hostnamePattern, "hostname")
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// InterfaceLines returns every interface declaration node.
func (p *Parser) InterfaceLines() []*InterfaceLine {
	var out []*InterfaceLine
	for _, l := range p.lines {
		if iface, ok := l.(*InterfaceLine); ok {
			out = append(out, iface)
		}
	}
	return out
}

// Interfaces returns the typed model of every interface section.
func (p *Parser) Interfaces() []InterfaceModel {
	lines := p.InterfaceLines()
	out := make([]InterfaceModel, 0, len(lines))
	for _, iface := range lines {
		out = append(out, iface.ToModel())
	}
	return out
}
