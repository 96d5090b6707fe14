// Package regexcache provides a bounded cache of compiled regular expressions.
//
// Query patterns arrive as source text and are recompiled on every call
// unless cached. The cache is bounded: once full, the least recently used
// entry is evicted. A single cache may be shared across parser sessions;
// it is safe for concurrent use.
package regexcache

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the default number of compiled patterns kept in the cache.
const DefaultSize = 1024

// Flags select regexp mode modifiers prepended to the expression at
// compile time.
type Flags int

const (
	// Multiline makes ^ and $ match at line boundaries ((?m)).
	Multiline Flags = 1 << iota
	// IgnoreCase makes matching case-insensitive ((?i)).
	IgnoreCase
	// DotAll makes . match newlines ((?s)).
	DotAll
)

func (f Flags) prefix() string {
	if f == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("(?")
	if f&Multiline != 0 {
		b.WriteByte('m')
	}
	if f&IgnoreCase != 0 {
		b.WriteByte('i')
	}
	if f&DotAll != 0 {
		b.WriteByte('s')
	}
	b.WriteByte(')')
	return b.String()
}

// PatternError reports a regular expression that failed to compile.
type PatternError struct {
	Expr string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Cache is a bounded LRU cache of compiled patterns.
type Cache struct {
	lru    *lru.Cache[string, *regexp.Regexp]
	logger *slog.Logger
}

// New creates a Cache holding at most size compiled patterns. A size of
// zero or less falls back to DefaultSize. A nil logger disables logging.
func New(size int, logger *slog.Logger) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Cache{logger: logger}
	// NewWithEvict only fails for size <= 0, which is handled above.
	c.lru, _ = lru.NewWithEvict(size, func(key string, _ *regexp.Regexp) {
		evictionsTotal.Inc()
		logger.Debug("evicted compiled pattern", "pattern", key)
	})
	return c
}

// Compile returns the compiled form of expr with the given flags, reusing
// a cached entry when available. On invalid regex syntax it returns a nil
// pattern and a *PatternError; callers are expected to degrade (a nil
// pattern matches nothing) rather than abort.
func (c *Cache) Compile(expr string, flags Flags) (*regexp.Regexp, error) {
	key := flags.prefix() + expr
	if re, ok := c.lru.Get(key); ok {
		hitsTotal.Inc()
		return re, nil
	}
	re, err := regexp.Compile(key)
	if err != nil {
		compileErrorsTotal.Inc()
		return nil, &PatternError{Expr: expr, Err: err}
	}
	missesTotal.Inc()
	c.lru.Add(key, re)
	return re, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int { return c.lru.Len() }

// Purge drops all cached patterns.
func (c *Cache) Purge() { c.lru.Purge() }
