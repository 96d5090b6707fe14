// Package logging provides slog helpers for parser sessions: verbosity
// mapping and a bounded in-memory capture of recent log records.
package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Record is a captured log record in flattened form.
type Record struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// CaptureHandler is an slog.Handler that records log records into a
// bounded ring buffer in addition to an optional wrapped base handler.
// The parser's degrade-gracefully contract makes failures visible only
// through logs; the capture buffer makes them visible to programs too.
type CaptureHandler struct {
	base slog.Handler

	mu   sync.Mutex
	buf  []Record
	next int
	full bool
}

// NewCaptureHandler creates a CaptureHandler keeping the last size records.
// base may be nil, in which case records are only captured.
func NewCaptureHandler(base slog.Handler, size int) *CaptureHandler {
	if size <= 0 {
		size = 256
	}
	return &CaptureHandler{base: base, buf: make([]Record, size)}
}

func (h *CaptureHandler) store(rec Record) {
	h.mu.Lock()
	h.buf[h.next] = rec
	h.next++
	if h.next == len(h.buf) {
		h.next = 0
		h.full = true
	}
	h.mu.Unlock()
}

// Enabled implements slog.Handler.
func (h *CaptureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.base != nil {
		return h.base.Enabled(ctx, level)
	}
	return true
}

// Handle implements slog.Handler.
func (h *CaptureHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if h.base != nil {
		err = h.base.Handle(ctx, r)
	}
	h.store(flattenRecord(r, nil, nil))
	return err
}

// WithAttrs implements slog.Handler. Derived handlers share the parent's
// ring buffer.
func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	base := h.base
	if base != nil {
		base = base.WithAttrs(attrs)
	}
	return &captureChild{parent: h, base: base, attrs: attrs}
}

// WithGroup implements slog.Handler.
func (h *CaptureHandler) WithGroup(name string) slog.Handler {
	base := h.base
	if base != nil {
		base = base.WithGroup(name)
	}
	return &captureChild{parent: h, base: base, groups: []string{name}}
}

// Records returns the captured records, oldest first.
func (h *CaptureHandler) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.full {
		return append([]Record(nil), h.buf[:h.next]...)
	}
	out := make([]Record, 0, len(h.buf))
	out = append(out, h.buf[h.next:]...)
	out = append(out, h.buf[:h.next]...)
	return out
}

// Reset discards all captured records.
func (h *CaptureHandler) Reset() {
	h.mu.Lock()
	h.next = 0
	h.full = false
	h.mu.Unlock()
}

// Messages returns the captured messages at or above level, oldest first.
func (h *CaptureHandler) Messages(level slog.Level) []string {
	var out []string
	for _, r := range h.Records() {
		if r.Level >= level {
			out = append(out, r.Message)
		}
	}
	return out
}

// captureChild is a derived handler (WithAttrs/WithGroup) writing into its
// parent's ring buffer.
type captureChild struct {
	parent *CaptureHandler
	base   slog.Handler
	attrs  []slog.Attr
	groups []string
}

func (c *captureChild) Enabled(ctx context.Context, level slog.Level) bool {
	if c.base != nil {
		return c.base.Enabled(ctx, level)
	}
	return true
}

func (c *captureChild) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if c.base != nil {
		err = c.base.Handle(ctx, r)
	}
	c.parent.store(flattenRecord(r, c.attrs, c.groups))
	return err
}

func (c *captureChild) WithAttrs(attrs []slog.Attr) slog.Handler {
	base := c.base
	if base != nil {
		base = base.WithAttrs(attrs)
	}
	return &captureChild{
		parent: c.parent,
		base:   base,
		attrs:  append(append([]slog.Attr{}, c.attrs...), attrs...),
		groups: c.groups,
	}
}

func (c *captureChild) WithGroup(name string) slog.Handler {
	base := c.base
	if base != nil {
		base = base.WithGroup(name)
	}
	return &captureChild{
		parent: c.parent,
		base:   base,
		attrs:  c.attrs,
		groups: append(append([]string{}, c.groups...), name),
	}
}

// flattenRecord produces the stored form of a log record, qualifying
// attribute keys with any open group prefix.
func flattenRecord(r slog.Record, preAttrs []slog.Attr, groups []string) Record {
	rec := Record{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]string, r.NumAttrs()+len(preAttrs)),
	}
	for _, a := range preAttrs {
		rec.Attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if len(groups) > 0 {
			key = strings.Join(groups, ".") + "." + key
		}
		rec.Attrs[key] = a.Value.String()
		return true
	})
	return rec
}
