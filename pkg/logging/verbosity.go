package logging

import (
	"io"
	"log/slog"
)

// Level maps a numeric verbosity (1 = quietest, 5 = debug) to an slog
// level. Values outside the range clamp to the nearest end.
func Level(verbosity int) slog.Level {
	switch {
	case verbosity >= 5:
		return slog.LevelDebug
	case verbosity == 4:
		return slog.LevelInfo
	case verbosity == 3:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// NewLogger returns a text logger writing to w at the given verbosity.
func NewLogger(w io.Writer, verbosity int) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbosity),
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
