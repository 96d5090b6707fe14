package logging

import (
	"log/slog"
	"testing"
)

func TestCaptureRecords(t *testing.T) {
	h := NewCaptureHandler(nil, 8)
	logger := slog.New(h)

	logger.Info("first", "key", "value")
	logger.Warn("second")

	recs := h.Records()
	if len(recs) != 2 {
		t.Fatalf("captured %d records, want 2", len(recs))
	}
	if recs[0].Message != "first" || recs[0].Level != slog.LevelInfo {
		t.Errorf("first record: %+v", recs[0])
	}
	if recs[0].Attrs["key"] != "value" {
		t.Errorf("first record attrs: %v", recs[0].Attrs)
	}
	if recs[1].Message != "second" || recs[1].Level != slog.LevelWarn {
		t.Errorf("second record: %+v", recs[1])
	}
}

func TestCaptureRingEviction(t *testing.T) {
	h := NewCaptureHandler(nil, 3)
	logger := slog.New(h)

	for _, msg := range []string{"a", "b", "c", "d", "e"} {
		logger.Info(msg)
	}

	recs := h.Records()
	if len(recs) != 3 {
		t.Fatalf("captured %d records, want 3", len(recs))
	}
	want := []string{"c", "d", "e"}
	for i, rec := range recs {
		if rec.Message != want[i] {
			t.Errorf("record %d: %q, want %q (oldest first)", i, rec.Message, want[i])
		}
	}
}

func TestCaptureMessagesLevelFilter(t *testing.T) {
	h := NewCaptureHandler(nil, 8)
	logger := slog.New(h)

	logger.Debug("noise")
	logger.Info("info")
	logger.Error("boom")

	msgs := h.Messages(slog.LevelWarn)
	if len(msgs) != 1 || msgs[0] != "boom" {
		t.Errorf("Messages(Warn) = %v, want [boom]", msgs)
	}
}

func TestCaptureWithAttrsSharesBuffer(t *testing.T) {
	h := NewCaptureHandler(nil, 8)
	child := slog.New(h).With("session", "test")

	child.Info("tagged")

	recs := h.Records()
	if len(recs) != 1 {
		t.Fatalf("captured %d records through derived logger, want 1", len(recs))
	}
	if recs[0].Attrs["session"] != "test" {
		t.Errorf("derived attrs missing: %v", recs[0].Attrs)
	}
}

func TestCaptureReset(t *testing.T) {
	h := NewCaptureHandler(nil, 4)
	slog.New(h).Info("x")
	h.Reset()
	if got := h.Records(); len(got) != 0 {
		t.Errorf("Records after Reset: %d", len(got))
	}
}

func TestLevelMapping(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{1, slog.LevelError},
		{2, slog.LevelError},
		{3, slog.LevelWarn},
		{4, slog.LevelInfo},
		{5, slog.LevelDebug},
		{9, slog.LevelDebug},
	}
	for _, tt := range tests {
		if got := Level(tt.verbosity); got != tt.want {
			t.Errorf("Level(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}
