package llm

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// WriteEvent summarizes one WriteNudges call, retries included.
type WriteEvent struct {
	Model     string
	Focus     string
	Requested int
	Written   int
	Attempts  int
	Latency   time.Duration
	// ErrorCode is empty on success.
	ErrorCode string
}

type Observer interface {
	NudgesWritten(ctx context.Context, event WriteEvent)
}

// LogObserver writes one line per WriteNudges call.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func NewSlogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) NudgesWritten(ctx context.Context, e WriteEvent) {
	level := slog.LevelInfo
	if e.ErrorCode != "" {
		level = slog.LevelWarn
	}
	o.logger.LogAttrs(ctx, level, "nudges written",
		slog.String("model", e.Model),
		slog.String("focus", e.Focus),
		slog.Int("requested", e.Requested),
		slog.Int("written", e.Written),
		slog.Int("attempts", e.Attempts),
		slog.Int64("latency_ms", e.Latency.Milliseconds()),
		slog.String("error_code", e.ErrorCode),
	)
}

type NoopObserver struct{}

func (NoopObserver) NudgesWritten(context.Context, WriteEvent) {}
