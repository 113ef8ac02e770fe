package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/peak/internal/contract"
	"github.com/alexanderramin/peak/internal/domain"
)

// PlanEvent describes one Plan call. Fields past DurationMin stay zero
// when the request is rejected before classification.
type PlanEvent struct {
	StartedAt   time.Time
	Elapsed     time.Duration
	DurationMin int
	Category    domain.Category
	Concern     bool
	NudgeCount  int
	Source      contract.NudgeSource
	Err         error
	// Panic is a recovered panic value. It is logged here and never
	// returned to the caller.
	Panic any
}

func (e PlanEvent) Success() bool { return e.Err == nil }

// attrs lists the event in a fixed order so log lines diff cleanly.
func (e PlanEvent) attrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.Int64("elapsed_ms", e.Elapsed.Milliseconds()),
		slog.Bool("success", e.Success()),
		slog.Int("duration_min", e.DurationMin),
	}
	if e.Category != "" {
		attrs = append(attrs,
			slog.String("category", string(e.Category)),
			slog.Bool("concern", e.Concern),
			slog.Int("nudge_count", e.NudgeCount),
			slog.String("source", string(e.Source)),
		)
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	if e.Panic != nil {
		attrs = append(attrs, slog.String("panic", fmt.Sprint(e.Panic)))
	}
	return attrs
}

// level is WARN for caller mistakes and ERROR for everything else that
// failed.
func (e PlanEvent) level() slog.Level {
	if e.Err == nil {
		return slog.LevelInfo
	}
	var pe *contract.PlanError
	if errors.As(e.Err, &pe) && pe.IsClientError() {
		return slog.LevelWarn
	}
	return slog.LevelError
}

type PlanObserver interface {
	ObservePlan(ctx context.Context, event PlanEvent)
}

type NoopPlanObserver struct{}

func (NoopPlanObserver) ObservePlan(context.Context, PlanEvent) {}

type logPlanObserver struct {
	logger *slog.Logger
}

// NewLogPlanObserver writes one text log line per plan to w.
func NewLogPlanObserver(w io.Writer) PlanObserver {
	if w == nil {
		return NoopPlanObserver{}
	}
	return NewSlogPlanObserver(slog.New(slog.NewTextHandler(w, nil)))
}

func NewSlogPlanObserver(logger *slog.Logger) PlanObserver {
	if logger == nil {
		return NoopPlanObserver{}
	}
	return &logPlanObserver{logger: logger}
}

func (o *logPlanObserver) ObservePlan(ctx context.Context, e PlanEvent) {
	o.logger.LogAttrs(ctx, e.level(), "plan session", e.attrs()...)
}

func planObserverOrNoop(observers []PlanObserver) PlanObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopPlanObserver{}
}
