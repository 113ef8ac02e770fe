package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/peak/internal/contract"
	"github.com/alexanderramin/peak/internal/intelligence"
	"github.com/alexanderramin/peak/internal/scheduler"
	"github.com/google/uuid"
)

// msgPlanFailed is returned in place of a recovered panic value.
const msgPlanFailed = "unexpected failure while planning the session"

type planService struct {
	nudges   intelligence.NudgeService
	observer PlanObserver
}

// NewPlanService wires the planning use case. nudges may be nil, in which
// case every plan comes straight from the knowledge base.
func NewPlanService(nudges intelligence.NudgeService, observers ...PlanObserver) PlanService {
	return &planService{
		nudges:   nudges,
		observer: planObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	event := PlanEvent{StartedAt: time.Now().UTC(), DurationMin: req.DurationMin}
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = &contract.PlanError{Code: contract.ErrInternalError, Message: msgPlanFailed}
			event.Panic = r
		}
		event.Elapsed = time.Since(event.StartedAt)
		event.Err = err
		s.observer.ObservePlan(ctx, event)
	}()

	if req.DurationMin <= 0 || req.DurationMin > contract.MaxDurationMin {
		return nil, &contract.PlanError{
			Code:    contract.ErrInvalidDuration,
			Message: fmt.Sprintf("duration must be between 1 and %d minutes, got %d", contract.MaxDurationMin, req.DurationMin),
		}
	}

	session := scheduler.Plan(req.UserInput, req.DurationMin)
	event.Category = session.Category
	event.Concern = session.Concern
	event.NudgeCount = session.NudgeCount

	now := event.StartedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}

	resp = &contract.PlanResponse{
		PlanID:         uuid.New().String(),
		GeneratedAt:    now,
		Input:          req.UserInput,
		DurationMin:    session.DurationMin,
		Category:       session.Category,
		Concern:        session.Concern,
		MatchedKeyword: session.MatchedKey,
		NudgeCount:     session.NudgeCount,
		Nudges:         session.Nudges,
		Timing:         session.Timing,
		Source:         contract.SourceKnowledgeBase,
	}

	if s.nudges != nil && req.AllowGenerated {
		sugg := s.nudges.Suggest(ctx, intelligence.NudgeBrief{
			Input:       session.Input,
			Category:    session.Category,
			DurationMin: session.DurationMin,
			Count:       session.NudgeCount,
		})
		resp.Nudges = scheduler.FitNudges(sugg.Nudges, session.NudgeCount)
		resp.Source = sugg.Source
		if sugg.FallbackReason != "" {
			resp.Warnings = append(resp.Warnings, "generated nudges unavailable, using knowledge base: "+sugg.FallbackReason)
		}
	}
	event.Source = resp.Source

	return resp, nil
}
