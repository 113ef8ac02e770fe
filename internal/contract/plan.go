package contract

import (
	"time"

	"github.com/alexanderramin/peak/internal/domain"
)

const (
	// DefaultDurationMin applies when a request omits the duration.
	DefaultDurationMin = 30
	// MaxDurationMin is one day. Offsets are computed in seconds, so the
	// bound keeps DurationMin*60 far from integer overflow.
	MaxDurationMin = 24 * 60
)

type PlanRequest struct {
	UserInput   string
	DurationMin int
	Now         *time.Time
	// AllowGenerated opts in to the generative nudge source. Off by
	// default so that the same input always yields the same plan.
	// Ignored when no generator is wired.
	AllowGenerated bool
}

func NewPlanRequest(userInput string, durationMin int) PlanRequest {
	return PlanRequest{
		UserInput:   userInput,
		DurationMin: durationMin,
	}
}

type NudgeSource string

const (
	SourceKnowledgeBase NudgeSource = "knowledge_base"
	SourceGenerated     NudgeSource = "generated"
)

type PlanResponse struct {
	PlanID         string          `json:"plan_id"`
	GeneratedAt    time.Time       `json:"generated_at"`
	Input          string          `json:"input"`
	DurationMin    int             `json:"duration_min"`
	Category       domain.Category `json:"category"`
	Concern        bool            `json:"concern"`
	MatchedKeyword string          `json:"matched_keyword,omitempty"`
	NudgeCount     int             `json:"nudge_count"`
	Nudges         []string        `json:"nudges"`
	Timing         []int           `json:"timing"`
	Source         NudgeSource     `json:"source"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// Session converts the response back into a domain session.
func (r *PlanResponse) Session() *domain.Session {
	return &domain.Session{
		ID:          r.PlanID,
		Input:       r.Input,
		DurationMin: r.DurationMin,
		Category:    r.Category,
		Concern:     r.Concern,
		MatchedKey:  r.MatchedKeyword,
		NudgeCount:  r.NudgeCount,
		Nudges:      r.Nudges,
		Timing:      r.Timing,
		PlannedAt:   r.GeneratedAt,
	}
}

type PlanErrorCode string

const (
	ErrInvalidInput    PlanErrorCode = "INVALID_INPUT"
	ErrInvalidDuration PlanErrorCode = "INVALID_DURATION"
	ErrInternalError   PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// IsClientError reports whether the failure stems from the caller's input.
func (e *PlanError) IsClientError() bool {
	return e.Code == ErrInvalidInput || e.Code == ErrInvalidDuration
}
