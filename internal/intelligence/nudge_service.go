package intelligence

import (
	"context"

	"github.com/alexanderramin/peak/internal/contract"
	"github.com/alexanderramin/peak/internal/domain"
	"github.com/alexanderramin/peak/internal/llm"
)

// NudgeBrief is everything the generator is told about a session.
type NudgeBrief struct {
	Input       string
	Category    domain.Category
	DurationMin int
	Count       int
}

// NudgeSuggestion is the nudge list chosen for a brief.
type NudgeSuggestion struct {
	Nudges []string
	Source contract.NudgeSource
	// FallbackReason explains why generated nudges were not used. Empty
	// when the generator succeeded or was never asked.
	FallbackReason string
}

// NudgeService produces nudge text for a classified session. It never
// fails: anything short of a full, valid generated list resolves to the
// knowledge base.
type NudgeService interface {
	Suggest(ctx context.Context, brief NudgeBrief) *NudgeSuggestion
}

type nudgeService struct {
	writer llm.NudgeWriter
}

func NewNudgeService(writer llm.NudgeWriter) NudgeService {
	return &nudgeService{writer: writer}
}

func (s *nudgeService) Suggest(ctx context.Context, brief NudgeBrief) *NudgeSuggestion {
	if brief.Count <= 0 {
		return DeterministicNudges(brief, "")
	}

	nudges, err := s.writer.WriteNudges(ctx, llm.NudgeRequest{
		Feeling: brief.Input,
		Focus:   brief.Category.Label(),
		Minutes: brief.DurationMin,
		Count:   brief.Count,
	})
	if err != nil {
		return DeterministicNudges(brief, err.Error())
	}
	if len(nudges) != brief.Count {
		return DeterministicNudges(brief, "writer returned the wrong number of nudges")
	}
	return &NudgeSuggestion{Nudges: nudges, Source: contract.SourceGenerated}
}
