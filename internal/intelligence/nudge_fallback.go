package intelligence

import (
	"github.com/alexanderramin/peak/internal/contract"
	"github.com/alexanderramin/peak/internal/scheduler"
)

// DeterministicNudges builds the nudge list straight from the knowledge
// base. Used when no generator is configured or when generated output
// fails validation.
func DeterministicNudges(brief NudgeBrief, reason string) *NudgeSuggestion {
	return &NudgeSuggestion{
		Nudges:         scheduler.AssembleNudges(brief.Category, brief.Count),
		Source:         contract.SourceKnowledgeBase,
		FallbackReason: reason,
	}
}
