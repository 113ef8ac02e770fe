package scheduler

import (
	"github.com/alexanderramin/peak/internal/classify"
	"github.com/alexanderramin/peak/internal/domain"
	"github.com/alexanderramin/peak/internal/knowledge"
)

// AssembleNudges selects nudges for category and pads with the filler
// nudge or truncates so the result has exactly count entries.
func AssembleNudges(category domain.Category, count int) []string {
	return FitNudges(knowledge.Select(category, count), count)
}

// FitNudges pads nudges with the filler nudge up to count and truncates
// anything beyond it. The input slice is not modified.
func FitNudges(nudges []string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	out := make([]string, 0, count)
	for _, n := range nudges {
		if len(out) == count {
			break
		}
		out = append(out, n)
	}
	for len(out) < count {
		out = append(out, knowledge.FillerNudge)
	}
	return out
}

// Plan runs classification, nudge selection and timing for one input.
// The result is a pure function of its arguments; ID and PlannedAt are
// left for the caller to stamp.
func Plan(input string, durationMin int) domain.Session {
	det := classify.Detect(input)
	count := NudgeCount(durationMin)

	return domain.Session{
		Input:       input,
		DurationMin: durationMin,
		Category:    det.Category,
		Concern:     det.Concern,
		MatchedKey:  det.Keyword,
		NudgeCount:  count,
		Nudges:      AssembleNudges(det.Category, count),
		Timing:      TimingOffsets(durationMin, count),
	}
}
