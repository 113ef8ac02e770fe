package llm

import "fmt"

// NudgeRequest describes the session a batch of nudges is written for.
type NudgeRequest struct {
	// Feeling is the user's free-text description of how they feel.
	Feeling string
	// Focus is the human label of the classified category.
	Focus   string
	Minutes int
	Count   int
}

const nudgeSystemPrompt = `You are a workplace wellness coach.
You write micro-break nudges for someone in the middle of a focused work session.

Rules:
1. Output exactly the requested number of nudges, one per line.
2. Each nudge is a single sentence under 20 words, an instruction the person can do at their desk in under two minutes.
3. No numbering, no bullets, no headings, no commentary before or after.
4. Address any physical complaint first; otherwise match the mood.
5. Never give medical advice or mention medication.`

func (r NudgeRequest) prompt() string {
	return fmt.Sprintf("How I feel: %s\nDetected focus area: %s\nSession length: %d minutes\nNumber of nudges: %d",
		r.Feeling, r.Focus, r.Minutes, r.Count)
}
