package domain

import "time"

// NeutralInput replaces empty or whitespace-only user input.
const NeutralInput = "neutral"

// Session is one fully computed nudge plan. It lives for a single
// request and is never persisted.
type Session struct {
	ID          string
	Input       string
	DurationMin int
	Category    Category
	Concern     bool
	MatchedKey  string
	NudgeCount  int
	Nudges      []string
	Timing      []int
	PlannedAt   time.Time
}

// SessionSeconds is the session length in seconds.
func (s *Session) SessionSeconds() int {
	return s.DurationMin * 60
}

// Steps pairs each nudge with its offset. Nudges and Timing are
// index-aligned, so the result has len(Nudges) entries.
func (s *Session) Steps() []Step {
	steps := make([]Step, 0, len(s.Nudges))
	for i, n := range s.Nudges {
		at := 0
		if i < len(s.Timing) {
			at = s.Timing[i]
		}
		steps = append(steps, Step{Index: i, Nudge: n, OffsetSec: at})
	}
	return steps
}

// Step is a single scheduled nudge within a session.
type Step struct {
	Index     int
	Nudge     string
	OffsetSec int
}

// Offset returns the step offset as a time.Duration.
func (s Step) Offset() time.Duration {
	return time.Duration(s.OffsetSec) * time.Second
}
