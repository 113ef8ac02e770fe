package scheduler

import "math"

const (
	// MaxNudges caps how many nudges a single session may carry.
	MaxNudges = 5

	minutesPerNudge = 20
)

// NudgeCount maps a session length to the number of nudges it warrants:
// one below 20 minutes, two below 40, otherwise one per 20 minutes
// (at least three) capped at MaxNudges. Half-way values of d/20 round to
// even.
func NudgeCount(durationMin int) int {
	switch {
	case durationMin < 20:
		return 1
	case durationMin < 40:
		return 2
	}
	n := int(math.RoundToEven(float64(durationMin) / minutesPerNudge))
	n = max(3, n)
	return min(n, MaxNudges)
}
