package scheduler

const (
	// EdgeGuardSec keeps nudges away from the very start and end.
	EdgeGuardSec = 10

	usableFraction = 0.85
)

// TimingOffsets returns when each of count nudges fires, in seconds from
// session start.
//
// A single nudge lands at the midpoint. Otherwise 15% of the session is
// held back as buffer, split evenly before the first and after the last
// nudge, and the rest is divided into count-1 equal gaps. Each offset is
// then clamped to at least EdgeGuardSec and at most
// sessionSeconds-EdgeGuardSec, independently and in that order; very
// short sessions may therefore produce colliding or negative offsets.
func TimingOffsets(durationMin, count int) []int {
	if count <= 0 {
		return []int{}
	}
	sessionSec := durationMin * 60

	offsets := make([]int, count)
	if count == 1 {
		offsets[0] = sessionSec / 2
	} else {
		usable := float64(sessionSec) * usableFraction
		startBuffer := (float64(sessionSec) - usable) / 2
		interval := usable / float64(count-1)
		for i := range offsets {
			offsets[i] = int(startBuffer + interval*float64(i))
		}
	}

	for i, t := range offsets {
		offsets[i] = clampOffset(t, sessionSec)
	}
	return offsets
}

func clampOffset(t, sessionSec int) int {
	if t < EdgeGuardSec {
		t = EdgeGuardSec
	}
	if t > sessionSec-EdgeGuardSec {
		t = sessionSec - EdgeGuardSec
	}
	return t
}
