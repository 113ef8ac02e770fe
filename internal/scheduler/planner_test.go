package scheduler

import (
	"testing"

	"github.com/alexanderramin/peak/internal/domain"
	"github.com/alexanderramin/peak/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleNudges_PadsShortCategory(t *testing.T) {
	got := AssembleNudges(domain.CategoryStressed, 5)

	require.Len(t, got, 5)
	assert.Equal(t, knowledge.Select(domain.CategoryStressed, 3), got[:3])
	assert.Equal(t, knowledge.FillerNudge, got[3])
	assert.Equal(t, knowledge.FillerNudge, got[4])
}

func TestAssembleNudges_ExactLength(t *testing.T) {
	for _, c := range knowledge.Categories() {
		for n := 0; n <= MaxNudges; n++ {
			assert.Len(t, AssembleNudges(c, n), n, "category=%s count=%d", c, n)
		}
	}
}

func TestFitNudges_TruncatesOverlong(t *testing.T) {
	in := []string{"a", "b", "c", "d"}

	got := FitNudges(in, 2)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, in)
}

func TestPlan_HeadacheScenario(t *testing.T) {
	s := Plan("I have a headache", 30)

	assert.Equal(t, domain.CategoryHeadache, s.Category)
	assert.True(t, s.Concern)
	assert.Equal(t, 2, s.NudgeCount)
	assert.Equal(t, []string{
		"Gently massage your temples in small circles for 30 seconds.",
		"Take a short break from screens and close your eyes for 1 minute.",
	}, s.Nudges)
	require.Len(t, s.Timing, 2)
	for _, at := range s.Timing {
		assert.GreaterOrEqual(t, at, 10)
		assert.LessOrEqual(t, at, 1790)
	}
}

func TestPlan_EmptyInputScenario(t *testing.T) {
	s := Plan("", 10)

	assert.Equal(t, domain.CategoryDefault, s.Category)
	assert.False(t, s.Concern)
	assert.Equal(t, 1, s.NudgeCount)
	assert.Equal(t, []string{"Take 3 deep breaths to center yourself."}, s.Nudges)
	assert.Equal(t, []int{300}, s.Timing)
}

func TestPlan_CreativeScenario(t *testing.T) {
	s := Plan("feeling really creative today", 60)

	assert.Equal(t, domain.CategoryCreative, s.Category)
	assert.Equal(t, 3, s.NudgeCount)
	assert.Equal(t, knowledge.Nudges(domain.CategoryCreative), s.Nudges)
	assert.Equal(t, []int{270, 1800, 3330}, s.Timing)
}

func TestPlan_ShortCategoryIsPaddedToCount(t *testing.T) {
	s := Plan("so tired", 120)

	assert.Equal(t, domain.CategoryTired, s.Category)
	assert.Equal(t, 5, s.NudgeCount)
	require.Len(t, s.Nudges, 5)
	assert.Equal(t, knowledge.FillerNudge, s.Nudges[4])
	assert.Len(t, s.Timing, 5)
}

func TestPlan_Idempotent(t *testing.T) {
	inputs := []string{"", "stressed and my back hurts", "eyes hurt", "meh"}
	for _, in := range inputs {
		for _, d := range []int{5, 25, 45, 95} {
			a, b := Plan(in, d), Plan(in, d)
			assert.Equal(t, a.Nudges, b.Nudges, "input=%q minutes=%d", in, d)
			assert.Equal(t, a.Timing, b.Timing, "input=%q minutes=%d", in, d)
			assert.Len(t, a.Timing, len(a.Nudges))
		}
	}
}
